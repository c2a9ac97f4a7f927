// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/jeranaias/rigwatch-tui/internal/layout"
	"github.com/jeranaias/rigwatch-tui/internal/ui/styles"
)

// =============================================================================
// COLLAPSIBLE SECTION
// =============================================================================

// DefaultToggleKey toggles a focused section when no custom key is set.
const DefaultToggleKey = "c"

// frameInterval paces the arrow animation ticks.
const frameInterval = 50 * time.Millisecond

// lastDisclosureID hands out instance ids so animation frames route to the
// section that scheduled them and nowhere else.
var lastDisclosureID int64

// frameMsg is one animation tick for a specific section instance. The seq
// field is the cancellation token: a new toggle bumps the sequence and any
// in-flight frame from the superseded animation is dropped on arrival.
type frameMsg struct {
	id  int64
	seq int
}

// Disclosure is a collapsible section with an animated arrow indicator.
//
// Ownership of the collapsed flag is decided once at construction:
// NewDisclosure owns its own state (uncontrolled), while
// NewControlledDisclosure only reports toggles through the callback and
// mirrors whatever the caller sets via SetCollapsed.
type Disclosure struct {
	id int64

	title   string
	content string

	controlled bool
	collapsed  bool
	onToggle   func(collapsed bool)

	mode  layout.DisplayMode
	width int

	focused       bool
	allowKeyboard bool
	toggleBinding key.Binding

	// Animation state. animSeq only moves forward; frames carrying an
	// older sequence are stale.
	animSeq   int
	animating bool
	expanding bool
	animStart time.Time
}

// NewDisclosure creates a section that owns its collapsed state.
func NewDisclosure(title string, defaultCollapsed bool) *Disclosure {
	return &Disclosure{
		id:            atomic.AddInt64(&lastDisclosureID, 1),
		title:         title,
		collapsed:     defaultCollapsed,
		width:         layout.FallbackWidth,
		allowKeyboard: true,
		toggleBinding: toggleBinding(DefaultToggleKey),
	}
}

// NewControlledDisclosure creates a section whose collapsed state lives with
// the caller: every toggle only invokes onToggle with the next value, and
// the caller pushes the new state back through SetCollapsed.
func NewControlledDisclosure(title string, collapsed bool, onToggle func(collapsed bool)) *Disclosure {
	d := NewDisclosure(title, collapsed)
	d.controlled = true
	d.onToggle = onToggle
	return d
}

func toggleBinding(toggleKey string) key.Binding {
	return key.NewBinding(key.WithKeys("enter", toggleKey))
}

// =============================================================================
// CONFIGURATION
// =============================================================================

// SetContent sets the body shown while expanded.
func (d *Disclosure) SetContent(content string) {
	d.content = content
}

// SetWidth sets the render width.
func (d *Disclosure) SetWidth(width int) {
	d.width = width
}

// SetDisplayMode sets the detail level. ModeCompact renders the section as
// an empty, non-interactive placeholder regardless of collapsed state.
func (d *Disclosure) SetDisplayMode(mode layout.DisplayMode) {
	d.mode = mode
}

// SetOnToggle sets the toggle callback for an uncontrolled section.
func (d *Disclosure) SetOnToggle(fn func(collapsed bool)) {
	if !d.controlled {
		d.onToggle = fn
	}
}

// SetToggleKey replaces the default toggle key. The custom key is exclusive:
// once set, the default "c" no longer toggles. Enter always does.
func (d *Disclosure) SetToggleKey(toggleKey string) {
	if toggleKey == "" {
		toggleKey = DefaultToggleKey
	}
	d.toggleBinding = toggleBinding(toggleKey)
}

// SetAllowKeyboardToggle gates all keyboard handling for this section.
func (d *Disclosure) SetAllowKeyboardToggle(allow bool) {
	d.allowKeyboard = allow
}

// Focus directs keyboard toggles at this section.
func (d *Disclosure) Focus() { d.focused = true }

// Blur stops keyboard toggles for this section.
func (d *Disclosure) Blur() { d.focused = false }

// Collapsed reports the current collapsed state.
func (d *Disclosure) Collapsed() bool { return d.collapsed }

// =============================================================================
// STATE TRANSITIONS
// =============================================================================

// Toggle flips the section. The next state is always the negation of the
// current one, so rapid repeated toggles alternate correctly with no
// debouncing at this layer. For controlled sections only the callback
// fires; the caller pushes the new value back via SetCollapsed.
func (d *Disclosure) Toggle() tea.Cmd {
	next := !d.collapsed
	if d.onToggle != nil {
		d.onToggle(next)
	}
	if d.controlled {
		return nil
	}
	d.collapsed = next
	return d.startAnimation(!next)
}

// SetCollapsed adopts an externally owned collapsed value on a controlled
// section, animating when the value actually changes.
func (d *Disclosure) SetCollapsed(collapsed bool) tea.Cmd {
	if !d.controlled || collapsed == d.collapsed {
		return nil
	}
	d.collapsed = collapsed
	return d.startAnimation(!collapsed)
}

// Activate is the header activation path (mouse click, parent routing). It
// behaves exactly like a keyboard toggle.
func (d *Disclosure) Activate() tea.Cmd {
	return d.Toggle()
}

// Stop cancels any running animation. Call on unmount so no frame timer
// outlives the section.
func (d *Disclosure) Stop() {
	d.animSeq++
	d.animating = false
}

// startAnimation supersedes any running animation (cancel-then-restart,
// never overlap) and schedules the first frame.
func (d *Disclosure) startAnimation(expanding bool) tea.Cmd {
	d.animSeq++
	d.animating = true
	d.expanding = expanding
	d.animStart = time.Now()
	return d.frameCmd()
}

func (d *Disclosure) frameCmd() tea.Cmd {
	id, seq := d.id, d.animSeq
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return frameMsg{id: id, seq: seq}
	})
}

// Update handles animation frames and keyboard toggles. Messages that do
// not concern this section, including malformed key events, are ignored
// without state changes.
func (d *Disclosure) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case frameMsg:
		if msg.id != d.id || msg.seq != d.animSeq || !d.animating {
			return nil
		}
		if time.Since(d.animStart) >= styles.TransitionFast.Duration {
			d.animating = false
			return nil
		}
		return d.frameCmd()

	case tea.KeyMsg:
		if d.mode == layout.ModeCompact {
			// Placeholder sections register no keyboard handling.
			return nil
		}
		if !d.allowKeyboard || !d.focused {
			return nil
		}
		if key.Matches(msg, d.toggleBinding) {
			return d.Toggle()
		}
	}
	return nil
}

// =============================================================================
// RENDERING
// =============================================================================

// arrow returns the current indicator frame.
func (d *Disclosure) arrow() string {
	if !d.animating {
		if d.collapsed {
			return styles.ArrowCollapsed
		}
		return styles.ArrowExpanded
	}
	p := float64(time.Since(d.animStart)) / float64(styles.TransitionFast.Duration)
	return styles.DisclosureArrow(styles.TransitionFast.Easing(clamp01(p)), d.expanding)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// View renders the section: header line with arrow and title, body when
// expanded. ModeCompact renders nothing at all; ModeVerbose adds an
// explicit textual state marker alongside the arrow.
func (d *Disclosure) View() string {
	if d.mode == layout.ModeCompact {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Foreground(styles.Cyan).Bold(true)
	markerStyle := lipgloss.NewStyle().Foreground(styles.TextMuted)

	var sb strings.Builder
	sb.WriteString(d.arrow())
	sb.WriteString(" ")
	sb.WriteString(titleStyle.Render(d.title))
	if d.mode == layout.ModeVerbose {
		marker := "[expanded]"
		if d.collapsed {
			marker = "[collapsed]"
		}
		sb.WriteString(" ")
		sb.WriteString(markerStyle.Render(marker))
	}

	if d.collapsed || d.content == "" {
		return sb.String()
	}

	bodyWidth := d.width - 2
	if bodyWidth < 1 {
		bodyWidth = 1
	}
	body := wordwrap.String(d.content, bodyWidth)
	bodyStyle := lipgloss.NewStyle().Foreground(styles.TextPrimary).MarginLeft(2)
	sb.WriteString("\n")
	sb.WriteString(bodyStyle.Render(body))
	return sb.String()
}
