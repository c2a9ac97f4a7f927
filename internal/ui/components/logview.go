// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"

	"github.com/jeranaias/rigwatch-tui/internal/feed"
	"github.com/jeranaias/rigwatch-tui/internal/layout"
	"github.com/jeranaias/rigwatch-tui/internal/ui/styles"
)

// =============================================================================
// LOG VIEW - Scrolling event feed
// =============================================================================

// timestampLayout is the event time format in the feed.
const timestampLayout = "15:04:05"

// LogView is the scrolling event pane. Markdown entries render through
// glamour; thinking entries truncate to a character budget so a verbose
// model cannot flood the feed.
type LogView struct {
	viewport viewport.Model
	entries  []feed.Entry

	width  int
	height int
	mode   layout.DisplayMode

	// thinkingCap, when positive, overrides the computed thinking budget.
	thinkingCap int

	renderer *glamour.TermRenderer
	theme    *styles.Theme
}

// NewLogView creates an empty log view.
func NewLogView(theme *styles.Theme) *LogView {
	lv := &LogView{
		width:  layout.FallbackWidth,
		height: layout.FallbackHeight,
		theme:  theme,
	}
	lv.viewport = viewport.New(lv.width, lv.height)
	lv.rebuildRenderer()
	return lv
}

// SetSize resizes the pane and re-wraps all content.
func (lv *LogView) SetSize(width, height int) {
	if width == lv.width && height == lv.height {
		return
	}
	lv.width = width
	lv.height = height
	lv.viewport.Width = width
	lv.viewport.Height = height
	lv.rebuildRenderer()
	lv.refresh()
}

// SetDisplayMode sets the detail level and re-renders.
func (lv *LogView) SetDisplayMode(mode layout.DisplayMode) {
	if mode == lv.mode {
		return
	}
	lv.mode = mode
	lv.refresh()
}

// SetThinkingCap pins the thinking budget, beating the value computed from
// mode and breakpoint. Zero restores computed budgets.
func (lv *LogView) SetThinkingCap(cap int) {
	lv.thinkingCap = cap
	lv.refresh()
}

// Append adds entries to the feed and scrolls to the newest one.
func (lv *LogView) Append(entries ...feed.Entry) {
	lv.entries = append(lv.entries, entries...)
	lv.refresh()
	lv.viewport.GotoBottom()
}

// Update forwards scroll keys to the viewport.
func (lv *LogView) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	lv.viewport, cmd = lv.viewport.Update(msg)
	return cmd
}

// View renders the pane.
func (lv *LogView) View() string {
	return lv.viewport.View()
}

// rebuildRenderer recreates the glamour renderer for the current width.
// A nil renderer means markdown falls back to plain text.
func (lv *LogView) rebuildRenderer() {
	wrap := lv.width - 2
	if wrap < 20 {
		wrap = 20
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		lv.renderer = nil
		return
	}
	lv.renderer = renderer
}

// refresh re-renders every entry into the viewport.
func (lv *LogView) refresh() {
	rendered := make([]string, 0, len(lv.entries))
	for _, e := range lv.entries {
		rendered = append(rendered, lv.renderEntry(e))
	}
	lv.viewport.SetContent(strings.Join(rendered, "\n"))
}

// renderEntry renders one feed entry for the current width and mode.
func (lv *LogView) renderEntry(e feed.Entry) string {
	var sb strings.Builder

	sb.WriteString(lv.theme.LogTimestamp.Render(e.Time.Format(timestampLayout)))
	sb.WriteString(" ")
	if e.Title != "" {
		sb.WriteString(lv.theme.LogTitle.Render(e.Title))
	}

	body := lv.renderBody(e)
	if body != "" {
		sb.WriteString("\n")
		sb.WriteString(body)
	}
	return sb.String()
}

func (lv *LogView) renderBody(e feed.Entry) string {
	if e.Body == "" {
		return ""
	}
	bp := layout.Classify(lv.width, layout.DefaultThresholds)

	switch e.Kind {
	case feed.KindThinking:
		if lv.mode == layout.ModeCompact {
			return ""
		}
		budget := layout.ThinkingBudget.Resolve(lv.mode, bp, lv.thinkingCap)
		text := layout.Truncate(e.Body, budget)
		return lv.theme.LogThinking.Render(lv.wrap(text))

	case feed.KindMarkdown:
		if lv.renderer != nil {
			if out, err := lv.renderer.Render(e.Body); err == nil {
				return strings.TrimRight(out, "\n")
			}
		}
		return lv.theme.LogBody.Render(lv.wrap(e.Body))

	case feed.KindError:
		return styles.RenderError(lv.wrap(e.Body))

	default:
		// Event bodies may carry fenced code blocks and inline `code`
		// spans; both render through the code block component.
		if strings.Contains(e.Body, "```") {
			return ParseCodeBlocks(e.Body, lv.width)
		}
		return lv.theme.LogBody.Render(lv.wrap(ParseInlineCode(e.Body)))
	}
}

func (lv *LogView) wrap(text string) string {
	wrap := lv.width - 2
	if wrap < 20 {
		wrap = 20
	}
	return wordwrap.String(text, wrap)
}
