// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/rigwatch-tui/internal/layout"
	"github.com/jeranaias/rigwatch-tui/internal/ui/styles"
)

// =============================================================================
// STATUS BAR COMPONENT - Bottom status bar
// =============================================================================

// Status represents the current watcher status.
type Status int

const (
	StatusReady Status = iota
	StatusWatching
	StatusSyncing
	StatusError
	StatusIdle
)

// String returns the display string for the status.
func (s Status) String() string {
	switch s {
	case StatusReady:
		return "Ready"
	case StatusWatching:
		return "Watching..."
	case StatusSyncing:
		return "Syncing..."
	case StatusError:
		return "Error"
	case StatusIdle:
		return "Idle"
	default:
		return "Unknown"
	}
}

// Icon returns an icon for the status.
// ACCESSIBILITY: Uses distinct shapes alongside colors for colorblind users
func (s Status) Icon() string {
	switch s {
	case StatusReady:
		return styles.StatusIndicators.Success
	case StatusWatching:
		return "~"
	case StatusSyncing:
		return styles.StatusIndicators.Pending
	case StatusError:
		return styles.StatusIndicators.Error
	case StatusIdle:
		return "-"
	default:
		return "?"
	}
}

// barSegment is a status bar segment plus the drop priority that decides
// which segments survive a shrinking terminal. Lower priority drops first.
type barSegment struct {
	seg      layout.Segment
	priority int
}

// StatusBar renders the bottom status bar. Layout tiers come from the
// status bar's own thresholds (80/100/120), not the dashboard defaults.
type StatusBar struct {
	Width  int
	Status Status

	mode     layout.DisplayMode
	abbrev   layout.AbbreviationMode
	segments []barSegment
	theme    *styles.Theme
}

// NewStatusBar creates a StatusBar with no segments.
func NewStatusBar(theme *styles.Theme) *StatusBar {
	return &StatusBar{
		Width:  layout.FallbackWidth,
		Status: StatusReady,
		abbrev: layout.AbbrevAuto,
		theme:  theme,
	}
}

// SetWidth updates the status bar width.
func (s *StatusBar) SetWidth(width int) {
	s.Width = width
}

// SetStatus updates the current status.
func (s *StatusBar) SetStatus(status Status) {
	s.Status = status
}

// SetDisplayMode updates the detail level.
func (s *StatusBar) SetDisplayMode(mode layout.DisplayMode) {
	s.mode = mode
}

// SetAbbreviationMode overrides the width-based abbreviation gate.
func (s *StatusBar) SetAbbreviationMode(mode layout.AbbreviationMode) {
	s.abbrev = mode
}

// AddSegment appends a segment. Higher priority segments survive longer
// when the bar runs out of room.
func (s *StatusBar) AddSegment(seg layout.Segment, priority int) {
	s.segments = append(s.segments, barSegment{seg: seg, priority: priority})
}

// SetSegmentValue updates the value of the segment with the given label.
func (s *StatusBar) SetSegmentValue(label, value string) {
	for i := range s.segments {
		if s.segments[i].seg.Label == label {
			s.segments[i].seg.Value = value
			return
		}
	}
}

// breakpoint classifies the bar's own width tiers.
func (s *StatusBar) breakpoint() layout.Breakpoint {
	return layout.Classify(s.Width, layout.StatusBarThresholds)
}

// View renders the status bar at the current width.
func (s *StatusBar) View() string {
	bp := s.breakpoint()

	useAbbrev := layout.UseAbbreviated(s.abbrev, s.Width)

	var rendered []string
	remaining := s.Width - lipgloss.Width(s.statusCell()) - 1
	for _, bs := range s.visibleSegments(useAbbrev, remaining) {
		rendered = append(rendered, s.renderSegment(bs.seg, bp))
	}
	rendered = append(rendered, s.statusCell())

	divider := s.theme.StatusDivider.Render(" | ")
	if bp == layout.BreakpointNarrow {
		divider = s.theme.StatusDivider.Render(" ")
	}

	line := strings.Join(rendered, divider)
	return s.theme.StatusBar.Width(s.Width).Render(line)
}

// visibleSegments drops the lowest-priority segments until the rest fit
// the budget. Order among the survivors is insertion order.
func (s *StatusBar) visibleSegments(useAbbrev bool, budget int) []barSegment {
	kept := make([]barSegment, len(s.segments))
	copy(kept, s.segments)

	for len(kept) > 0 && s.segmentsWidth(kept, useAbbrev) > budget {
		lowest := 0
		for i, bs := range kept {
			if bs.priority < kept[lowest].priority {
				lowest = i
			}
		}
		kept = append(kept[:lowest], kept[lowest+1:]...)
	}
	return kept
}

func (s *StatusBar) segmentsWidth(segs []barSegment, useAbbrev bool) int {
	total := 0
	for i, bs := range segs {
		if i > 0 {
			total += 3 // divider
		}
		total += bs.seg.MinWidth(useAbbrev)
	}
	return total
}

// renderSegment renders one segment for the current tier. The narrow tier
// and compact mode render values only; labels come back at the medium tier.
func (s *StatusBar) renderSegment(seg layout.Segment, bp layout.Breakpoint) string {
	var sb strings.Builder
	if seg.Icon != "" {
		sb.WriteString(seg.Icon)
		sb.WriteString(" ")
	}

	valuesOnly := bp == layout.BreakpointNarrow || s.mode == layout.ModeCompact
	if !valuesOnly {
		if label, ok := seg.EffectiveLabel(s.abbrev, s.Width); ok {
			sb.WriteString(s.theme.StatusLabel.Render(label))
			sb.WriteString(" ")
		}
	}
	sb.WriteString(s.theme.StatusValue.Render(seg.Value))
	return sb.String()
}

// statusCell renders the trailing status indicator.
func (s *StatusBar) statusCell() string {
	style := lipgloss.NewStyle().Foreground(styles.TextSecondary)
	switch s.Status {
	case StatusError:
		style = lipgloss.NewStyle().Foreground(styles.Rose).Bold(true)
	case StatusReady:
		style = lipgloss.NewStyle().Foreground(styles.Emerald)
	case StatusWatching, StatusSyncing:
		style = lipgloss.NewStyle().Foreground(styles.Amber)
	}
	if s.breakpoint() == layout.BreakpointNarrow {
		return style.Render(s.Status.Icon())
	}
	return style.Render(s.Status.Icon() + " " + s.Status.String())
}
