// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the rigwatch TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds the styled components for the dashboard. It detects the
// terminal's color capability once and hands prebuilt styles to components.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// ==========================================================================
	// PANEL STYLES
	// ==========================================================================

	Panel       lipgloss.Style
	PanelTitle  lipgloss.Style
	PanelBorder lipgloss.Style

	// ==========================================================================
	// STATUS BAR STYLES
	// ==========================================================================

	StatusBar      lipgloss.Style
	StatusSegment  lipgloss.Style
	StatusLabel    lipgloss.Style
	StatusValue    lipgloss.Style
	StatusDivider  lipgloss.Style

	// ==========================================================================
	// ACTIVITY LOG STYLES
	// ==========================================================================

	LogTimestamp lipgloss.Style
	LogTitle     lipgloss.Style
	LogBody      lipgloss.Style
	LogThinking  lipgloss.Style

	// ==========================================================================
	// DIFF STYLES
	// ==========================================================================

	DiffAdded   lipgloss.Style
	DiffRemoved lipgloss.Style
	DiffContext lipgloss.Style
	DiffGutter  lipgloss.Style
	DiffNotice  lipgloss.Style
}

// NewTheme creates a theme tuned to the current terminal.
func NewTheme() *Theme {
	colorProfile := termenv.ColorProfile()

	t := &Theme{
		IsDark:       termenv.HasDarkBackground(),
		HasTrueColor: colorProfile == termenv.TrueColor,
		ColorProfile: colorProfile,
	}

	t.initStyles()
	return t
}

func (t *Theme) initStyles() {
	t.Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.PanelTitle = lipgloss.NewStyle().
		Foreground(Purple).
		Bold(true)

	t.PanelBorder = lipgloss.NewStyle().
		Foreground(Overlay)

	t.StatusBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextPrimary)

	t.StatusSegment = lipgloss.NewStyle().
		Padding(0, 1)

	t.StatusLabel = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.StatusValue = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Bold(true)

	t.StatusDivider = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.LogTimestamp = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.LogTitle = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.LogBody = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.LogThinking = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	t.DiffAdded = lipgloss.NewStyle().
		Foreground(DiffAddedFg).
		Background(DiffAddedBg)

	t.DiffRemoved = lipgloss.NewStyle().
		Foreground(DiffRemovedFg).
		Background(DiffRemovedBg)

	t.DiffContext = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.DiffGutter = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.DiffNotice = lipgloss.NewStyle().
		Foreground(Amber).
		Italic(true)
}
