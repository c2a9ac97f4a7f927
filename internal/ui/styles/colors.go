// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the rigwatch TUI.
// All colors use Lip Gloss AdaptiveColor for automatic light/dark detection.
package styles

import (
	"math"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// PRIMARY ACCENT COLORS
// =============================================================================

// Purple - Primary accent, panel titles, selections
var Purple = lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#A78BFA"}

// Cyan - Brand color, info, file paths
var Cyan = lipgloss.AdaptiveColor{Light: "#0891B2", Dark: "#22D3EE"}

// Emerald - Success states, additions, healthy indicators
var Emerald = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}

// =============================================================================
// SEMANTIC COLORS
// =============================================================================

// Rose - Errors, deletions, critical urgency
var Rose = lipgloss.AdaptiveColor{Light: "#E11D48", Dark: "#FB7185"}

// Amber - Warnings, medium urgency
var Amber = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}

// =============================================================================
// SURFACE AND TEXT COLORS
// =============================================================================

// Surface - Main background
var Surface = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1E1E2E"}

// SurfaceDim - Slightly darker/lighter surface for headers/footers
var SurfaceDim = lipgloss.AdaptiveColor{Light: "#F5F5F5", Dark: "#181825"}

// Overlay - Borders, separators, subtle backgrounds
var Overlay = lipgloss.AdaptiveColor{Light: "#E5E5E5", Dark: "#313244"}

// TextPrimary - Main body text
var TextPrimary = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#CDD6F4"}

// TextSecondary - Labels, less prominent text
var TextSecondary = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#A6ADC8"}

// TextMuted - Hints, timestamps, very subtle text
var TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6C7086"}

// =============================================================================
// DIFF COLORS
// =============================================================================

var DiffAddedFg = lipgloss.AdaptiveColor{Light: "#065F46", Dark: "#A7F3D0"}
var DiffAddedBg = lipgloss.AdaptiveColor{Light: "#D1FAE5", Dark: "#064E3B"}
var DiffRemovedFg = lipgloss.AdaptiveColor{Light: "#991B1B", Dark: "#FECACA"}
var DiffRemovedBg = lipgloss.AdaptiveColor{Light: "#FEE2E2", Dark: "#881337"}

// =============================================================================
// ACCESSIBILITY: Shapes alongside colors for colorblind users
// =============================================================================

// StatusIndicatorSet contains text/shape indicators for status states.
type StatusIndicatorSet struct {
	Success string
	Error   string
	Warning string
	Info    string
	Pending string
	Active  string
}

// StatusIndicators provides accessible shape/text indicators alongside colors.
// ACCESSIBILITY: ASCII-only indicators for maximum compatibility.
var StatusIndicators = StatusIndicatorSet{
	Success: "[OK]",
	Error:   "[X]",
	Warning: "[!]",
	Info:    "[i]",
	Pending: "[ ]",
	Active:  "[*]",
}

// =============================================================================
// CONFIDENCE CLASSIFICATION
// =============================================================================

// ConfidenceLevel is the discrete quality category of a confidence score.
type ConfidenceLevel int

const (
	ConfidenceLow ConfidenceLevel = iota
	ConfidenceMedium
	ConfidenceHigh
)

// String returns the display name for the level.
func (l ConfidenceLevel) String() string {
	switch l {
	case ConfidenceHigh:
		return "high"
	case ConfidenceMedium:
		return "medium"
	default:
		return "low"
	}
}

// Color returns the urgency color for the level.
func (l ConfidenceLevel) Color() lipgloss.AdaptiveColor {
	switch l {
	case ConfidenceHigh:
		return Emerald
	case ConfidenceMedium:
		return Amber
	default:
		return Rose
	}
}

// ClassifyConfidence maps a confidence score to a level: >= 0.8 is high,
// >= 0.6 is medium, anything below is low. Scores outside [0, 1] are not
// clamped: a 1.2 still classifies high and renders literally. Upstream
// produces such values today and the display layer preserves them.
func ClassifyConfidence(confidence float64) ConfidenceLevel {
	switch {
	case confidence >= 0.8:
		return ConfidenceHigh
	case confidence >= 0.6:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// =============================================================================
// COUNTDOWN CLASSIFICATION
// =============================================================================

// CountdownColor is the urgency color of a remaining-time display.
type CountdownColor int

const (
	CountdownGreen CountdownColor = iota
	CountdownYellow
	CountdownRed
)

// Color returns the lipgloss color for the urgency.
func (c CountdownColor) Color() lipgloss.AdaptiveColor {
	switch c {
	case CountdownGreen:
		return Emerald
	case CountdownYellow:
		return Amber
	default:
		return Rose
	}
}

// CountdownSeconds converts a remaining duration to whole display seconds
// using a ceiling: 1ms remaining still shows as 1s. Negative remainders
// floor to 0 for display.
func CountdownSeconds(remaining time.Duration) int {
	secs := int(math.Ceil(float64(remaining.Milliseconds()) / 1000.0))
	if secs < 0 {
		return 0
	}
	return secs
}

// ClassifyCountdown maps a remaining duration to an urgency color over the
// ceiling seconds: above 5s green, 3-5s yellow, 2s and below red. The
// boundaries are exact: 5000ms is yellow, 5001ms is green, 2000ms is red,
// 2001ms is yellow.
func ClassifyCountdown(remaining time.Duration) CountdownColor {
	secs := int(math.Ceil(float64(remaining.Milliseconds()) / 1000.0))
	switch {
	case secs > 5:
		return CountdownGreen
	case secs >= 3:
		return CountdownYellow
	default:
		return CountdownRed
	}
}

// =============================================================================
// STATUS MESSAGE HELPERS
// =============================================================================

// RenderSuccess renders a success message with its shape indicator.
// ACCESSIBILITY: Includes shape indicator for colorblind users.
func RenderSuccess(message string) string {
	style := lipgloss.NewStyle().Foreground(Emerald).Bold(true)
	return style.Render(StatusIndicators.Success + " " + message)
}

// RenderError renders an error message with its shape indicator.
func RenderError(message string) string {
	style := lipgloss.NewStyle().Foreground(Rose).Bold(true)
	return style.Render(StatusIndicators.Error + " " + message)
}

// RenderWarning renders a warning message with its shape indicator.
func RenderWarning(message string) string {
	style := lipgloss.NewStyle().Foreground(Amber).Bold(true)
	return style.Render(StatusIndicators.Warning + " " + message)
}
