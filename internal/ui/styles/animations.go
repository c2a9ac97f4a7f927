// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the rigwatch TUI.
package styles

import (
	"strings"
	"time"
)

// =============================================================================
// SPINNER ANIMATIONS
// =============================================================================

// SpinnerConfig holds the configuration for a spinner animation.
type SpinnerConfig struct {
	Frames []string
	FPS    int
}

// Duration returns the duration for each frame.
func (s SpinnerConfig) Duration() time.Duration {
	return time.Second / time.Duration(s.FPS)
}

// LineSpinner - Simple line rotation
var LineSpinner = SpinnerConfig{
	Frames: []string{"|", "/", "-", "\\"},
	FPS:    10,
}

// DotsSpinner - Classic three-dot animation
var DotsSpinner = SpinnerConfig{
	Frames: []string{".  ", ".. ", "...", " ..", "  .", "   "},
	FPS:    6,
}

// =============================================================================
// EASING
// =============================================================================

// EasingFunc is a function that maps progress (0-1) to output (0-1).
type EasingFunc func(t float64) float64

// EaseLinear - constant speed
func EaseLinear(t float64) float64 {
	return t
}

// EaseOutQuad - decelerating to zero
func EaseOutQuad(t float64) float64 {
	return t * (2 - t)
}

// EaseOutCubic - decelerating to zero (smoother)
func EaseOutCubic(t float64) float64 {
	t--
	return t*t*t + 1
}

// TransitionConfig defines a transition animation.
type TransitionConfig struct {
	Duration time.Duration
	Easing   EasingFunc
}

// TransitionFast drives short indicator flips like the disclosure arrow.
var TransitionFast = TransitionConfig{
	Duration: 150 * time.Millisecond,
	Easing:   EaseOutQuad,
}

// TransitionNormal drives ordinary pane transitions.
var TransitionNormal = TransitionConfig{
	Duration: 300 * time.Millisecond,
	Easing:   EaseOutCubic,
}

// =============================================================================
// DISCLOSURE ARROW
// =============================================================================

// Disclosure arrow endpoints and the intermediate frame shown while the
// indicator turns.
const (
	ArrowCollapsed = "▶"
	ArrowTurning   = "◆"
	ArrowExpanded  = "▼"
)

// DisclosureArrow returns the arrow frame for an eased animation progress.
// expanding=true animates collapsed -> expanded; false the reverse. Progress
// outside [0,1] clamps to the endpoints.
func DisclosureArrow(progress float64, expanding bool) string {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	from, to := ArrowExpanded, ArrowCollapsed
	if expanding {
		from, to = ArrowCollapsed, ArrowExpanded
	}
	switch {
	case progress < 0.34:
		return from
	case progress < 0.67:
		return ArrowTurning
	default:
		return to
	}
}

// =============================================================================
// PROGRESS INDICATORS
// =============================================================================

// ProgressBar characters.
var (
	ProgressFull  = "#"
	ProgressEmpty = "-"
)

// RenderProgressBar creates a progress bar string of the given width for a
// 0-100 percentage. Invalid widths render as empty; percentages clamp.
func RenderProgressBar(width int, percent float64) string {
	if width <= 0 {
		return ""
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	filled := int(float64(width) * percent / 100)

	var sb strings.Builder
	sb.Grow(width)
	for i := 0; i < filled; i++ {
		sb.WriteString(ProgressFull)
	}
	for i := filled; i < width; i++ {
		sb.WriteString(ProgressEmpty)
	}
	return sb.String()
}
