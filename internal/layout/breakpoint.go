// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package layout is the shared responsive decision engine for the rigwatch TUI.
package layout

// =============================================================================
// BREAKPOINT CLASSIFICATION
// =============================================================================

// Breakpoint is a named terminal width category. Components use it to gate
// which details render, never to cache layout decisions across resizes.
type Breakpoint int

const (
	// BreakpointNarrow is for very small terminals; minimal detail.
	BreakpointNarrow Breakpoint = iota

	// BreakpointCompact is for small terminals; abbreviated labels.
	BreakpointCompact

	// BreakpointNormal is the standard terminal range.
	BreakpointNormal

	// BreakpointWide is for large terminals; maximal detail.
	BreakpointWide
)

// String returns the display name for the breakpoint.
func (b Breakpoint) String() string {
	switch b {
	case BreakpointNarrow:
		return "narrow"
	case BreakpointCompact:
		return "compact"
	case BreakpointNormal:
		return "normal"
	case BreakpointWide:
		return "wide"
	default:
		return "unknown"
	}
}

// Thresholds is an ordered triple of upper bounds partitioning the width
// line into the four breakpoints. Each component may carry its own named
// set; the classification rule is shared.
//
// Invariant: 0 < NarrowMax < CompactMax < NormalMax.
type Thresholds struct {
	NarrowMax  int // widths below this are narrow
	CompactMax int // widths below this (and >= NarrowMax) are compact
	NormalMax  int // widths below this (and >= CompactMax) are normal
}

// DefaultThresholds is the breakpoint set most components use.
var DefaultThresholds = Thresholds{NarrowMax: 60, CompactMax: 100, NormalMax: 160}

// StatusBarThresholds is the tighter set the status bar uses, since it
// degrades earlier than content panes.
var StatusBarThresholds = Thresholds{NarrowMax: 80, CompactMax: 100, NormalMax: 120}

// Valid reports whether the thresholds are positive and strictly increasing.
func (t Thresholds) Valid() bool {
	return t.NarrowMax > 0 && t.NarrowMax < t.CompactMax && t.CompactMax < t.NormalMax
}

// Classify maps a terminal width to a breakpoint. The four ranges partition
// every integer: any width below NarrowMax, including zero and negative
// widths from a degenerate probe, classifies as narrow.
func Classify(width int, t Thresholds) Breakpoint {
	switch {
	case width < t.NarrowMax:
		return BreakpointNarrow
	case width < t.CompactMax:
		return BreakpointCompact
	case width < t.NormalMax:
		return BreakpointNormal
	default:
		return BreakpointWide
	}
}
