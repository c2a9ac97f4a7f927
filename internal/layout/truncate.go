// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package layout is the shared responsive decision engine for the rigwatch TUI.
package layout

// =============================================================================
// DISPLAY MODES
// =============================================================================

// DisplayMode is the caller-selected detail level. It is orthogonal to the
// breakpoint: verbose forces maximal detail regardless of width, compact
// forces minimal detail regardless of width, and normal defers to
// breakpoint-driven rules.
type DisplayMode int

const (
	ModeNormal DisplayMode = iota
	ModeCompact
	ModeVerbose
)

// String returns the display name for the mode.
func (m DisplayMode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeCompact:
		return "compact"
	case ModeVerbose:
		return "verbose"
	default:
		return "unknown"
	}
}

// =============================================================================
// TEXT TRUNCATION
// =============================================================================

// Truncate bounds s to maxLen characters, appending "..." when text is cut.
//
// UNICODE: operates on runes, not bytes, so multi-byte characters are never
// split mid-sequence.
//
// Degenerate budgets resolve rather than error: a negative maxLen is treated
// as 0, and any maxLen <= 3 collapses an over-long string to exactly "...".
// Truncate is idempotent: truncating an already-truncated string with the
// same budget returns it unchanged.
func Truncate(s string, maxLen int) string {
	if maxLen < 0 {
		maxLen = 0
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	keep := maxLen - 3
	if keep < 0 {
		keep = 0
	}
	return string(runes[:keep]) + "..."
}

// =============================================================================
// TRUNCATION BUDGETS
// =============================================================================

// Budget is a call site's truncation budget table, resolved against the
// current display mode and breakpoint. Resolve accepts an explicit per-call
// cap that always beats the computed budget.
type Budget struct {
	Narrow  int // ModeNormal at BreakpointNarrow (also ModeCompact at any width)
	Compact int // ModeNormal at BreakpointCompact
	Normal  int // ModeNormal at BreakpointNormal
	Wide    int // ModeNormal at BreakpointWide
	Verbose int // ModeVerbose at any width
}

// ThinkingBudget bounds free-text thinking blocks in the activity log.
var ThinkingBudget = Budget{Narrow: 500, Compact: 500, Normal: 500, Wide: 500, Verbose: 1000}

// PreviewInputBudget bounds the input text shown in the task preview panel.
var PreviewInputBudget = Budget{Narrow: 30, Compact: 57, Normal: 147, Wide: 147, Verbose: 147}

// For resolves the budget for a display mode and breakpoint. Verbose grants
// the largest budget regardless of width; compact grants the smallest.
func (b Budget) For(mode DisplayMode, bp Breakpoint) int {
	switch mode {
	case ModeVerbose:
		return b.Verbose
	case ModeCompact:
		return b.Narrow
	}
	switch bp {
	case BreakpointNarrow:
		return b.Narrow
	case BreakpointCompact:
		return b.Compact
	case BreakpointNormal:
		return b.Normal
	default:
		return b.Wide
	}
}

// Resolve returns the budget for the mode and breakpoint unless a positive
// explicit cap is supplied, in which case the cap wins regardless of what
// the table computes. Zero or negative means no override.
func (b Budget) Resolve(mode DisplayMode, bp Breakpoint, explicit int) int {
	if explicit > 0 {
		return explicit
	}
	return b.For(mode, bp)
}
