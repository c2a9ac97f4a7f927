// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package layout is the shared responsive decision engine for the rigwatch TUI.
package layout

import "strconv"

// =============================================================================
// STRUCTURAL DIFF MODE SELECTION
// =============================================================================

// DiffMode is a diff presentation variant. DiffAuto is only valid as a
// request; ResolveDiffMode never returns it.
type DiffMode int

const (
	// DiffAuto picks split or unified from the available width.
	DiffAuto DiffMode = iota

	// DiffUnified is the single-column presentation.
	DiffUnified

	// DiffSplit is the side-by-side presentation.
	DiffSplit

	// DiffInline renders changes inline within surrounding text.
	DiffInline
)

// String returns the display name for the mode.
func (m DiffMode) String() string {
	switch m {
	case DiffAuto:
		return "auto"
	case DiffUnified:
		return "unified"
	case DiffSplit:
		return "split"
	case DiffInline:
		return "inline"
	default:
		return "unknown"
	}
}

// SplitMinWidth is the minimum terminal width for side-by-side diffs.
const SplitMinWidth = 120

// ResolveDiffMode turns a requested diff mode and the current width into an
// effective mode. Unified and inline requests pass through regardless of
// width. Auto resolves to split at or above SplitMinWidth, unified below.
// An explicit split request below SplitMinWidth downgrades to unified with
// downgraded=true; the component must surface a user-visible notice that
// split view requires at least SplitMinWidth columns.
func ResolveDiffMode(request DiffMode, width int) (mode DiffMode, downgraded bool) {
	switch request {
	case DiffUnified, DiffInline:
		return request, false
	case DiffSplit:
		if width < SplitMinWidth {
			return DiffUnified, true
		}
		return DiffSplit, false
	default:
		if width >= SplitMinWidth {
			return DiffSplit, false
		}
		return DiffUnified, false
	}
}

// =============================================================================
// GUTTER AND CONTENT WIDTH MATH
// =============================================================================

const (
	borderPadding   = 2 // container border columns around diff content
	diffMarkerWidth = 1 // the +/-/space change marker column
	splitGutter     = 4 // separator between the two halves of a split diff
	splitNumberCols = 4 // fixed line-number allocation per split half

	maxLineNumberDigits = 6
)

// LineNumberWidth returns the gutter width for a view whose highest line
// number is maxLineNumber: the digit count clamped to a breakpoint-specific
// minimum and a hard cap of 6, plus one separator column.
func LineNumberWidth(maxLineNumber int, bp Breakpoint) int {
	digits := len(strconv.Itoa(maxLineNumber))
	min := 2
	if bp == BreakpointCompact {
		min = 3
	}
	if digits < min {
		digits = min
	}
	if digits > maxLineNumberDigits {
		digits = maxLineNumberDigits
	}
	return digits + 1
}

// minContentWidth is the narrowest usable content column per breakpoint.
func minContentWidth(bp Breakpoint) int {
	switch bp {
	case BreakpointNarrow:
		return 20
	case BreakpointCompact:
		return 30
	default:
		return 40
	}
}

// UnifiedContentWidth returns the text column budget for a unified diff
// line: total width minus the line-number gutter, the container border
// padding, and the change marker, floored at the breakpoint minimum.
func UnifiedContentWidth(totalWidth, lineNumberWidth int, bp Breakpoint) int {
	w := totalWidth - lineNumberWidth - borderPadding - diffMarkerWidth
	if floor := minContentWidth(bp); w < floor {
		w = floor
	}
	return w
}

// SplitContentWidth returns the text column budget for each half of a split
// diff: half the width remaining after the gutter, minus the fixed per-half
// line-number allocation, floored at the breakpoint minimum.
func SplitContentWidth(totalWidth int, bp Breakpoint) int {
	w := (totalWidth-splitGutter)/2 - splitNumberCols
	if floor := minContentWidth(bp); w < floor {
		w = floor
	}
	return w
}
