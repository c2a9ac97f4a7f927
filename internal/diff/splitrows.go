// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package diff computes line-oriented file differences for the dashboard.
package diff

// =============================================================================
// SIDE-BY-SIDE ROW PAIRING
// =============================================================================

// SplitRow is one visual row of a side-by-side diff. A nil side renders as
// an empty padding cell: a pure addition has no left cell, a pure removal no
// right cell.
type SplitRow struct {
	Left  *Line
	Right *Line
}

// SplitRows pairs the hunk's lines into side-by-side rows. Context lines
// occupy both sides; a run of removals followed by a run of additions is
// paired row-for-row, with the longer run padded.
func (h Hunk) SplitRows() []SplitRow {
	var rows []SplitRow

	i := 0
	for i < len(h.Lines) {
		line := h.Lines[i]
		if line.Kind == Context {
			l := line
			rows = append(rows, SplitRow{Left: &l, Right: &l})
			i++
			continue
		}

		// Collect the change run: removals first, then additions.
		var removed, added []Line
		for i < len(h.Lines) && h.Lines[i].Kind == Removed {
			removed = append(removed, h.Lines[i])
			i++
		}
		for i < len(h.Lines) && h.Lines[i].Kind == Added {
			added = append(added, h.Lines[i])
			i++
		}

		n := len(removed)
		if len(added) > n {
			n = len(added)
		}
		for j := 0; j < n; j++ {
			var row SplitRow
			if j < len(removed) {
				l := removed[j]
				row.Left = &l
			}
			if j < len(added) {
				r := added[j]
				row.Right = &r
			}
			rows = append(rows, row)
		}
	}

	return rows
}
