// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package diff computes line-oriented file differences for the dashboard.
package diff

import (
	"fmt"
	"strings"
)

// =============================================================================
// DATA MODEL
// =============================================================================

// LineKind classifies one line of a diff.
type LineKind int

const (
	// Context is an unchanged line present in both versions.
	Context LineKind = iota
	// Added is a line present only in the new version.
	Added
	// Removed is a line present only in the old version.
	Removed
)

// String returns the display name of the kind.
func (k LineKind) String() string {
	switch k {
	case Context:
		return "context"
	case Added:
		return "added"
	case Removed:
		return "removed"
	default:
		return "unknown"
	}
}

// Marker returns the unified-diff marker character for the kind.
func (k LineKind) Marker() string {
	switch k {
	case Added:
		return "+"
	case Removed:
		return "-"
	default:
		return " "
	}
}

// Line is a single line of a computed diff. OldLine is 0 for added lines;
// NewLine is 0 for removed lines.
type Line struct {
	Kind    LineKind
	Content string
	OldLine int
	NewLine int
}

// Hunk is a contiguous group of changes with surrounding context.
type Hunk struct {
	OldStart int
	OldCount int
	NewStart int
	NewCount int
	Lines    []Line
}

// Stats summarizes a diff.
type Stats struct {
	Additions int
	Deletions int
	FileMode  string // "new", "modified", "deleted"
}

// File is a complete computed diff for one file.
type File struct {
	Path  string
	Hunks []Hunk
	Stats Stats
}

// MaxLineNumber returns the highest line number appearing anywhere in the
// diff, used to size line-number gutters.
func (f *File) MaxLineNumber() int {
	max := 0
	for _, h := range f.Hunks {
		for _, l := range h.Lines {
			if l.OldLine > max {
				max = l.OldLine
			}
			if l.NewLine > max {
				max = l.NewLine
			}
		}
	}
	return max
}

// Summary returns a short human-readable description, e.g. "Modified +3 -1".
func (f *File) Summary() string {
	var parts []string
	switch f.Stats.FileMode {
	case "new":
		parts = append(parts, "New file")
	case "deleted":
		parts = append(parts, "File deleted")
	default:
		parts = append(parts, "Modified")
	}
	if f.Stats.Additions > 0 {
		parts = append(parts, fmt.Sprintf("+%d", f.Stats.Additions))
	}
	if f.Stats.Deletions > 0 {
		parts = append(parts, fmt.Sprintf("-%d", f.Stats.Deletions))
	}
	return strings.Join(parts, " ")
}

// =============================================================================
// COMPUTATION
// =============================================================================

// contextLines is the number of unchanged lines kept around each hunk.
const contextLines = 3

// Compute diffs old against new content line by line.
func Compute(path, oldContent, newContent string) *File {
	f := &File{Path: path}

	oldLines := splitLines(oldContent)
	newLines := splitLines(newContent)

	switch {
	case oldContent == "" && newContent != "":
		f.Stats.FileMode = "new"
	case oldContent != "" && newContent == "":
		f.Stats.FileMode = "deleted"
	default:
		f.Stats.FileMode = "modified"
	}

	lines := diffLines(oldLines, newLines)
	f.Hunks = groupHunks(lines)

	for _, l := range lines {
		switch l.Kind {
		case Added:
			f.Stats.Additions++
		case Removed:
			f.Stats.Deletions++
		}
	}

	return f
}

// splitLines splits content into lines, dropping the empty trailing element
// a final newline produces.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// diffLines walks both sides against their longest common subsequence.
func diffLines(oldLines, newLines []string) []Line {
	var result []Line

	if len(oldLines) == 0 && len(newLines) == 0 {
		return result
	}
	if len(oldLines) == 0 {
		for i, line := range newLines {
			result = append(result, Line{Kind: Added, Content: line, NewLine: i + 1})
		}
		return result
	}
	if len(newLines) == 0 {
		for i, line := range oldLines {
			result = append(result, Line{Kind: Removed, Content: line, OldLine: i + 1})
		}
		return result
	}

	lcs := commonSubsequence(oldLines, newLines)

	oldIdx, newIdx, lcsIdx := 0, 0, 0
	for oldIdx < len(oldLines) || newIdx < len(newLines) {
		switch {
		case lcsIdx < len(lcs) &&
			oldIdx < len(oldLines) && newIdx < len(newLines) &&
			oldLines[oldIdx] == newLines[newIdx] &&
			oldLines[oldIdx] == lcs[lcsIdx]:
			result = append(result, Line{
				Kind:    Context,
				Content: oldLines[oldIdx],
				OldLine: oldIdx + 1,
				NewLine: newIdx + 1,
			})
			oldIdx++
			newIdx++
			lcsIdx++
		case oldIdx < len(oldLines) && (lcsIdx >= len(lcs) || oldLines[oldIdx] != lcs[lcsIdx]):
			result = append(result, Line{Kind: Removed, Content: oldLines[oldIdx], OldLine: oldIdx + 1})
			oldIdx++
		case newIdx < len(newLines):
			result = append(result, Line{Kind: Added, Content: newLines[newIdx], NewLine: newIdx + 1})
			newIdx++
		}
	}

	return result
}

// commonSubsequence computes the longest common subsequence of two line
// slices with the standard dynamic-programming table.
func commonSubsequence(a, b []string) []string {
	m, n := len(a), len(b)

	dp := make([][]int, m+1)
	for i := range dp {
		dp[i] = make([]int, n+1)
	}
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if a[i-1] == b[j-1] {
				dp[i][j] = dp[i-1][j-1] + 1
			} else if dp[i-1][j] >= dp[i][j-1] {
				dp[i][j] = dp[i-1][j]
			} else {
				dp[i][j] = dp[i][j-1]
			}
		}
	}

	var lcs []string
	i, j := m, n
	for i > 0 && j > 0 {
		if a[i-1] == b[j-1] {
			lcs = append([]string{a[i-1]}, lcs...)
			i--
			j--
		} else if dp[i-1][j] > dp[i][j-1] {
			i--
		} else {
			j--
		}
	}
	return lcs
}

// groupHunks groups diff lines into hunks, keeping contextLines of
// unchanged text on both sides of every change run.
func groupHunks(lines []Line) []Hunk {
	if len(lines) == 0 {
		return nil
	}

	// Index the positions of actual changes.
	changed := make([]bool, len(lines))
	hasChange := false
	for i, l := range lines {
		if l.Kind != Context {
			changed[i] = true
			hasChange = true
		}
	}
	if !hasChange {
		return nil
	}

	// A line belongs to a hunk when it is within contextLines of a change.
	keep := make([]bool, len(lines))
	for i := range lines {
		lo := i - contextLines
		if lo < 0 {
			lo = 0
		}
		hi := i + contextLines
		if hi > len(lines)-1 {
			hi = len(lines) - 1
		}
		for j := lo; j <= hi; j++ {
			if changed[j] {
				keep[i] = true
				break
			}
		}
	}

	var hunks []Hunk
	var cur *Hunk
	for i, l := range lines {
		if !keep[i] {
			if cur != nil {
				hunks = append(hunks, *cur)
				cur = nil
			}
			continue
		}
		if cur == nil {
			cur = &Hunk{}
			if l.OldLine > 0 {
				cur.OldStart = l.OldLine
			}
			if l.NewLine > 0 {
				cur.NewStart = l.NewLine
			}
		}
		cur.Lines = append(cur.Lines, l)
		if l.OldLine > 0 {
			cur.OldCount++
		}
		if l.NewLine > 0 {
			cur.NewCount++
		}
	}
	if cur != nil {
		hunks = append(hunks, *cur)
	}
	return hunks
}

// =============================================================================
// UNIFIED FORMAT
// =============================================================================

// FormatUnified renders the diff in standard unified diff text format.
func FormatUnified(f *File) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("--- a/%s\n", f.Path))
	sb.WriteString(fmt.Sprintf("+++ b/%s\n", f.Path))

	for _, hunk := range f.Hunks {
		sb.WriteString(fmt.Sprintf("@@ -%d,%d +%d,%d @@\n",
			hunk.OldStart, hunk.OldCount, hunk.NewStart, hunk.NewCount))
		for _, line := range hunk.Lines {
			sb.WriteString(line.Kind.Marker())
			sb.WriteString(line.Content)
			sb.WriteString("\n")
		}
	}

	return sb.String()
}
