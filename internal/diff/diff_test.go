// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package diff computes line-oriented file differences for the dashboard.
package diff

import (
	"strings"
	"testing"
)

func TestComputeModified(t *testing.T) {
	oldContent := "line one\nline two\nline three\n"
	newContent := "line one\nline 2\nline three\n"

	f := Compute("notes.txt", oldContent, newContent)

	if f.Stats.FileMode != "modified" {
		t.Errorf("FileMode = %q, want %q", f.Stats.FileMode, "modified")
	}
	if f.Stats.Additions != 1 || f.Stats.Deletions != 1 {
		t.Errorf("stats = +%d -%d, want +1 -1", f.Stats.Additions, f.Stats.Deletions)
	}
	if len(f.Hunks) != 1 {
		t.Fatalf("hunks = %d, want 1", len(f.Hunks))
	}

	var kinds []LineKind
	for _, l := range f.Hunks[0].Lines {
		kinds = append(kinds, l.Kind)
	}
	want := []LineKind{Context, Removed, Added, Context}
	if len(kinds) != len(want) {
		t.Fatalf("hunk lines = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("line %d kind = %v, want %v", i, kinds[i], want[i])
		}
	}
}

func TestComputeNewFile(t *testing.T) {
	f := Compute("fresh.go", "", "package main\n\nfunc main() {}\n")

	if f.Stats.FileMode != "new" {
		t.Errorf("FileMode = %q, want %q", f.Stats.FileMode, "new")
	}
	if f.Stats.Additions != 3 || f.Stats.Deletions != 0 {
		t.Errorf("stats = +%d -%d, want +3 -0", f.Stats.Additions, f.Stats.Deletions)
	}
}

func TestComputeDeletedFile(t *testing.T) {
	f := Compute("gone.txt", "a\nb\n", "")

	if f.Stats.FileMode != "deleted" {
		t.Errorf("FileMode = %q, want %q", f.Stats.FileMode, "deleted")
	}
	if f.Stats.Additions != 0 || f.Stats.Deletions != 2 {
		t.Errorf("stats = +%d -%d, want +0 -2", f.Stats.Additions, f.Stats.Deletions)
	}
}

func TestComputeIdentical(t *testing.T) {
	content := "same\ncontent\n"
	f := Compute("same.txt", content, content)

	if len(f.Hunks) != 0 {
		t.Errorf("identical content produced %d hunks, want 0", len(f.Hunks))
	}
	if f.Stats.Additions != 0 || f.Stats.Deletions != 0 {
		t.Errorf("stats = +%d -%d, want +0 -0", f.Stats.Additions, f.Stats.Deletions)
	}
}

func TestHunkContextWindow(t *testing.T) {
	var oldSB, newSB strings.Builder
	for i := 1; i <= 20; i++ {
		line := "line"
		oldSB.WriteString(line + "\n")
		if i == 10 {
			newSB.WriteString("changed\n")
		} else {
			newSB.WriteString(line + "\n")
		}
	}

	// All "line" lines are identical so the LCS is ambiguous; what matters
	// here is that hunks carry at most 3 context lines around each change.
	f := Compute("ctx.txt", oldSB.String(), newSB.String())
	if len(f.Hunks) == 0 {
		t.Fatal("no hunks for changed content")
	}
	for _, h := range f.Hunks {
		leading := 0
		for _, l := range h.Lines {
			if l.Kind != Context {
				break
			}
			leading++
		}
		if leading > 3 {
			t.Errorf("hunk carries %d leading context lines, want <= 3", leading)
		}
	}
}

func TestMaxLineNumber(t *testing.T) {
	f := Compute("n.txt", "a\nb\nc\nd\ne\n", "a\nb\nc\nd\nE\n")
	if got := f.MaxLineNumber(); got != 5 {
		t.Errorf("MaxLineNumber = %d, want 5", got)
	}

	empty := Compute("e.txt", "x\n", "x\n")
	if got := empty.MaxLineNumber(); got != 0 {
		t.Errorf("MaxLineNumber for unchanged diff = %d, want 0", got)
	}
}

func TestFormatUnified(t *testing.T) {
	f := Compute("app.txt", "keep\ndrop\n", "keep\nnew\n")
	out := FormatUnified(f)

	for _, want := range []string{"--- a/app.txt", "+++ b/app.txt", "-drop", "+new", "@@"} {
		if !strings.Contains(out, want) {
			t.Errorf("FormatUnified output missing %q:\n%s", want, out)
		}
	}
}

func TestSummary(t *testing.T) {
	tests := []struct {
		name     string
		old, new string
		want     string
	}{
		{"modified", "a\nb\n", "a\nc\n", "Modified +1 -1"},
		{"new", "", "a\n", "New file +1"},
		{"deleted", "a\n", "", "File deleted -1"},
	}

	for _, tc := range tests {
		f := Compute("f", tc.old, tc.new)
		if got := f.Summary(); got != tc.want {
			t.Errorf("%s: Summary = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestSplitRowsPairing(t *testing.T) {
	h := Hunk{Lines: []Line{
		{Kind: Context, Content: "ctx", OldLine: 1, NewLine: 1},
		{Kind: Removed, Content: "old1", OldLine: 2},
		{Kind: Removed, Content: "old2", OldLine: 3},
		{Kind: Added, Content: "new1", NewLine: 2},
		{Kind: Context, Content: "tail", OldLine: 4, NewLine: 3},
	}}

	rows := h.SplitRows()
	if len(rows) != 4 {
		t.Fatalf("rows = %d, want 4", len(rows))
	}

	// Context occupies both sides.
	if rows[0].Left == nil || rows[0].Right == nil || rows[0].Left.Content != "ctx" {
		t.Errorf("row 0 = %+v, want ctx on both sides", rows[0])
	}
	// First change row pairs old1 with new1.
	if rows[1].Left == nil || rows[1].Left.Content != "old1" ||
		rows[1].Right == nil || rows[1].Right.Content != "new1" {
		t.Errorf("row 1 = %+v, want old1|new1", rows[1])
	}
	// Second removal has no right-side partner.
	if rows[2].Left == nil || rows[2].Left.Content != "old2" || rows[2].Right != nil {
		t.Errorf("row 2 = %+v, want old2|<nil>", rows[2])
	}
	if rows[3].Left == nil || rows[3].Left.Content != "tail" {
		t.Errorf("row 3 = %+v, want tail on both sides", rows[3])
	}
}

func TestSplitRowsPureAddition(t *testing.T) {
	h := Hunk{Lines: []Line{
		{Kind: Added, Content: "a1", NewLine: 1},
		{Kind: Added, Content: "a2", NewLine: 2},
	}}

	rows := h.SplitRows()
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	for i, row := range rows {
		if row.Left != nil || row.Right == nil {
			t.Errorf("row %d = %+v, want <nil>|addition", i, row)
		}
	}
}
