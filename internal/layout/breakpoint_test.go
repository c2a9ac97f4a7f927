// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package layout is the shared responsive decision engine for the rigwatch TUI.
package layout

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		width int
		want  Breakpoint
	}{
		{-100, BreakpointNarrow},
		{-1, BreakpointNarrow},
		{0, BreakpointNarrow},
		{59, BreakpointNarrow},
		{60, BreakpointCompact},
		{99, BreakpointCompact},
		{100, BreakpointNormal},
		{159, BreakpointNormal},
		{160, BreakpointWide},
		{500, BreakpointWide},
	}

	for _, tc := range tests {
		got := Classify(tc.width, DefaultThresholds)
		if got != tc.want {
			t.Errorf("Classify(%d) = %v, want %v", tc.width, got, tc.want)
		}
	}
}

func TestClassifyStatusBarThresholds(t *testing.T) {
	tests := []struct {
		width int
		want  Breakpoint
	}{
		{79, BreakpointNarrow},
		{80, BreakpointCompact},
		{99, BreakpointCompact},
		{100, BreakpointNormal},
		{119, BreakpointNormal},
		{120, BreakpointWide},
	}

	for _, tc := range tests {
		got := Classify(tc.width, StatusBarThresholds)
		if got != tc.want {
			t.Errorf("Classify(%d, StatusBar) = %v, want %v", tc.width, got, tc.want)
		}
	}
}

// Every integer width must land in exactly one category, with category
// boundaries exactly at the thresholds.
func TestClassifyPartitionsWidthLine(t *testing.T) {
	sets := []Thresholds{
		DefaultThresholds,
		StatusBarThresholds,
		{NarrowMax: 1, CompactMax: 2, NormalMax: 3},
		{NarrowMax: 40, CompactMax: 200, NormalMax: 700},
	}

	for _, set := range sets {
		if !set.Valid() {
			t.Fatalf("thresholds %+v unexpectedly invalid", set)
		}
		prev := Classify(-500, set)
		transitions := 0
		for w := -499; w <= set.NormalMax+100; w++ {
			got := Classify(w, set)
			if got < prev {
				t.Fatalf("Classify(%d, %+v) = %v went backwards from %v", w, set, got, prev)
			}
			if got != prev {
				transitions++
				// A transition may only happen exactly at a threshold.
				if w != set.NarrowMax && w != set.CompactMax && w != set.NormalMax {
					t.Fatalf("Classify transition at width %d, not a threshold of %+v", w, set)
				}
			}
			prev = got
		}
		if transitions != 3 {
			t.Errorf("thresholds %+v produced %d transitions, want 3", set, transitions)
		}
	}
}

func TestThresholdsValid(t *testing.T) {
	tests := []struct {
		set  Thresholds
		want bool
	}{
		{Thresholds{60, 100, 160}, true},
		{Thresholds{0, 100, 160}, false},
		{Thresholds{100, 100, 160}, false},
		{Thresholds{100, 60, 160}, false},
		{Thresholds{60, 100, 100}, false},
	}

	for _, tc := range tests {
		if got := tc.set.Valid(); got != tc.want {
			t.Errorf("Valid(%+v) = %v, want %v", tc.set, got, tc.want)
		}
	}
}

func TestBreakpointString(t *testing.T) {
	tests := []struct {
		bp   Breakpoint
		want string
	}{
		{BreakpointNarrow, "narrow"},
		{BreakpointCompact, "compact"},
		{BreakpointNormal, "normal"},
		{BreakpointWide, "wide"},
		{Breakpoint(99), "unknown"},
	}

	for _, tc := range tests {
		if got := tc.bp.String(); got != tc.want {
			t.Errorf("String(%d) = %q, want %q", int(tc.bp), got, tc.want)
		}
	}
}
