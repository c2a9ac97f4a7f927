// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package layout is the shared responsive decision engine for the rigwatch TUI.
package layout

import "testing"

func TestUseAbbreviated(t *testing.T) {
	tests := []struct {
		mode  AbbreviationMode
		width int
		want  bool
	}{
		{AbbrevFull, 40, false},
		{AbbrevFull, 200, false},
		{AbbrevShort, 200, true},
		{AbbrevShort, 40, true},
		{AbbrevAuto, 79, true},
		{AbbrevAuto, 80, false},
		{AbbrevAuto, 81, false},
		{AbbrevAuto, 0, true},
		{AbbrevAuto, -10, true},
	}

	for _, tc := range tests {
		got := UseAbbreviated(tc.mode, tc.width)
		if got != tc.want {
			t.Errorf("UseAbbreviated(%v, %d) = %v, want %v", tc.mode, tc.width, got, tc.want)
		}
	}
}

func TestEffectiveLabel(t *testing.T) {
	tests := []struct {
		name    string
		seg     Segment
		mode    AbbreviationMode
		width   int
		want    string
		wantOK  bool
	}{
		{
			name:   "no label at all",
			seg:    Segment{Value: "42"},
			mode:   AbbrevFull,
			width:  200,
			wantOK: false,
		},
		{
			name:   "full label in full mode",
			seg:    Segment{Label: "Tokens", Abbreviated: Abbrev("Tok"), Value: "42"},
			mode:   AbbrevFull,
			width:  40,
			want:   "Tokens",
			wantOK: true,
		},
		{
			name:   "abbreviated label in short mode",
			seg:    Segment{Label: "Tokens", Abbreviated: Abbrev("Tok"), Value: "42"},
			mode:   AbbrevShort,
			width:  200,
			want:   "Tok",
			wantOK: true,
		},
		{
			name:   "empty abbreviation suppresses the label",
			seg:    Segment{Label: "Tokens", Abbreviated: Suppressed(), Value: "42"},
			mode:   AbbrevShort,
			width:  200,
			wantOK: false,
		},
		{
			name:   "missing abbreviation falls back to full label",
			seg:    Segment{Label: "Tokens", Value: "42"},
			mode:   AbbrevShort,
			width:  200,
			want:   "Tokens",
			wantOK: true,
		},
		{
			name:   "auto abbreviates below the 80-column gate",
			seg:    Segment{Label: "Tokens", Abbreviated: Abbrev("Tok"), Value: "42"},
			mode:   AbbrevAuto,
			width:  79,
			want:   "Tok",
			wantOK: true,
		},
		{
			name:   "auto stays full at the 80-column gate",
			seg:    Segment{Label: "Tokens", Abbreviated: Abbrev("Tok"), Value: "42"},
			mode:   AbbrevAuto,
			width:  80,
			want:   "Tokens",
			wantOK: true,
		},
	}

	for _, tc := range tests {
		got, ok := tc.seg.EffectiveLabel(tc.mode, tc.width)
		if ok != tc.wantOK || got != tc.want {
			t.Errorf("%s: EffectiveLabel = (%q, %v), want (%q, %v)", tc.name, got, ok, tc.want, tc.wantOK)
		}
	}
}

// The abbreviated rendering never resolves to the full label when a
// non-empty abbreviation exists.
func TestEffectiveLabelNeverFullWhenAbbreviated(t *testing.T) {
	seg := Segment{Label: "Confidence", Abbreviated: Abbrev("Conf"), Value: "87%"}
	for width := -10; width < 300; width++ {
		got, ok := seg.EffectiveLabel(AbbrevShort, width)
		if !ok || got == seg.Label {
			t.Fatalf("EffectiveLabel(short, width=%d) = (%q, %v), abbreviation ignored", width, got, ok)
		}
	}
}

func TestSegmentMinWidth(t *testing.T) {
	tests := []struct {
		name      string
		seg       Segment
		useAbbrev bool
		want      int
	}{
		{
			name: "icon adds its width plus one separator",
			seg:  Segment{Icon: "*", Label: "Mode", Value: "auto"},
			want: 2 + 4 + 4,
		},
		{
			name: "no icon means no separator",
			seg:  Segment{Label: "Mode", Value: "auto"},
			want: 4 + 4,
		},
		{
			name:      "abbreviated label measured when abbreviating",
			seg:       Segment{Label: "Confidence", Abbreviated: Abbrev("Conf"), Value: "87%"},
			useAbbrev: true,
			want:      4 + 3,
		},
		{
			name:      "suppressed label contributes nothing",
			seg:       Segment{Icon: "*", Label: "Confidence", Abbreviated: Suppressed(), Value: "87%"},
			useAbbrev: true,
			want:      2 + 3,
		},
		{
			name: "value only",
			seg:  Segment{Value: "Ready"},
			want: 5,
		},
	}

	for _, tc := range tests {
		got := tc.seg.MinWidth(tc.useAbbrev)
		if got != tc.want {
			t.Errorf("%s: MinWidth = %d, want %d", tc.name, got, tc.want)
		}
	}
}

// Abbreviating a segment can only shrink (or keep) its minimum width
// whenever the abbreviation is no longer than the full label.
func TestSegmentMinWidthAbbreviatedNotWider(t *testing.T) {
	segs := []Segment{
		{Icon: "#", Label: "Tokens", Abbreviated: Abbrev("Tok"), Value: "1,024"},
		{Label: "Status", Abbreviated: Abbrev("St"), Value: "Ready"},
		{Label: "Mode", Abbreviated: Abbrev("Mode"), Value: "auto"},
		{Icon: "@", Label: "Source", Abbreviated: Suppressed(), Value: "demo"},
		{Label: "Plain", Value: "v"},
	}

	for _, seg := range segs {
		full := seg.MinWidth(false)
		short := seg.MinWidth(true)
		if short > full {
			t.Errorf("segment %+v: abbreviated MinWidth %d > full %d", seg, short, full)
		}
	}
}
