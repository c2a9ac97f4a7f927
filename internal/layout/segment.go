// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package layout is the shared responsive decision engine for the rigwatch TUI.
package layout

import (
	"github.com/mattn/go-runewidth"
)

// =============================================================================
// STATUS SEGMENTS AND LABEL ABBREVIATION
// =============================================================================

// AbbreviationMode is the policy governing whether a segment shows its full
// or short label.
type AbbreviationMode int

const (
	// AbbrevFull always shows the full label.
	AbbrevFull AbbreviationMode = iota

	// AbbrevShort always shows the abbreviated label when one exists.
	AbbrevShort

	// AbbrevAuto abbreviates below autoAbbrevWidth columns. This gate is
	// independent of the breakpoint classifier.
	AbbrevAuto
)

// autoAbbrevWidth is the column threshold below which AbbrevAuto abbreviates.
const autoAbbrevWidth = 80

// Segment is one labeled fragment of a composed status line.
//
// Abbreviated is deliberately tri-state: a nil pointer means "no
// abbreviation exists; fall back to the full label", while a pointer to the
// empty string means "suppress the label entirely when abbreviated". The two
// are distinct, meaningful values and must not be collapsed.
type Segment struct {
	Icon        string
	Label       string
	Abbreviated *string
	Value       string
}

// Suppressed is an Abbreviated value meaning "drop the label when
// abbreviating" without losing the full label for wide layouts.
func Suppressed() *string {
	s := ""
	return &s
}

// Abbrev wraps a short label for Segment.Abbreviated.
func Abbrev(s string) *string {
	return &s
}

// UseAbbreviated resolves an abbreviation mode and width into a concrete
// abbreviate-or-not decision.
func UseAbbreviated(mode AbbreviationMode, width int) bool {
	return mode == AbbrevShort || (mode == AbbrevAuto && width < autoAbbrevWidth)
}

// EffectiveLabel returns the label a segment shows, or ok=false when the
// segment renders without one. A segment with no full label never shows a
// label; an abbreviated empty string suppresses the label; an absent
// abbreviation falls back to the full label.
func (s Segment) EffectiveLabel(mode AbbreviationMode, width int) (label string, ok bool) {
	if s.Label == "" {
		return "", false
	}
	if UseAbbreviated(mode, width) && s.Abbreviated != nil {
		if *s.Abbreviated == "" {
			return "", false
		}
		return *s.Abbreviated, true
	}
	return s.Label, true
}

// MinWidth returns the narrowest display width of the segment for the given
// abbreviation decision: icon width plus one separating space (only when an
// icon is present), the resolved label width, and the value width. Callers
// use it to drop whole segments under extreme width pressure.
func (s Segment) MinWidth(useAbbrev bool) int {
	w := 0
	if s.Icon != "" {
		w += runewidth.StringWidth(s.Icon) + 1
	}
	if s.Label != "" {
		label := s.Label
		if useAbbrev && s.Abbreviated != nil {
			label = *s.Abbreviated
		}
		w += runewidth.StringWidth(label)
	}
	w += runewidth.StringWidth(s.Value)
	return w
}
