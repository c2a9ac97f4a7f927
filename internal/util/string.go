// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the rigwatch application.
package util

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/unicode/norm"
)

// UNICODE: Display-width aware string handling.
// Terminal columns are not runes: CJK characters occupy two columns and
// combining marks occupy none. All width math goes through go-runewidth,
// after NFC normalization so decomposed sequences measure like their
// composed forms.

// DisplayWidth returns the number of terminal columns s occupies.
func DisplayWidth(s string) int {
	return runewidth.StringWidth(norm.NFC.String(s))
}

// TruncateWidth truncates a string to a maximum display width, appending
// "..." when text is cut. A maxWidth of 3 or less collapses an over-wide
// string to the widest prefix of "..." that fits; negative maxWidth returns
// the empty string.
func TruncateWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	s = norm.NFC.String(s)
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return strings.Repeat(".", maxWidth)
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

// PadRight pads s with spaces to exactly width columns, truncating first if
// s is wider.
func PadRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = TruncateWidth(s, width)
	if gap := width - runewidth.StringWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
