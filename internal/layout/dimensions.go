// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package layout is the shared responsive decision engine for the rigwatch TUI.
package layout

import (
	"os"

	"golang.org/x/term"
)

// =============================================================================
// TERMINAL DIMENSION PROBE
// =============================================================================

// Fallback dimensions used when the terminal size cannot be measured
// (not a TTY, probe error). Components still render at these dimensions
// rather than treating an unavailable probe as an error.
const (
	FallbackWidth  = 80
	FallbackHeight = 24
)

// Dimensions is one measurement of the terminal. Available=false means the
// values are the fallbacks, not a real measurement; callers may still use
// them as-is.
type Dimensions struct {
	Width     int
	Height    int
	Available bool
}

// Probe supplies terminal dimensions, polled once per render cycle.
// Implementations must be safe for repeated rapid calls.
type Probe interface {
	Measure() Dimensions
}

// TerminalProbe measures a real terminal file descriptor via the term
// package.
type TerminalProbe struct {
	f *os.File
}

// NewTerminalProbe creates a probe over f, typically os.Stdout.
func NewTerminalProbe(f *os.File) *TerminalProbe {
	return &TerminalProbe{f: f}
}

// Measure reads the current terminal size, falling back to 80x24 when the
// descriptor is not a terminal or the size query fails.
func (p *TerminalProbe) Measure() Dimensions {
	fd := int(p.f.Fd())
	if !term.IsTerminal(fd) {
		return Dimensions{Width: FallbackWidth, Height: FallbackHeight}
	}
	w, h, err := term.GetSize(fd)
	if err != nil {
		return Dimensions{Width: FallbackWidth, Height: FallbackHeight}
	}
	return Dimensions{Width: w, Height: h, Available: true}
}

// FixedProbe returns the same dimensions on every measurement. Used by tests
// and the demo feed.
type FixedProbe struct {
	Dims Dimensions
}

// Measure returns the fixed dimensions.
func (p FixedProbe) Measure() Dimensions {
	return p.Dims
}
