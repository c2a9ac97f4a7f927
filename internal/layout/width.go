// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package layout is the shared responsive decision engine for the rigwatch TUI.
package layout

// =============================================================================
// EFFECTIVE WIDTH RESOLUTION
// =============================================================================

// Config holds the per-component width constants a caller injects into
// ResolveWidth. Components keep their own named Config rather than
// hardcoding widths at call sites.
//
// Invariant: MinWidth <= DefaultWidth; a resolved responsive width is never
// below MinWidth.
type Config struct {
	MinWidth     int // floor for responsive resolution
	DefaultWidth int // fixed width used when not responsive
	SafetyMargin int // columns reserved for borders/padding around content
}

// WidthRequest carries the per-render inputs to ResolveWidth.
//
// Explicit is honored only when HasExplicit is set, and it wins outright
// with no clamping: callers may intentionally force a width below MinWidth
// for testing or embedding.
type WidthRequest struct {
	Explicit    int
	HasExplicit bool
	Responsive  bool
	ProbeWidth  int // current terminal width from the dimension probe
}

// ResolveWidth turns a width request and a component Config into one
// effective content width. Stable under repeated calls with identical
// inputs; callers re-invoke it on every probe change.
func ResolveWidth(req WidthRequest, cfg Config) int {
	if req.HasExplicit {
		return req.Explicit
	}
	if req.Responsive {
		w := req.ProbeWidth - cfg.SafetyMargin
		if w < cfg.MinWidth {
			w = cfg.MinWidth
		}
		return w
	}
	return cfg.DefaultWidth
}
