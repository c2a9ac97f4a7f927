// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package layout is the shared responsive decision engine for the rigwatch TUI.
//
// Every presentation component answers the same questions on every render:
// how wide am I, which breakpoint am I in, how much text fits, which label
// variant do I show, and which structural variant (unified vs split diff,
// gutter width) do I use. Rather than re-deriving those answers per
// component, the answers live here once and components consume them with
// their own named configurations (thresholds, budgets, layout constants).
//
// All functions in this package are pure: they take the current terminal
// dimensions and per-component configuration and return a value, with no
// hidden state and no caching. They never return errors; degenerate inputs
// (zero, negative, absurd widths) resolve to documented floors so a resize
// storm can never crash a render.
package layout
