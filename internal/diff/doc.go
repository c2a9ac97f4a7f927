// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package diff computes line-oriented file differences for the dashboard's
// diff viewer.
//
// The viewer itself only consumes the data model in this package (File,
// Hunk, Line); the computation here is a plain LCS line diff with hunk
// grouping and three lines of context, plus a side-by-side row pairing used
// by the split presentation.
package diff
