// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package dash is the root Bubble Tea model for the rigwatch dashboard.
//
// The dashboard composes the event feed, task previews, diff viewer, and
// status bar, and owns the responsive decisions that cut across them: the
// terminal dimensions from the window size message, the breakpoint those
// dimensions classify into, and the display mode the user cycles through.
// Components receive resolved widths and modes; none of them talk to the
// terminal directly.
//
// Usage:
//
//	m := dash.New(cfg, theme, probe)
//	p := tea.NewProgram(m, tea.WithAltScreen())
//	_, err := p.Run()
package dash
