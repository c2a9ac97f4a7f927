// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the rigwatch
// dashboard: the status bar, the activity log, the diff and code viewers,
// task previews, countdown badges, and the collapsible section primitive.
//
// Every component resolves its rendering parameters through the shared
// engine in internal/layout on every render; components hold display state
// (sizes, scroll, disclosure) but never cache layout decisions across
// resizes.
package components
