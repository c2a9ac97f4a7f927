// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the rigwatch TUI.
//
// It holds the adaptive color palette, the terminal-capability-aware Theme,
// the easing/animation primitives used by animated indicators, and the
// threshold classifiers that map numeric magnitudes (confidence scores,
// countdown remainders) to urgency colors.
//
// All colors use Lip Gloss AdaptiveColor for automatic light/dark detection.
package styles
