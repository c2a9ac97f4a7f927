// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the rigwatch application.
//
// This package contains common helper functions used throughout the
// application for display-width string manipulation and file operations.
//
// # Key Functions
//
// String Utilities:
//   - DisplayWidth: terminal column width of a string (CJK aware)
//   - TruncateWidth: width-bounded truncation with ellipsis
//   - PadRight: pad to an exact display width
//
// File Operations:
//   - AtomicWriteFile: crash-safe file writing with fsync
//
// # Usage
//
//	// Bound a line to the current content width
//	line := util.TruncateWidth(raw, contentWidth)
//
//	// Write config atomically to prevent data loss
//	err := util.AtomicWriteFile(path, data, 0644)
package util
