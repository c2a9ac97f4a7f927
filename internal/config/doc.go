// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for
// rigwatch.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, and validation.
//
// Configuration file locations (in order of precedence):
//   - ~/.rigwatch/config.toml
//   - ~/.rigwatch/config.json
//   - Built-in defaults
//
// A running dashboard can also watch the config file for edits; see Watcher.
package config
