// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for
// rigwatch.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/rigwatch-tui/internal/layout"
	"github.com/jeranaias/rigwatch-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete rigwatch configuration.
type Config struct {
	Version string `toml:"version" json:"version"`

	UI          UIConfig         `toml:"ui" json:"ui"`
	Breakpoints BreakpointConfig `toml:"breakpoints" json:"breakpoints"`
}

// UIConfig contains display preferences.
type UIConfig struct {
	// Theme: "auto", "dark", "light"
	Theme string `toml:"theme" json:"theme"`

	// DisplayMode: "normal", "compact", "verbose"
	DisplayMode string `toml:"display_mode" json:"display_mode"`

	// DiffMode: "auto", "unified", "split", "inline"
	DiffMode string `toml:"diff_mode" json:"diff_mode"`

	// Responsive resizes content widths with the terminal; when false the
	// dashboard renders at fixed default widths.
	Responsive bool `toml:"responsive" json:"responsive"`

	// AllowKeyboardToggle gates all keyboard handling for collapsible
	// sections.
	AllowKeyboardToggle bool `toml:"allow_keyboard_toggle" json:"allow_keyboard_toggle"`

	// ToggleKey is the key that toggles a focused collapsible section.
	// Setting a custom key replaces the default "c"; it does not add to it.
	ToggleKey string `toml:"toggle_key" json:"toggle_key"`

	// DebugLog writes diagnostics to ~/.rigwatch/debug.log. Diagnostics
	// never go to stdout: stdout is the dashboard.
	DebugLog bool `toml:"debug_log" json:"debug_log"`
}

// BreakpointConfig overrides the default breakpoint thresholds.
type BreakpointConfig struct {
	NarrowMax  int `toml:"narrow_max" json:"narrow_max"`
	CompactMax int `toml:"compact_max" json:"compact_max"`
	NormalMax  int `toml:"normal_max" json:"normal_max"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Version: "1",
		UI: UIConfig{
			Theme:               "auto",
			DisplayMode:         "normal",
			DiffMode:            "auto",
			Responsive:          true,
			AllowKeyboardToggle: true,
			ToggleKey:           "c",
			DebugLog:            false,
		},
		Breakpoints: BreakpointConfig{
			NarrowMax:  layout.DefaultThresholds.NarrowMax,
			CompactMax: layout.DefaultThresholds.CompactMax,
			NormalMax:  layout.DefaultThresholds.NormalMax,
		},
	}
}

// =============================================================================
// TYPED ACCESSORS
// =============================================================================

// DisplayMode returns the configured display mode as the layout enum.
func (c *Config) DisplayMode() layout.DisplayMode {
	switch c.UI.DisplayMode {
	case "compact":
		return layout.ModeCompact
	case "verbose":
		return layout.ModeVerbose
	default:
		return layout.ModeNormal
	}
}

// DiffRequest returns the configured diff mode request as the layout enum.
func (c *Config) DiffRequest() layout.DiffMode {
	switch c.UI.DiffMode {
	case "unified":
		return layout.DiffUnified
	case "split":
		return layout.DiffSplit
	case "inline":
		return layout.DiffInline
	default:
		return layout.DiffAuto
	}
}

// Thresholds returns the configured breakpoint thresholds.
func (c *Config) Thresholds() layout.Thresholds {
	return layout.Thresholds{
		NarrowMax:  c.Breakpoints.NarrowMax,
		CompactMax: c.Breakpoints.CompactMax,
		NormalMax:  c.Breakpoints.NormalMax,
	}
}

// =============================================================================
// PATHS
// =============================================================================

// Dir returns the rigwatch configuration directory (~/.rigwatch).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	return filepath.Join(home, ".rigwatch"), nil
}

// PathTOML returns the TOML config file path.
func PathTOML() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// PathJSON returns the JSON config file path.
func PathJSON() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// DebugLogPath returns the debug log file path.
func DebugLogPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "debug.log"), nil
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the configuration, trying TOML first, then JSON, then
// defaults. Environment overrides and validation apply in every case.
func Load() (*Config, error) {
	if path, err := PathTOML(); err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			return LoadFromPath(path)
		}
	}
	if path, err := PathJSON(); err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			return LoadFromPath(path)
		}
	}

	cfg := Default()
	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadFromPath reads the configuration from an explicit file. The format is
// chosen by extension: .json parses as JSON, anything else as TOML.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if strings.HasSuffix(path, ".json") {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config: %w", err)
		}
	} else {
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse TOML config: %w", err)
		}
	}

	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// ApplyEnvOverrides applies RIGWATCH_* environment variables on top of the
// file-based configuration.
func (c *Config) ApplyEnvOverrides() {
	if theme := os.Getenv("RIGWATCH_THEME"); theme != "" {
		c.UI.Theme = theme
	}
	if mode := os.Getenv("RIGWATCH_DISPLAY_MODE"); mode != "" {
		c.UI.DisplayMode = mode
	}
	if diffMode := os.Getenv("RIGWATCH_DIFF_MODE"); diffMode != "" {
		c.UI.DiffMode = diffMode
	}
	if key := os.Getenv("RIGWATCH_TOGGLE_KEY"); key != "" {
		c.UI.ToggleKey = key
	}
	if debug := os.Getenv("RIGWATCH_DEBUG"); debug != "" {
		c.UI.DebugLog = debug == "1" || strings.EqualFold(debug, "true")
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate checks the configuration for values the dashboard cannot run
// with.
func (c *Config) Validate() error {
	switch c.UI.Theme {
	case "auto", "dark", "light":
	default:
		return fmt.Errorf("ui.theme: unknown theme %q", c.UI.Theme)
	}

	switch c.UI.DisplayMode {
	case "normal", "compact", "verbose":
	default:
		return fmt.Errorf("ui.display_mode: unknown mode %q", c.UI.DisplayMode)
	}

	switch c.UI.DiffMode {
	case "auto", "unified", "split", "inline":
	default:
		return fmt.Errorf("ui.diff_mode: unknown mode %q", c.UI.DiffMode)
	}

	if n := len([]rune(c.UI.ToggleKey)); n != 1 {
		return fmt.Errorf("ui.toggle_key: want exactly one character, got %q", c.UI.ToggleKey)
	}

	if !c.Thresholds().Valid() {
		return fmt.Errorf("breakpoints: thresholds must be positive and strictly increasing, got %d/%d/%d",
			c.Breakpoints.NarrowMax, c.Breakpoints.CompactMax, c.Breakpoints.NormalMax)
	}

	return nil
}

// =============================================================================
// SAVING
// =============================================================================

// Save writes the configuration as TOML to the default path, atomically.
func (c *Config) Save() error {
	path, err := PathTOML()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo writes the configuration as TOML to an explicit path, atomically.
func (c *Config) SaveTo(path string) error {
	var sb strings.Builder
	if err := toml.NewEncoder(&sb).Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := util.AtomicWriteFile(path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
