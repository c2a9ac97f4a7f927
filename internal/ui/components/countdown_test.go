// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"
	"time"

	"github.com/jeranaias/rigwatch-tui/internal/ui/styles"
)

func TestCountdownRoundsUp(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		remaining time.Duration
		want      string
	}{
		{5 * time.Second, "5s"},
		{5*time.Second + time.Millisecond, "6s"},
		{time.Millisecond, "1s"},
		{0, "0s"},
		{-3 * time.Second, "0s"},
	}
	for _, tt := range tests {
		c := NewCountdown(now.Add(tt.remaining))
		if got := c.View(now); !strings.Contains(got, tt.want) {
			t.Errorf("View with %v remaining = %q, want it to contain %q", tt.remaining, got, tt.want)
		}
	}
}

func TestCountdownUrgencyMatchesDisplay(t *testing.T) {
	// The color threshold uses the same rounded seconds the user sees.
	tests := []struct {
		remaining time.Duration
		want      styles.CountdownColor
	}{
		{5 * time.Second, styles.CountdownYellow},
		{5*time.Second + time.Millisecond, styles.CountdownGreen},
		{2 * time.Second, styles.CountdownRed},
		{2*time.Second + time.Millisecond, styles.CountdownYellow},
		{time.Millisecond, styles.CountdownRed},
		{-time.Second, styles.CountdownRed},
	}
	for _, tt := range tests {
		if got := styles.ClassifyCountdown(tt.remaining); got != tt.want {
			t.Errorf("ClassifyCountdown(%v) = %v, want %v", tt.remaining, got, tt.want)
		}
	}
}

func TestCountdownRemaining(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	c := NewCountdown(now.Add(90 * time.Second))
	if got := c.Remaining(now); got != 90*time.Second {
		t.Errorf("Remaining = %v, want 90s", got)
	}
}
