// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/rigwatch-tui/internal/ui/styles"
)

// =============================================================================
// COUNTDOWN BADGE
// =============================================================================

// Countdown renders a deadline as a colored seconds badge. Seconds round up
// so the display never claims more time is left than actually is, and the
// urgency color comes from the same rounded value the user sees.
type Countdown struct {
	Deadline time.Time
}

// NewCountdown creates a countdown toward the given deadline.
func NewCountdown(deadline time.Time) Countdown {
	return Countdown{Deadline: deadline}
}

// Remaining returns the time left at now. Expired deadlines go negative.
func (c Countdown) Remaining(now time.Time) time.Duration {
	return c.Deadline.Sub(now)
}

// View renders the badge for the given instant, e.g. "3s".
func (c Countdown) View(now time.Time) string {
	remaining := c.Remaining(now)
	secs := styles.CountdownSeconds(remaining)
	color := styles.ClassifyCountdown(remaining)

	style := lipgloss.NewStyle().Bold(true).Foreground(color.Color())
	return style.Render(strconv.Itoa(secs) + "s")
}
