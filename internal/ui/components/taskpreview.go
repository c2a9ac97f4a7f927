// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/rigwatch-tui/internal/feed"
	"github.com/jeranaias/rigwatch-tui/internal/layout"
	"github.com/jeranaias/rigwatch-tui/internal/ui/styles"
)

// =============================================================================
// TASK PREVIEW PANE
// =============================================================================

// TaskPreview renders one pending task: title, a truncated input preview,
// a confidence badge, and a deadline countdown.
type TaskPreview struct {
	Task  feed.Task
	Width int
	Mode  layout.DisplayMode

	// inputCap, when positive, overrides the computed input budget.
	inputCap int
}

// NewTaskPreview creates a preview for the given task.
func NewTaskPreview(task feed.Task) *TaskPreview {
	return &TaskPreview{
		Task:  task,
		Width: layout.FallbackWidth,
	}
}

// SetWidth sets the render width.
func (tp *TaskPreview) SetWidth(width int) {
	tp.Width = width
}

// SetDisplayMode sets the detail level.
func (tp *TaskPreview) SetDisplayMode(mode layout.DisplayMode) {
	tp.Mode = mode
}

// SetInputCap pins the input preview length, beating the budget computed
// from mode and breakpoint. Zero restores computed budgets.
func (tp *TaskPreview) SetInputCap(cap int) {
	tp.inputCap = cap
}

// inputPreview truncates the task input to the character budget for the
// current mode and breakpoint, or to the explicit cap when one is set.
func (tp *TaskPreview) inputPreview() string {
	bp := layout.Classify(tp.Width, layout.DefaultThresholds)
	budget := layout.PreviewInputBudget.Resolve(tp.Mode, bp, tp.inputCap)
	return layout.Truncate(tp.Task.Input, budget)
}

// confidenceBadge renders the confidence as a colored percentage. Values
// outside [0, 1] come straight from the reporting model and render as-is;
// classification does not clamp them.
func (tp *TaskPreview) confidenceBadge() string {
	level := styles.ClassifyConfidence(tp.Task.Confidence)
	style := lipgloss.NewStyle().Bold(true).Foreground(level.Color())
	badge := fmtPercent(tp.Task.Confidence)
	if tp.Mode == layout.ModeVerbose {
		badge += " " + level.String()
	}
	return style.Render(badge)
}

// View renders the preview at the given instant.
func (tp *TaskPreview) View(now time.Time) string {
	titleStyle := lipgloss.NewStyle().Foreground(styles.TextPrimary).Bold(true)
	inputStyle := lipgloss.NewStyle().Foreground(styles.TextSecondary)

	countdown := NewCountdown(tp.Task.Deadline)

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(tp.Task.Title))
	sb.WriteString("  ")
	sb.WriteString(tp.confidenceBadge())
	sb.WriteString("  ")
	sb.WriteString(countdown.View(now))

	if tp.Mode != layout.ModeCompact {
		if preview := tp.inputPreview(); preview != "" {
			sb.WriteString("\n")
			sb.WriteString(inputStyle.Render(preview))
		}
	}
	return sb.String()
}
