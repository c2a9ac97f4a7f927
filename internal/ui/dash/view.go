// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package dash

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/rigwatch-tui/internal/layout"
	"github.com/jeranaias/rigwatch-tui/internal/ui/styles"
)

// =============================================================================
// VIEW
// =============================================================================

// View renders the full dashboard frame.
func (m *Model) View() string {
	var sb strings.Builder

	sb.WriteString(m.renderHeader())
	sb.WriteString("\n")

	sb.WriteString(m.logView.View())
	sb.WriteString("\n")

	if tasks := m.renderTasks(); tasks != "" {
		sb.WriteString(tasks)
		sb.WriteString("\n")
	}

	sb.WriteString(m.diffViewer.View())
	sb.WriteString("\n")

	if m.showHelp {
		helpStyle := lipgloss.NewStyle().Foreground(styles.TextMuted)
		sb.WriteString(helpStyle.Render(m.keys.HelpText()))
		sb.WriteString("\n")
	}

	sb.WriteString(m.statusBar.View())
	return sb.String()
}

// renderHeader renders the title line with the breakpoint name. Narrow
// terminals drop the breakpoint badge.
func (m *Model) renderHeader() string {
	titleStyle := lipgloss.NewStyle().Foreground(styles.Purple).Bold(true)
	title := titleStyle.Render("rigwatch")

	bp := m.breakpoint()
	if bp == layout.BreakpointNarrow {
		return title
	}

	badgeStyle := lipgloss.NewStyle().Foreground(styles.TextMuted)
	badge := badgeStyle.Render(bp.String())
	if m.spinner.Active() {
		return title + "  " + m.spinner.View() + "  " + badge
	}
	return title + "  " + badge
}

// renderTasks renders the task previews and the details section.
func (m *Model) renderTasks() string {
	if len(m.previews) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, tp := range m.previews {
		sb.WriteString(tp.View(m.now))
		sb.WriteString("\n")
	}
	if details := m.details.View(); details != "" {
		sb.WriteString(details)
	}
	return strings.TrimRight(sb.String(), "\n")
}
