// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/rigwatch-tui/internal/diff"
	"github.com/jeranaias/rigwatch-tui/internal/layout"
	"github.com/jeranaias/rigwatch-tui/internal/ui/styles"
	"github.com/jeranaias/rigwatch-tui/internal/util"
)

// =============================================================================
// DIFF VIEWER
// =============================================================================

// DiffViewer displays file diffs in unified, split, or inline form. The
// effective form is recomputed from the current width on every render, so a
// resize immediately reflows the view.
type DiffViewer struct {
	file    *diff.File
	width   int
	height  int
	request layout.DiffMode
	theme   *styles.Theme
}

// NewDiffViewer creates a diff viewer in auto mode.
func NewDiffViewer(file *diff.File, theme *styles.Theme) *DiffViewer {
	return &DiffViewer{
		file:    file,
		width:   layout.FallbackWidth,
		height:  layout.FallbackHeight,
		request: layout.DiffAuto,
		theme:   theme,
	}
}

// SetSize sets the viewer dimensions.
func (dv *DiffViewer) SetSize(width, height int) {
	dv.width = width
	dv.height = height
}

// SetRequest sets the requested diff mode. The request may still be
// downgraded at render time when the terminal is too narrow for it.
func (dv *DiffViewer) SetRequest(mode layout.DiffMode) {
	dv.request = mode
}

// EffectiveMode resolves the current request against the current width.
func (dv *DiffViewer) EffectiveMode() (layout.DiffMode, bool) {
	return layout.ResolveDiffMode(dv.request, dv.width)
}

// View renders the diff.
func (dv *DiffViewer) View() string {
	if dv.file == nil {
		return "No diff available"
	}

	mode, downgraded := dv.EffectiveMode()

	var content strings.Builder
	content.WriteString(dv.renderHeader())
	content.WriteString("\n")

	if downgraded {
		notice := fmt.Sprintf("split view needs %d columns; showing unified", layout.SplitMinWidth)
		content.WriteString(dv.theme.DiffNotice.Render(notice))
		content.WriteString("\n")
	}

	switch mode {
	case layout.DiffSplit:
		content.WriteString(dv.renderSplit())
	case layout.DiffInline:
		content.WriteString(dv.renderInline())
	default:
		content.WriteString(dv.renderUnified())
	}

	return content.String()
}

// renderHeader renders the file path and change summary.
func (dv *DiffViewer) renderHeader() string {
	pathStyle := lipgloss.NewStyle().Foreground(styles.Cyan).Bold(true)
	summaryStyle := lipgloss.NewStyle().Foreground(styles.TextSecondary)
	return pathStyle.Render(dv.file.Path) + "  " + summaryStyle.Render(dv.file.Summary())
}

func (dv *DiffViewer) breakpoint() layout.Breakpoint {
	return layout.Classify(dv.width, layout.DefaultThresholds)
}

// renderUnified renders one column with a line-number gutter sized for the
// highest line number in the file.
func (dv *DiffViewer) renderUnified() string {
	bp := dv.breakpoint()
	gutterWidth := layout.LineNumberWidth(dv.file.MaxLineNumber(), bp)
	contentWidth := layout.UnifiedContentWidth(dv.width, gutterWidth, bp)

	var sb strings.Builder
	for i, hunk := range dv.file.Hunks {
		if i > 0 {
			sb.WriteString(dv.theme.DiffGutter.Render(strings.Repeat("-", gutterWidth+contentWidth)))
			sb.WriteString("\n")
		}
		for _, line := range hunk.Lines {
			sb.WriteString(dv.renderUnifiedLine(line, gutterWidth, contentWidth))
			sb.WriteString("\n")
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (dv *DiffViewer) renderUnifiedLine(line diff.Line, gutterWidth, contentWidth int) string {
	number := line.NewLine
	if line.Kind == diff.Removed {
		number = line.OldLine
	}
	gutter := dv.theme.DiffGutter.Render(fmt.Sprintf("%*d ", gutterWidth-1, number))
	text := line.Kind.Marker() + util.TruncateWidth(line.Content, contentWidth)
	return gutter + dv.lineStyle(line.Kind).Render(text)
}

// renderSplit renders old content on the left and new content on the right.
// Removal and addition runs pair up row for row; the shorter side pads with
// blank rows.
func (dv *DiffViewer) renderSplit() string {
	bp := dv.breakpoint()
	halfWidth := layout.SplitContentWidth(dv.width, bp)
	divider := dv.theme.DiffGutter.Render(" | ")

	var sb strings.Builder
	for _, hunk := range dv.file.Hunks {
		for _, row := range hunk.SplitRows() {
			left := dv.renderSplitHalf(row.Left, halfWidth, true)
			right := dv.renderSplitHalf(row.Right, halfWidth, false)
			sb.WriteString(left)
			sb.WriteString(divider)
			sb.WriteString(right)
			sb.WriteString("\n")
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (dv *DiffViewer) renderSplitHalf(line *diff.Line, contentWidth int, old bool) string {
	if line == nil {
		return strings.Repeat(" ", 4+contentWidth)
	}
	number := line.NewLine
	if old {
		number = line.OldLine
	}
	gutter := dv.theme.DiffGutter.Render(fmt.Sprintf("%3d ", number))
	text := util.PadRight(util.TruncateWidth(line.Content, contentWidth), contentWidth)
	return gutter + dv.lineStyle(line.Kind).Render(text)
}

// renderInline renders changes without a gutter, markers inline with the
// text. Used for embedding a diff fragment inside prose panes.
func (dv *DiffViewer) renderInline() string {
	contentWidth := dv.width - borderInline
	if contentWidth < 1 {
		contentWidth = 1
	}

	var sb strings.Builder
	for _, hunk := range dv.file.Hunks {
		for _, line := range hunk.Lines {
			text := line.Kind.Marker() + util.TruncateWidth(line.Content, contentWidth)
			sb.WriteString(dv.lineStyle(line.Kind).Render(text))
			sb.WriteString("\n")
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

// borderInline is the horizontal padding inline fragments reserve.
const borderInline = 2

func (dv *DiffViewer) lineStyle(kind diff.LineKind) lipgloss.Style {
	switch kind {
	case diff.Added:
		return dv.theme.DiffAdded
	case diff.Removed:
		return dv.theme.DiffRemoved
	default:
		return dv.theme.DiffContext
	}
}
