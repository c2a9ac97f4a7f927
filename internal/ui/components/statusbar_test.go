// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/jeranaias/rigwatch-tui/internal/layout"
	"github.com/jeranaias/rigwatch-tui/internal/ui/styles"
)

func testbar(width int) *StatusBar {
	sb := NewStatusBar(styles.NewTheme())
	sb.SetWidth(width)
	return sb
}

func TestStatusBarTierBoundaries(t *testing.T) {
	tests := []struct {
		width int
		want  layout.Breakpoint
	}{
		{79, layout.BreakpointNarrow},
		{80, layout.BreakpointCompact},
		{99, layout.BreakpointCompact},
		{100, layout.BreakpointNormal},
		{119, layout.BreakpointNormal},
		{120, layout.BreakpointWide},
	}
	for _, tt := range tests {
		sb := testbar(tt.width)
		if got := sb.breakpoint(); got != tt.want {
			t.Errorf("breakpoint at width %d = %v, want %v", tt.width, got, tt.want)
		}
	}
}

func TestStatusBarAbbreviatesBelowEighty(t *testing.T) {
	seg := layout.Segment{Label: "Confidence", Abbreviated: layout.Abbrev("Conf"), Value: "87%"}

	sb := testbar(90)
	sb.AddSegment(seg, 1)
	if !strings.Contains(sb.View(), "Confidence") {
		t.Error("width 90 should render the full label")
	}

	sb = testbar(79)
	sb.AddSegment(seg, 1)
	if strings.Contains(sb.View(), "Confidence") {
		t.Error("width 79 should render the abbreviated label")
	}
}

func TestStatusBarDropsLowestPriorityFirst(t *testing.T) {
	sb := testbar(40)
	sb.AddSegment(layout.Segment{Label: "Host", Value: "rig-01.morganforge.example"}, 3)
	sb.AddSegment(layout.Segment{Label: "Branch", Value: "feature/watcher-reload-debounce"}, 1)
	sb.AddSegment(layout.Segment{Label: "Tasks", Value: "4"}, 2)

	view := sb.View()
	if strings.Contains(view, "watcher-reload-debounce") {
		t.Error("lowest priority segment survived a width it cannot fit")
	}
	if !strings.Contains(view, "rig-01") {
		t.Error("highest priority segment was dropped")
	}
}

func TestStatusBarCompactModeValuesOnly(t *testing.T) {
	sb := testbar(110)
	sb.SetDisplayMode(layout.ModeCompact)
	sb.AddSegment(layout.Segment{Label: "Tasks", Value: "4"}, 1)

	view := sb.View()
	if strings.Contains(view, "Tasks") {
		t.Error("compact mode rendered a label")
	}
	if !strings.Contains(view, "4") {
		t.Error("compact mode dropped the value")
	}
}

func TestStatusBarNarrowStatusIconOnly(t *testing.T) {
	sb := testbar(60)
	sb.SetStatus(StatusWatching)
	if strings.Contains(sb.View(), "Watching") {
		t.Error("narrow tier rendered the status text, want icon only")
	}

	sb.SetWidth(110)
	if !strings.Contains(sb.View(), "Watching") {
		t.Error("normal tier missing status text")
	}
}

func TestStatusBarSetSegmentValue(t *testing.T) {
	sb := testbar(120)
	sb.AddSegment(layout.Segment{Label: "Tasks", Value: "4"}, 1)
	sb.SetSegmentValue("Tasks", "7")
	if !strings.Contains(sb.View(), "7") {
		t.Error("SetSegmentValue did not update the rendered value")
	}
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusReady, "Ready"},
		{StatusWatching, "Watching..."},
		{StatusSyncing, "Syncing..."},
		{StatusError, "Error"},
		{StatusIdle, "Idle"},
		{Status(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("Status(%d).String() = %q, want %q", tt.status, got, tt.want)
		}
	}
}
