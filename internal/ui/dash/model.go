// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package dash

import (
	"strconv"
	"time"

	"github.com/jeranaias/rigwatch-tui/internal/config"
	"github.com/jeranaias/rigwatch-tui/internal/diff"
	"github.com/jeranaias/rigwatch-tui/internal/feed"
	"github.com/jeranaias/rigwatch-tui/internal/layout"
	"github.com/jeranaias/rigwatch-tui/internal/ui/components"
	"github.com/jeranaias/rigwatch-tui/internal/ui/styles"
)

// =============================================================================
// DASHBOARD MODEL
// =============================================================================

// Pane identifies which pane has keyboard focus.
type Pane int

const (
	PaneFeed Pane = iota
	PaneTasks
	PaneDiff
)

// Model is the root Bubble Tea model for the dashboard.
type Model struct {
	cfg   *config.Config
	theme *styles.Theme
	keys  KeyMap

	// Terminal dimensions. Zero until the first window size message; the
	// probe supplies the initial values so the first frame is not blank.
	width  int
	height int

	// explicitWidth overrides all width resolution when positive.
	explicitWidth int

	mode        layout.DisplayMode
	diffRequest layout.DiffMode

	focus    Pane
	showHelp bool
	now      time.Time

	logView    *components.LogView
	statusBar  *components.StatusBar
	diffViewer *components.DiffViewer
	previews   []*components.TaskPreview
	details    *components.Disclosure
	spinner    components.Spinner

	// Config hot reload. Nil when no watcher is attached.
	reloads <-chan *config.Config
}

// New creates the dashboard model. The probe supplies initial dimensions
// before the first window size message arrives.
func New(cfg *config.Config, theme *styles.Theme, probe layout.Probe) *Model {
	dims := probe.Measure()
	width, height := dims.Width, dims.Height
	if !dims.Available {
		width, height = layout.FallbackWidth, layout.FallbackHeight
	}

	now := time.Now()
	demo := feed.NewDemo(now)
	path, oldContent, newContent := demo.DiffSample()

	m := &Model{
		cfg:         cfg,
		theme:       theme,
		keys:        DefaultKeyMap(),
		width:       width,
		height:      height,
		mode:        cfg.DisplayMode(),
		diffRequest: cfg.DiffRequest(),
		now:         now,
		logView:     components.NewLogView(theme),
		statusBar:   components.NewStatusBar(theme),
		diffViewer:  components.NewDiffViewer(diff.Compute(path, oldContent, newContent), theme),
		details:     components.NewDisclosure("Task details", true),
		spinner:     components.NewSpinner(),
	}

	m.logView.Append(demo.Entries()...)
	for _, task := range demo.Tasks() {
		m.previews = append(m.previews, components.NewTaskPreview(task))
	}
	if len(demo.Tasks()) > 0 {
		m.details.SetContent(demo.Tasks()[0].Input)
	}

	m.details.SetToggleKey(cfg.UI.ToggleKey)
	m.details.SetAllowKeyboardToggle(cfg.UI.AllowKeyboardToggle)

	m.statusBar.AddSegment(layout.Segment{
		Label: "Status", Abbreviated: layout.Suppressed(), Value: "watching",
	}, 3)
	m.statusBar.AddSegment(layout.Segment{
		Label: "Mode", Abbreviated: layout.Abbrev("M"), Value: m.mode.String(),
	}, 2)
	m.statusBar.AddSegment(layout.Segment{
		Label: "Tasks", Abbreviated: layout.Abbrev("T"), Value: strconv.Itoa(len(m.previews)),
	}, 1)
	m.statusBar.SetStatus(components.StatusWatching)

	m.layoutComponents()
	return m
}

// AttachReloads wires a config watcher channel into the model. Reloaded
// configs apply on the next update cycle.
func (m *Model) AttachReloads(ch <-chan *config.Config) {
	m.reloads = ch
}

// SetExplicitWidth pins the content width, bypassing responsive sizing.
// The value is honored as given, even past the terminal edge.
func (m *Model) SetExplicitWidth(width int) {
	m.explicitWidth = width
	m.layoutComponents()
}

// widthConfig is the content width policy for the dashboard.
var widthConfig = layout.Config{
	MinWidth:     40,
	DefaultWidth: layout.FallbackWidth,
	SafetyMargin: 0,
}

// contentWidth resolves the width components actually render at: an
// explicit override wins, responsive sizing tracks the terminal, and a
// non-responsive config pins the default.
func (m *Model) contentWidth() int {
	return layout.ResolveWidth(layout.WidthRequest{
		Explicit:    m.explicitWidth,
		HasExplicit: m.explicitWidth > 0,
		Responsive:  m.cfg.UI.Responsive,
		ProbeWidth:  m.width,
	}, widthConfig)
}

// breakpoint classifies the content width with the configured thresholds.
func (m *Model) breakpoint() layout.Breakpoint {
	return layout.Classify(m.contentWidth(), m.cfg.Thresholds())
}

// layoutComponents pushes the current dimensions and mode into every
// component. Called on resize, mode change, and config reload; components
// never cache stale widths across these events.
func (m *Model) layoutComponents() {
	width := m.contentWidth()

	statusHeight := 1
	headerHeight := 1
	tasksHeight := len(m.previews) * 2
	diffHeight := m.height / 3

	feedHeight := m.height - statusHeight - headerHeight - tasksHeight - diffHeight
	if feedHeight < 3 {
		feedHeight = 3
	}

	m.logView.SetSize(width, feedHeight)
	m.logView.SetDisplayMode(m.mode)

	for _, tp := range m.previews {
		tp.SetWidth(width)
		tp.SetDisplayMode(m.mode)
	}

	m.details.SetWidth(width)
	m.details.SetDisplayMode(m.mode)

	m.diffViewer.SetSize(width, diffHeight)
	m.diffViewer.SetRequest(m.diffRequest)

	m.statusBar.SetWidth(width)
	m.statusBar.SetDisplayMode(m.mode)
	m.statusBar.SetSegmentValue("Mode", m.mode.String())
}

// applyConfig adopts a reloaded configuration.
func (m *Model) applyConfig(cfg *config.Config) {
	m.cfg = cfg
	m.mode = cfg.DisplayMode()
	m.diffRequest = cfg.DiffRequest()
	m.details.SetToggleKey(cfg.UI.ToggleKey)
	m.details.SetAllowKeyboardToggle(cfg.UI.AllowKeyboardToggle)
	m.layoutComponents()
}

