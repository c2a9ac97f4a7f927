// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package dash

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/rigwatch-tui/internal/config"
	"github.com/jeranaias/rigwatch-tui/internal/layout"
)

// =============================================================================
// MESSAGES AND COMMANDS
// =============================================================================

// tickMsg advances the dashboard clock once a second so countdowns stay
// current without per-component timers.
type tickMsg time.Time

// configReloadedMsg carries a hot-reloaded configuration.
type configReloadedMsg struct {
	cfg *config.Config
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// listenForReload blocks on the watcher channel and resolves to a reload
// message. Re-issued after each reload so the subscription stays alive.
func listenForReload(ch <-chan *config.Config) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		cfg, ok := <-ch
		if !ok {
			return nil
		}
		return configReloadedMsg{cfg: cfg}
	}
}

// =============================================================================
// UPDATE
// =============================================================================

// Init starts the clock, the spinner, and the reload subscription.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), m.spinner.Start(), listenForReload(m.reloads))
}

// Update routes messages to the dashboard and its components.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutComponents()
		return m, nil

	case tickMsg:
		m.now = time.Time(msg)
		return m, tickCmd()

	case configReloadedMsg:
		m.applyConfig(msg.cfg)
		return m, listenForReload(m.reloads)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Animation frames and spinner ticks route to whoever owns them.
	var cmds []tea.Cmd
	if cmd := m.details.Update(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if cmd := m.spinner.Update(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.details.Stop()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.CycleMode):
		m.mode = nextDisplayMode(m.mode)
		m.layoutComponents()
		return m, nil

	case key.Matches(msg, m.keys.CycleDiff):
		m.diffRequest = nextDiffRequest(m.diffRequest)
		m.layoutComponents()
		return m, nil

	case key.Matches(msg, m.keys.NextPane):
		m.cycleFocus()
		return m, nil
	}

	// Remaining keys go to the focused pane.
	switch m.focus {
	case PaneFeed:
		return m, m.logView.Update(msg)
	case PaneTasks:
		return m, m.details.Update(msg)
	default:
		return m, nil
	}
}

func (m *Model) cycleFocus() {
	m.focus = (m.focus + 1) % 3
	if m.focus == PaneTasks {
		m.details.Focus()
	} else {
		m.details.Blur()
	}
}

// nextDisplayMode cycles normal, compact, verbose.
func nextDisplayMode(mode layout.DisplayMode) layout.DisplayMode {
	switch mode {
	case layout.ModeNormal:
		return layout.ModeCompact
	case layout.ModeCompact:
		return layout.ModeVerbose
	default:
		return layout.ModeNormal
	}
}

// nextDiffRequest cycles auto, unified, split, inline.
func nextDiffRequest(mode layout.DiffMode) layout.DiffMode {
	switch mode {
	case layout.DiffAuto:
		return layout.DiffUnified
	case layout.DiffUnified:
		return layout.DiffSplit
	case layout.DiffSplit:
		return layout.DiffInline
	default:
		return layout.DiffAuto
	}
}
