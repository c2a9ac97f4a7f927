// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/rigwatch-tui/internal/layout"
)

func TestDisclosureUncontrolledToggle(t *testing.T) {
	d := NewDisclosure("Details", true)

	if !d.Collapsed() {
		t.Fatal("default collapsed state not honored")
	}

	d.Toggle()
	if d.Collapsed() {
		t.Error("Toggle() did not expand the section")
	}
	d.Toggle()
	if !d.Collapsed() {
		t.Error("second Toggle() did not collapse the section")
	}
}

func TestDisclosureOnToggleReportsNextState(t *testing.T) {
	var got []bool
	d := NewDisclosure("Details", true)
	d.SetOnToggle(func(collapsed bool) { got = append(got, collapsed) })

	d.Toggle()
	if len(got) != 1 || got[0] != false {
		t.Fatalf("after one toggle got %v, want [false]", got)
	}
}

func TestDisclosureRapidTogglesAlternate(t *testing.T) {
	var got []bool
	d := NewDisclosure("Details", true)
	d.SetOnToggle(func(collapsed bool) { got = append(got, collapsed) })

	for i := 0; i < 10; i++ {
		d.Toggle()
	}

	if len(got) != 10 {
		t.Fatalf("got %d callbacks, want 10", len(got))
	}
	for i, collapsed := range got {
		want := i%2 != 0
		if collapsed != want {
			t.Errorf("toggle %d reported %v, want %v", i+1, collapsed, want)
		}
	}
}

func TestDisclosureControlledDoesNotFlipItself(t *testing.T) {
	var reported []bool
	d := NewControlledDisclosure("Details", true, func(collapsed bool) {
		reported = append(reported, collapsed)
	})

	d.Toggle()
	if !d.Collapsed() {
		t.Error("controlled section changed its own state on Toggle()")
	}
	if len(reported) != 1 || reported[0] != false {
		t.Fatalf("callback got %v, want [false]", reported)
	}

	// Caller pushes the new value back.
	d.SetCollapsed(false)
	if d.Collapsed() {
		t.Error("SetCollapsed(false) not adopted")
	}

	// Repeated toggles keep negating the mirrored state.
	d.Toggle()
	if reported[len(reported)-1] != true {
		t.Errorf("second toggle reported %v, want true", reported[len(reported)-1])
	}
}

func TestDisclosureSetCollapsedNoOpOnUncontrolled(t *testing.T) {
	d := NewDisclosure("Details", true)
	if cmd := d.SetCollapsed(false); cmd != nil {
		t.Error("SetCollapsed on uncontrolled section returned a command")
	}
	if !d.Collapsed() {
		t.Error("SetCollapsed mutated an uncontrolled section")
	}
}

func TestDisclosureKeyboardToggle(t *testing.T) {
	d := NewDisclosure("Details", true)
	d.Focus()

	d.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	if d.Collapsed() {
		t.Error("default key 'c' did not toggle")
	}

	d.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !d.Collapsed() {
		t.Error("enter did not toggle")
	}
}

func TestDisclosureCustomKeyReplacesDefault(t *testing.T) {
	d := NewDisclosure("Details", true)
	d.Focus()
	d.SetToggleKey("x")

	d.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	if !d.Collapsed() {
		t.Error("default key still active after custom key configured")
	}

	d.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	if d.Collapsed() {
		t.Error("custom key did not toggle")
	}
}

func TestDisclosureKeyboardGates(t *testing.T) {
	d := NewDisclosure("Details", true)

	// Unfocused sections ignore keys.
	d.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	if !d.Collapsed() {
		t.Error("unfocused section toggled")
	}

	// Keyboard toggles disabled entirely.
	d.Focus()
	d.SetAllowKeyboardToggle(false)
	d.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	if !d.Collapsed() {
		t.Error("section toggled with keyboard disabled")
	}
}

func TestDisclosureCompactModeIsInert(t *testing.T) {
	d := NewDisclosure("Details", false)
	d.SetContent("body text")
	d.SetDisplayMode(layout.ModeCompact)
	d.Focus()

	if got := d.View(); got != "" {
		t.Errorf("compact View() = %q, want empty placeholder", got)
	}

	d.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	if d.Collapsed() {
		t.Error("compact section responded to keyboard")
	}
}

func TestDisclosureVerboseMarker(t *testing.T) {
	d := NewDisclosure("Details", true)
	d.SetDisplayMode(layout.ModeVerbose)

	if !strings.Contains(d.View(), "[collapsed]") {
		t.Error("verbose collapsed view missing [collapsed] marker")
	}
	d.Toggle()
	d.Stop()
	if !strings.Contains(d.View(), "[expanded]") {
		t.Error("verbose expanded view missing [expanded] marker")
	}
}

func TestDisclosureViewStates(t *testing.T) {
	d := NewDisclosure("Details", true)
	d.SetContent("the body")
	d.SetWidth(60)

	if strings.Contains(d.View(), "the body") {
		t.Error("collapsed view leaked body content")
	}

	d.Toggle()
	d.Stop()
	if !strings.Contains(d.View(), "the body") {
		t.Error("expanded view missing body content")
	}
}

func TestDisclosureStaleFrameDropped(t *testing.T) {
	d := NewDisclosure("Details", true)

	d.Toggle() // starts animation, seq 1
	staleSeq := d.animSeq
	d.Toggle() // retoggle supersedes it, seq 2

	if cmd := d.Update(frameMsg{id: d.id, seq: staleSeq}); cmd != nil {
		t.Error("stale frame rescheduled itself")
	}
	if !d.animating {
		t.Error("stale frame cancelled the live animation")
	}

	// Frames for other instances are ignored too.
	if cmd := d.Update(frameMsg{id: d.id + 1, seq: d.animSeq}); cmd != nil {
		t.Error("frame for another instance was handled")
	}
}

func TestDisclosureStopCancelsAnimation(t *testing.T) {
	d := NewDisclosure("Details", true)
	d.Toggle()
	seq := d.animSeq
	d.Stop()

	if d.animating {
		t.Error("Stop() left the animation running")
	}
	if cmd := d.Update(frameMsg{id: d.id, seq: seq}); cmd != nil {
		t.Error("frame after Stop() rescheduled itself")
	}
}
