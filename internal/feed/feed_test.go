// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package feed supplies the activity entries and task previews the
// dashboard renders.
package feed

import (
	"testing"
	"time"
)

func TestDemoDeterministic(t *testing.T) {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	a := NewDemo(base)
	b := NewDemo(base)

	ea, eb := a.Entries(), b.Entries()
	if len(ea) != len(eb) {
		t.Fatalf("entry counts differ: %d vs %d", len(ea), len(eb))
	}
	for i := range ea {
		if ea[i].ID != eb[i].ID || ea[i].Title != eb[i].Title {
			t.Errorf("entry %d differs between runs", i)
		}
	}

	ta, tb := a.Tasks(), b.Tasks()
	for i := range ta {
		if ta[i].ID != tb[i].ID {
			t.Errorf("task %d ID differs between runs", i)
		}
	}
}

func TestDemoCoversEveryEntryKind(t *testing.T) {
	d := NewDemo(time.Now())
	seen := map[EntryKind]bool{}
	for _, e := range d.Entries() {
		seen[e.Kind] = true
	}
	for _, k := range []EntryKind{KindEvent, KindThinking, KindMarkdown, KindError} {
		if !seen[k] {
			t.Errorf("demo entries missing kind %v", k)
		}
	}
}

func TestTaskRemaining(t *testing.T) {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	task := Task{Deadline: base.Add(10 * time.Second)}

	if got := task.Remaining(base); got != 10*time.Second {
		t.Errorf("Remaining = %v, want 10s", got)
	}
	if got := task.Remaining(base.Add(15 * time.Second)); got != -5*time.Second {
		t.Errorf("Remaining past deadline = %v, want -5s", got)
	}
}

func TestEntryKindString(t *testing.T) {
	tests := []struct {
		kind EntryKind
		want string
	}{
		{KindEvent, "event"},
		{KindThinking, "thinking"},
		{KindMarkdown, "markdown"},
		{KindError, "error"},
		{EntryKind(9), "unknown"},
	}

	for _, tc := range tests {
		if got := tc.kind.String(); got != tc.want {
			t.Errorf("String(%d) = %q, want %q", int(tc.kind), got, tc.want)
		}
	}
}
