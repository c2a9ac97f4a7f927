// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package feed supplies the activity entries and task previews the
// dashboard renders.
package feed

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// DEMO PRODUCER
// =============================================================================

// Demo produces a fixed, deterministic set of entries and tasks so every
// dashboard component has something to render without a live session.
type Demo struct {
	base time.Time
}

// NewDemo creates a demo producer anchored at base time.
func NewDemo(base time.Time) *Demo {
	return &Demo{base: base}
}

// Entries returns the demo activity log, oldest first.
func (d *Demo) Entries() []Entry {
	return []Entry{
		{
			ID:    uuid.NewSHA1(uuid.NameSpaceOID, []byte("entry-1")),
			Time:  d.base,
			Kind:  KindEvent,
			Title: "session started",
			Body:  "watching `~/projects/rigrun` (3 sessions, 1 active)",
		},
		{
			ID:    uuid.NewSHA1(uuid.NameSpaceOID, []byte("entry-2")),
			Time:  d.base.Add(2 * time.Second),
			Kind:  KindThinking,
			Title: "routing decision",
			Body: strings.Repeat("Weighing the local model against cloud fallback for this query. ", 12) +
				"Settled on local.",
		},
		{
			ID:    uuid.NewSHA1(uuid.NameSpaceOID, []byte("entry-3")),
			Time:  d.base.Add(5 * time.Second),
			Kind:  KindMarkdown,
			Title: "plan proposed",
			Body: "## Plan\n\n1. Refactor the config loader\n2. Add hot reload\n3. **Verify** the watcher shuts down cleanly\n",
		},
		{
			ID:    uuid.NewSHA1(uuid.NameSpaceOID, []byte("entry-4")),
			Time:  d.base.Add(9 * time.Second),
			Kind:  KindError,
			Title: "tool call failed",
			Body:  "exec: bash: exit status 1 (retrying with smaller context)",
		},
		{
			ID:    uuid.NewSHA1(uuid.NameSpaceOID, []byte("entry-5")),
			Time:  d.base.Add(14 * time.Second),
			Kind:  KindEvent,
			Title: "patch applied",
			Body: "updated `Close` in watcher.go:\n```go\nfunc (w *Watcher) Close() error {\n\tw.cancel()\n\tw.wg.Wait()\n\treturn w.watcher.Close()\n}\n```",
		},
	}
}

// Tasks returns the demo task previews.
func (d *Demo) Tasks() []Task {
	return []Task{
		{
			ID:         uuid.NewSHA1(uuid.NameSpaceOID, []byte("task-1")),
			Title:      "refactor config loader",
			Input:      "Rework the configuration loader to support TOML and JSON with env overrides, then wire the hot-reload watcher into the dashboard model.",
			Confidence: 0.92,
			Deadline:   d.base.Add(90 * time.Second),
		},
		{
			ID:         uuid.NewSHA1(uuid.NameSpaceOID, []byte("task-2")),
			Title:      "review diff",
			Input:      "Inspect the pending change to watcher.go before it lands.",
			Confidence: 0.64,
			Deadline:   d.base.Add(4 * time.Second),
		},
		{
			ID:         uuid.NewSHA1(uuid.NameSpaceOID, []byte("task-3")),
			Title:      "triage flaky test",
			Input:      "TestWatcherShutdown intermittently hangs on CI.",
			Confidence: 1.15, // upstream sometimes over-reports; rendered as-is
			Deadline:   d.base.Add(30 * time.Minute),
		},
	}
}

// DiffSample returns old/new content for the demo diff viewer.
func (d *Demo) DiffSample() (path, oldContent, newContent string) {
	oldContent = `func (w *Watcher) Close() error {
	w.cancel()
	return w.watcher.Close()
}
`
	newContent = `func (w *Watcher) Close() error {
	w.cancel()
	w.wg.Wait()
	return w.watcher.Close()
}
`
	return "internal/config/watcher.go", oldContent, newContent
}
