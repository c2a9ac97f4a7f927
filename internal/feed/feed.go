// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package feed supplies the activity entries and task previews the
// dashboard renders. Producers are external collaborators; this package
// defines the data model they feed the UI with and a deterministic demo
// producer that seeds the dashboard until a live session attaches.
package feed

import (
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// ACTIVITY ENTRIES
// =============================================================================

// EntryKind classifies an activity log entry.
type EntryKind int

const (
	// KindEvent is a plain operational event line.
	KindEvent EntryKind = iota
	// KindThinking is a free-text reasoning block, usually long.
	KindThinking
	// KindMarkdown is a rich-text body rendered through the markdown pipeline.
	KindMarkdown
	// KindError is a failure report.
	KindError
)

// String returns the display name for the kind.
func (k EntryKind) String() string {
	switch k {
	case KindEvent:
		return "event"
	case KindThinking:
		return "thinking"
	case KindMarkdown:
		return "markdown"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// Entry is one item in the activity log.
type Entry struct {
	ID    uuid.UUID
	Time  time.Time
	Kind  EntryKind
	Title string
	Body  string
}

// =============================================================================
// TASK PREVIEWS
// =============================================================================

// Task is one unit of work shown in the task preview panel.
type Task struct {
	ID         uuid.UUID
	Title      string
	Input      string  // raw input text, truncated by the preview panel
	Confidence float64 // routing confidence; may exceed [0,1] upstream
	Deadline   time.Time
}

// Remaining returns the time left until the task deadline at now.
func (t Task) Remaining(now time.Time) time.Duration {
	return t.Deadline.Sub(now)
}
