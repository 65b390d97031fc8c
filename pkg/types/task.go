package types

import (
	"time"
)

// Priority classifies how urgent a task is.
type Priority string

const (
	PriorityLow    Priority = "basse"
	PriorityNormal Priority = "normale"
	PriorityHigh   Priority = "haute"
)

// ParsePriority maps a stored priority value to its enum constant.
// Unknown values resolve to PriorityNormal.
func ParsePriority(s string) Priority {
	switch Priority(s) {
	case PriorityLow, PriorityNormal, PriorityHigh:
		return Priority(s)
	default:
		return PriorityNormal
	}
}

// Task is a single user task persisted in state/current.md.
type Task struct {
	ID          string
	Title       string
	Description string
	Priority    Priority
	Deadline    *time.Time
	InProgress  bool
	Tracked     bool
	Completed   bool
	CompletedAt *time.Time
	CreatedAt   time.Time
	NotionID    string
}

// Complete marks the task done at the given instant.
func (t *Task) Complete(now time.Time) {
	t.Completed = true
	t.CompletedAt = &now
	t.InProgress = false
}

// Reopen reverts a completed task to pending. CompletedAt is cleared so the
// "set iff completed" invariant holds.
func (t *Task) Reopen() {
	t.Completed = false
	t.CompletedAt = nil
}

// Overdue reports whether the task has a deadline in the past relative to
// now. Completed tasks are never overdue. Comparison is instant-based.
func (t *Task) Overdue(now time.Time) bool {
	if t.Completed || t.Deadline == nil {
		return false
	}
	return t.Deadline.Before(now)
}
