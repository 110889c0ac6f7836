package models

import (
	"fmt"
	"strings"

	"github.com/desertthunder/tasklists/internal/shared"
)

// Status is the progress state of a [Task].
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
)

// Statuses lists every valid [Status] in workflow order.
var Statuses = []Status{StatusPending, StatusInProgress, StatusDone}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusDone:
		return true
	default:
		return false
	}
}

// Next returns the status that follows s, wrapping from done back to pending.
func (s Status) Next() Status {
	for i, st := range Statuses {
		if st == s {
			return Statuses[(i+1)%len(Statuses)]
		}
	}
	return StatusPending
}

// ParseStatus normalizes raw input (case, surrounding space, dashes) into a [Status].
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(raw)), "-", "_"))
	if !s.Valid() {
		return "", fmt.Errorf("%w: unknown status %q", shared.ErrValidation, raw)
	}
	return s, nil
}

// Priority is the importance of a [Task].
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Priorities lists every valid [Priority] from lowest to highest.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// Valid reports whether p is a known priority.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// Next returns the priority above p, wrapping from high back to low.
func (p Priority) Next() Priority {
	for i, pr := range Priorities {
		if pr == p {
			return Priorities[(i+1)%len(Priorities)]
		}
	}
	return PriorityMedium
}

// ParsePriority normalizes raw input into a [Priority].
func ParsePriority(raw string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(raw)))
	if !p.Valid() {
		return "", fmt.Errorf("%w: unknown priority %q", shared.ErrValidation, raw)
	}
	return p, nil
}
