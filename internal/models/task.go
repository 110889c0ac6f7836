package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/desertthunder/tasklists/internal/shared"
)

// Task is a unit of work owned by exactly one [List].
type Task struct {
	ID          int       `json:"id" yaml:"id"`
	ListID      int       `json:"list_id" yaml:"list_id"`
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description" yaml:"description"`
	Status      Status    `json:"status" yaml:"status"`
	Priority    Priority  `json:"priority" yaml:"priority"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" yaml:"updated_at"`
}

// Validate checks the fields a stored task must always satisfy.
func (t Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("%w: task title is required", shared.ErrValidation)
	}
	if !t.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", shared.ErrValidation, t.Status)
	}
	if !t.Priority.Valid() {
		return fmt.Errorf("%w: unknown priority %q", shared.ErrValidation, t.Priority)
	}
	return nil
}

// WithDefaults fills an empty status and priority with pending and medium.
func (t Task) WithDefaults() Task {
	if t.Status == "" {
		t.Status = StatusPending
	}
	if t.Priority == "" {
		t.Priority = PriorityMedium
	}
	t.Title = strings.TrimSpace(t.Title)
	return t
}

// TaskPatch enumerates the task fields that may be updated. A nil field is left untouched.
type TaskPatch struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Status      *Status   `json:"status,omitempty"`
	Priority    *Priority `json:"priority,omitempty"`
}

// Empty reports whether the patch sets no fields.
func (p TaskPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Status == nil && p.Priority == nil
}

// Validate checks every provided field without touching any task.
func (p TaskPatch) Validate() error {
	if p.Empty() {
		return fmt.Errorf("%w: no fields to update", shared.ErrValidation)
	}
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return fmt.Errorf("%w: task title cannot be empty", shared.ErrValidation)
	}
	if p.Status != nil && !p.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", shared.ErrValidation, *p.Status)
	}
	if p.Priority != nil && !p.Priority.Valid() {
		return fmt.Errorf("%w: unknown priority %q", shared.ErrValidation, *p.Priority)
	}
	return nil
}

// Apply copies the provided fields onto t. Callers validate first.
func (p TaskPatch) Apply(t *Task) {
	if p.Title != nil {
		t.Title = strings.TrimSpace(*p.Title)
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
}
