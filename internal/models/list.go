package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/desertthunder/tasklists/internal/shared"
)

// List is a named container that owns an ordered collection of tasks.
type List struct {
	ID          int       `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description" yaml:"description"`
	Tasks       []Task    `json:"tasks" yaml:"tasks"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" yaml:"updated_at"`
}

// Validate checks the list name and every owned task, including the ownership back-reference.
func (l List) Validate() error {
	if err := ValidateName(l.Name); err != nil {
		return err
	}
	for _, t := range l.Tasks {
		if t.ListID != l.ID {
			return fmt.Errorf("%w: task %d is owned by list %d but stored in list %d", shared.ErrValidation, t.ID, t.ListID, l.ID)
		}
		if err := t.Validate(); err != nil {
			return fmt.Errorf("task %d: %w", t.ID, err)
		}
	}
	return nil
}

// Clone returns a deep copy so the caller cannot reach the original task slice.
func (l List) Clone() List {
	c := l
	c.Tasks = make([]Task, len(l.Tasks))
	copy(c.Tasks, l.Tasks)
	return c
}

// ValidateName rejects names that are empty after trimming.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: list name is required", shared.ErrValidation)
	}
	return nil
}

// ListPatch enumerates the list fields that may be updated. A nil field is left untouched.
type ListPatch struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Empty reports whether the patch sets no fields.
func (p ListPatch) Empty() bool {
	return p.Name == nil && p.Description == nil
}

// Validate checks every provided field.
func (p ListPatch) Validate() error {
	if p.Empty() {
		return fmt.Errorf("%w: no fields to update", shared.ErrValidation)
	}
	if p.Name != nil {
		return ValidateName(*p.Name)
	}
	return nil
}

// Apply copies the provided fields onto l. Callers validate first.
func (p ListPatch) Apply(l *List) {
	if p.Name != nil {
		l.Name = strings.TrimSpace(*p.Name)
	}
	if p.Description != nil {
		l.Description = *p.Description
	}
}
