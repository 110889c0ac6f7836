package models

import (
	"fmt"

	"github.com/desertthunder/tasklists/internal/shared"
)

// Snapshot is the persisted form of the whole store: the next-id counters and every list with its tasks, in order.
type Snapshot struct {
	NextListID int    `json:"next_list_id" yaml:"next_list_id"`
	NextTaskID int    `json:"next_task_id" yaml:"next_task_id"`
	Lists      []List `json:"lists" yaml:"lists"`
}

// NewSnapshot returns an empty store with both counters at 1.
func NewSnapshot() *Snapshot {
	return &Snapshot{NextListID: 1, NextTaskID: 1, Lists: []List{}}
}

// Validate checks id uniqueness across the whole document and every list's own invariants.
func (s *Snapshot) Validate() error {
	listIDs := make(map[int]bool, len(s.Lists))
	taskIDs := make(map[int]bool)
	for _, l := range s.Lists {
		if l.ID <= 0 {
			return fmt.Errorf("%w: invalid list id %d", shared.ErrValidation, l.ID)
		}
		if listIDs[l.ID] {
			return fmt.Errorf("%w: duplicate list id %d", shared.ErrValidation, l.ID)
		}
		listIDs[l.ID] = true

		if err := l.Validate(); err != nil {
			return fmt.Errorf("list %d: %w", l.ID, err)
		}

		for _, t := range l.Tasks {
			if t.ID <= 0 {
				return fmt.Errorf("%w: invalid task id %d", shared.ErrValidation, t.ID)
			}
			if taskIDs[t.ID] {
				return fmt.Errorf("%w: task %d appears more than once", shared.ErrValidation, t.ID)
			}
			taskIDs[t.ID] = true
		}
	}
	return nil
}

// Normalize raises each counter past the largest id in use so loaded ids are never reissued.
func (s *Snapshot) Normalize() {
	if s.NextListID < 1 {
		s.NextListID = 1
	}
	if s.NextTaskID < 1 {
		s.NextTaskID = 1
	}
	if s.Lists == nil {
		s.Lists = []List{}
	}
	for _, l := range s.Lists {
		if l.ID >= s.NextListID {
			s.NextListID = l.ID + 1
		}
		for _, t := range l.Tasks {
			if t.ID >= s.NextTaskID {
				s.NextTaskID = t.ID + 1
			}
		}
	}
}

// TaskCount returns the number of tasks across all lists.
func (s *Snapshot) TaskCount() int {
	n := 0
	for _, l := range s.Lists {
		n += len(l.Tasks)
	}
	return n
}

// Clone returns a deep copy of the snapshot.
func (s *Snapshot) Clone() *Snapshot {
	c := *s
	c.Lists = make([]List, len(s.Lists))
	for i, l := range s.Lists {
		c.Lists[i] = l.Clone()
	}
	return &c
}
