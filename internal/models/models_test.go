package models

import (
	"errors"
	"testing"
	"time"

	"github.com/desertthunder/tasklists/internal/shared"
)

func ptr[T any](v T) *T { return &v }

func TestStatus(t *testing.T) {
	t.Run("Next cycles through the workflow", func(t *testing.T) {
		tests := []struct {
			in, want Status
		}{
			{StatusPending, StatusInProgress},
			{StatusInProgress, StatusDone},
			{StatusDone, StatusPending},
			{Status("bogus"), StatusPending},
		}
		for _, tt := range tests {
			if got := tt.in.Next(); got != tt.want {
				t.Errorf("%q.Next() = %q, want %q", tt.in, got, tt.want)
			}
		}
	})

	t.Run("ParseStatus", func(t *testing.T) {
		tests := []struct {
			name    string
			raw     string
			want    Status
			wantErr bool
		}{
			{name: "exact", raw: "done", want: StatusDone},
			{name: "uppercase", raw: "PENDING", want: StatusPending},
			{name: "dashed", raw: " in-progress ", want: StatusInProgress},
			{name: "unknown", raw: "blocked", wantErr: true},
			{name: "empty", raw: "", wantErr: true},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				got, err := ParseStatus(tt.raw)
				if tt.wantErr {
					if !errors.Is(err, shared.ErrValidation) {
						t.Errorf("expected ErrValidation, got %v", err)
					}
					return
				}
				if err != nil || got != tt.want {
					t.Errorf("ParseStatus(%q) = %q, %v; want %q", tt.raw, got, err, tt.want)
				}
			})
		}
	})
}

func TestPriority(t *testing.T) {
	t.Run("Next wraps from high to low", func(t *testing.T) {
		if got := PriorityLow.Next(); got != PriorityMedium {
			t.Errorf("low.Next() = %q", got)
		}
		if got := PriorityMedium.Next(); got != PriorityHigh {
			t.Errorf("medium.Next() = %q", got)
		}
		if got := PriorityHigh.Next(); got != PriorityLow {
			t.Errorf("high.Next() = %q", got)
		}
	})

	t.Run("ParsePriority", func(t *testing.T) {
		if p, err := ParsePriority(" High"); err != nil || p != PriorityHigh {
			t.Errorf("ParsePriority(High) = %q, %v", p, err)
		}
		if _, err := ParsePriority("urgent"); !errors.Is(err, shared.ErrValidation) {
			t.Errorf("expected ErrValidation, got %v", err)
		}
	})
}

func TestTask(t *testing.T) {
	t.Run("WithDefaults", func(t *testing.T) {
		task := Task{Title: "  Buy milk  "}.WithDefaults()
		if task.Status != StatusPending || task.Priority != PriorityMedium {
			t.Errorf("expected pending/medium, got %s/%s", task.Status, task.Priority)
		}
		if task.Title != "Buy milk" {
			t.Errorf("expected trimmed title, got %q", task.Title)
		}

		kept := Task{Title: "x", Status: StatusDone, Priority: PriorityLow}.WithDefaults()
		if kept.Status != StatusDone || kept.Priority != PriorityLow {
			t.Errorf("expected explicit values kept, got %s/%s", kept.Status, kept.Priority)
		}
	})

	t.Run("Validate", func(t *testing.T) {
		tests := []struct {
			name    string
			task    Task
			wantErr bool
		}{
			{name: "valid", task: Task{Title: "a", Status: StatusPending, Priority: PriorityLow}},
			{name: "blank title", task: Task{Title: "   ", Status: StatusPending, Priority: PriorityLow}, wantErr: true},
			{name: "bad status", task: Task{Title: "a", Status: "nope", Priority: PriorityLow}, wantErr: true},
			{name: "bad priority", task: Task{Title: "a", Status: StatusDone, Priority: "nope"}, wantErr: true},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				err := tt.task.Validate()
				if tt.wantErr != (err != nil) {
					t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
				}
				if err != nil && !errors.Is(err, shared.ErrValidation) {
					t.Errorf("expected ErrValidation, got %v", err)
				}
			})
		}
	})

	t.Run("TaskPatch", func(t *testing.T) {
		if err := (TaskPatch{}).Validate(); !errors.Is(err, shared.ErrValidation) {
			t.Errorf("expected empty patch to fail, got %v", err)
		}
		if err := (TaskPatch{Title: ptr("  ")}).Validate(); err == nil {
			t.Error("expected blank title to fail")
		}
		if err := (TaskPatch{Status: ptr(Status("later"))}).Validate(); err == nil {
			t.Error("expected unknown status to fail")
		}

		task := Task{Title: "old", Description: "keep", Status: StatusPending, Priority: PriorityLow}
		patch := TaskPatch{Title: ptr(" new "), Status: ptr(StatusDone)}
		if err := patch.Validate(); err != nil {
			t.Fatalf("Validate() error = %v", err)
		}
		patch.Apply(&task)

		if task.Title != "new" || task.Status != StatusDone {
			t.Errorf("expected patched fields, got %+v", task)
		}
		if task.Description != "keep" || task.Priority != PriorityLow {
			t.Errorf("expected untouched fields kept, got %+v", task)
		}
	})
}

func TestList(t *testing.T) {
	t.Run("Validate checks ownership", func(t *testing.T) {
		l := List{ID: 1, Name: "a", Tasks: []Task{{ID: 1, ListID: 2, Title: "x", Status: StatusPending, Priority: PriorityLow}}}
		if err := l.Validate(); !errors.Is(err, shared.ErrValidation) {
			t.Errorf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("Clone does not share tasks", func(t *testing.T) {
		l := List{ID: 1, Name: "a", Tasks: []Task{{ID: 1, ListID: 1, Title: "x"}}}
		c := l.Clone()
		c.Tasks[0].Title = "changed"
		if l.Tasks[0].Title != "x" {
			t.Error("expected original task untouched")
		}
	})

	t.Run("ListPatch", func(t *testing.T) {
		if err := (ListPatch{}).Validate(); err == nil {
			t.Error("expected empty patch to fail")
		}
		if err := (ListPatch{Name: ptr("")}).Validate(); err == nil {
			t.Error("expected empty name to fail")
		}

		l := List{Name: "old", Description: "d"}
		ListPatch{Name: ptr(" new ")}.Apply(&l)
		if l.Name != "new" || l.Description != "d" {
			t.Errorf("unexpected list after apply: %+v", l)
		}
	})
}

func TestSnapshot(t *testing.T) {
	ts := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	task := func(id, listID int) Task {
		return Task{ID: id, ListID: listID, Title: "t", Status: StatusPending, Priority: PriorityMedium, CreatedAt: ts, UpdatedAt: ts}
	}

	t.Run("NewSnapshot", func(t *testing.T) {
		s := NewSnapshot()
		if s.NextListID != 1 || s.NextTaskID != 1 || s.Lists == nil {
			t.Errorf("unexpected empty snapshot: %+v", s)
		}
	})

	t.Run("Validate", func(t *testing.T) {
		tests := []struct {
			name    string
			snap    Snapshot
			wantErr bool
		}{
			{
				name: "valid",
				snap: Snapshot{Lists: []List{{ID: 1, Name: "a", Tasks: []Task{task(1, 1)}}, {ID: 2, Name: "b"}}},
			},
			{
				name:    "duplicate list id",
				snap:    Snapshot{Lists: []List{{ID: 1, Name: "a"}, {ID: 1, Name: "b"}}},
				wantErr: true,
			},
			{
				name:    "task in two lists",
				snap:    Snapshot{Lists: []List{{ID: 1, Name: "a", Tasks: []Task{task(1, 1)}}, {ID: 2, Name: "b", Tasks: []Task{task(1, 2)}}}},
				wantErr: true,
			},
			{
				name:    "non-positive id",
				snap:    Snapshot{Lists: []List{{ID: 0, Name: "a"}}},
				wantErr: true,
			},
			{
				name:    "empty name",
				snap:    Snapshot{Lists: []List{{ID: 1, Name: ""}}},
				wantErr: true,
			},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				err := tt.snap.Validate()
				if tt.wantErr != (err != nil) {
					t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
				}
			})
		}
	})

	t.Run("Normalize raises counters", func(t *testing.T) {
		s := Snapshot{NextListID: 1, NextTaskID: 2, Lists: []List{{ID: 4, Name: "a", Tasks: []Task{task(9, 4)}}}}
		s.Normalize()
		if s.NextListID != 5 || s.NextTaskID != 10 {
			t.Errorf("expected counters 5/10, got %d/%d", s.NextListID, s.NextTaskID)
		}

		high := Snapshot{NextListID: 20, NextTaskID: 30}
		high.Normalize()
		if high.NextListID != 20 || high.NextTaskID != 30 || high.Lists == nil {
			t.Errorf("expected counters kept, got %+v", high)
		}
	})

	t.Run("Clone and TaskCount", func(t *testing.T) {
		s := &Snapshot{NextListID: 3, NextTaskID: 3, Lists: []List{
			{ID: 1, Name: "a", Tasks: []Task{task(1, 1)}},
			{ID: 2, Name: "b", Tasks: []Task{task(2, 2)}},
		}}
		c := s.Clone()
		c.Lists[0].Name = "changed"
		c.Lists[1].Tasks[0].Title = "changed"

		if s.Lists[0].Name != "a" || s.Lists[1].Tasks[0].Title != "t" {
			t.Error("expected clone to be independent")
		}
		if c.TaskCount() != 2 {
			t.Errorf("expected 2 tasks, got %d", c.TaskCount())
		}
	})
}
