package repositories

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/desertthunder/tasklists/internal/models"
	"github.com/desertthunder/tasklists/internal/shared"
	"github.com/desertthunder/tasklists/internal/tasks"
)

// setupTestDB creates an in-memory SQLite database with migrations applied
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := shared.RunMigrations(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	return db
}

func sampleSnapshot() *models.Snapshot {
	ts := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	return &models.Snapshot{
		NextListID: 4,
		NextTaskID: 7,
		Lists: []models.List{
			{
				ID: 3, Name: "Home", Description: "chores", CreatedAt: ts, UpdatedAt: ts,
				Tasks: []models.Task{
					{ID: 6, ListID: 3, Title: "laundry", Status: models.StatusDone, Priority: models.PriorityLow, CreatedAt: ts, UpdatedAt: ts},
					{ID: 2, ListID: 3, Title: "dishes", Description: "all of them", Status: models.StatusInProgress, Priority: models.PriorityHigh, CreatedAt: ts, UpdatedAt: ts.Add(time.Hour)},
				},
			},
			{ID: 1, Name: "Empty", CreatedAt: ts, UpdatedAt: ts, Tasks: []models.Task{}},
			{
				ID: 2, Name: "Work", CreatedAt: ts, UpdatedAt: ts,
				Tasks: []models.Task{
					{ID: 5, ListID: 2, Title: "ship", Status: models.StatusPending, Priority: models.PriorityMedium, CreatedAt: ts, UpdatedAt: ts},
				},
			},
		},
	}
}

func assertSnapshotsEqual(t *testing.T, want, got *models.Snapshot) {
	t.Helper()

	if got.NextListID != want.NextListID || got.NextTaskID != want.NextTaskID {
		t.Errorf("counters = %d/%d, want %d/%d", got.NextListID, got.NextTaskID, want.NextListID, want.NextTaskID)
	}
	if len(got.Lists) != len(want.Lists) {
		t.Fatalf("got %d lists, want %d", len(got.Lists), len(want.Lists))
	}

	for i := range want.Lists {
		w, g := want.Lists[i], got.Lists[i]
		if g.ID != w.ID || g.Name != w.Name || g.Description != w.Description ||
			!g.CreatedAt.Equal(w.CreatedAt) || !g.UpdatedAt.Equal(w.UpdatedAt) {
			t.Errorf("list %d = %+v, want %+v", i, g, w)
		}
		if len(g.Tasks) != len(w.Tasks) {
			t.Errorf("list %d has %d tasks, want %d", w.ID, len(g.Tasks), len(w.Tasks))
			continue
		}
		for j := range w.Tasks {
			wt, gt := w.Tasks[j], g.Tasks[j]
			if gt.ID != wt.ID || gt.ListID != wt.ListID || gt.Title != wt.Title || gt.Description != wt.Description ||
				gt.Status != wt.Status || gt.Priority != wt.Priority ||
				!gt.CreatedAt.Equal(wt.CreatedAt) || !gt.UpdatedAt.Equal(wt.UpdatedAt) {
				t.Errorf("task %d/%d = %+v, want %+v", i, j, gt, wt)
			}
		}
	}
}

func TestStores(t *testing.T) {
	backends := []struct {
		name  string
		store func(t *testing.T) tasks.Store
	}{
		{
			name: "json",
			store: func(t *testing.T) tasks.Store {
				return NewJSONStore(filepath.Join(t.TempDir(), "data", "tasks.json"))
			},
		},
		{
			name: "sqlite",
			store: func(t *testing.T) tasks.Store {
				db := setupTestDB(t)
				t.Cleanup(func() { db.Close() })
				return NewSQLiteStore(db)
			},
		},
	}

	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			t.Run("Load Empty", func(t *testing.T) {
				snap, err := b.store(t).Load()
				if err != nil {
					t.Fatalf("Load() error = %v", err)
				}
				if snap.NextListID != 1 || snap.NextTaskID != 1 || len(snap.Lists) != 0 {
					t.Errorf("expected empty snapshot, got %+v", snap)
				}
			})

			t.Run("Round Trip", func(t *testing.T) {
				store := b.store(t)
				want := sampleSnapshot()

				if err := store.Save(want); err != nil {
					t.Fatalf("Save() error = %v", err)
				}
				got, err := store.Load()
				if err != nil {
					t.Fatalf("Load() error = %v", err)
				}
				assertSnapshotsEqual(t, want, got)
			})

			t.Run("Save Overwrites", func(t *testing.T) {
				store := b.store(t)
				if err := store.Save(sampleSnapshot()); err != nil {
					t.Fatalf("Save() error = %v", err)
				}

				smaller := sampleSnapshot()
				smaller.Lists = smaller.Lists[1:2]
				if err := store.Save(smaller); err != nil {
					t.Fatalf("Save() error = %v", err)
				}

				got, err := store.Load()
				if err != nil {
					t.Fatalf("Load() error = %v", err)
				}
				assertSnapshotsEqual(t, smaller, got)
			})

			t.Run("Manager Round Trip", func(t *testing.T) {
				store := b.store(t)
				m, err := tasks.NewManager(store)
				if err != nil {
					t.Fatalf("NewManager() error = %v", err)
				}

				work, _ := m.CreateList("Work", "")
				later, _ := m.CreateList("Later", "")
				task, _ := m.AddTask(work.ID, models.Task{Title: "Ship release"})
				if _, err := m.MoveTask(work.ID, task.ID, later.ID); err != nil {
					t.Fatalf("MoveTask() error = %v", err)
				}
				if err := m.Save(); err != nil {
					t.Fatalf("Save() error = %v", err)
				}

				reloaded, err := tasks.NewManager(store)
				if err != nil {
					t.Fatalf("NewManager() reload error = %v", err)
				}
				want := m.Snapshot()
				got := reloaded.Snapshot()
				assertSnapshotsEqual(t, &want, &got)

				moved, ok := reloaded.Task(later.ID, task.ID)
				if !ok || moved.Title != "Ship release" {
					t.Errorf("moved task not found after reload: %+v", moved)
				}
			})
		})
	}
}

func TestJSONStore(t *testing.T) {
	t.Run("Creates Parent Directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "a", "b", "tasks.json")
		if err := NewJSONStore(path).Save(models.NewSnapshot()); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
		if _, err := NewJSONStore(path).Load(); err != nil {
			t.Fatalf("Load() error = %v", err)
		}
	})

	t.Run("Leaves No Temp File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tasks.json")
		if err := NewJSONStore(path).Save(sampleSnapshot()); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
		matches, _ := filepath.Glob(path + ".tmp")
		if len(matches) != 0 {
			t.Errorf("temp file left behind: %v", matches)
		}
	})
}
