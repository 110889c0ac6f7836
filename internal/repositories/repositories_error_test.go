package repositories

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/desertthunder/tasklists/internal/models"
	"github.com/desertthunder/tasklists/internal/shared"
)

func TestJSONStoreErrors(t *testing.T) {
	t.Run("Load", func(t *testing.T) {
		t.Run("EmptyFile", func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tasks.json")
			if err := os.WriteFile(path, []byte("  \n"), 0644); err != nil {
				t.Fatalf("failed to write file: %v", err)
			}

			snap, err := NewJSONStore(path).Load()
			if err != nil {
				t.Fatalf("expected empty file to load, got %v", err)
			}
			if len(snap.Lists) != 0 || snap.NextListID != 1 {
				t.Errorf("expected empty snapshot, got %+v", snap)
			}
		})

		t.Run("CorruptFile", func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tasks.json")
			if err := os.WriteFile(path, []byte(`{"lists": [`), 0644); err != nil {
				t.Fatalf("failed to write file: %v", err)
			}

			if _, err := NewJSONStore(path).Load(); err == nil {
				t.Fatal("expected error for corrupt file")
			}
		})

		t.Run("PathIsDirectory", func(t *testing.T) {
			if _, err := NewJSONStore(t.TempDir()).Load(); err == nil {
				t.Fatal("expected error when path is a directory")
			}
		})
	})

	t.Run("Save", func(t *testing.T) {
		t.Run("ParentIsFile", func(t *testing.T) {
			dir := t.TempDir()
			blocker := filepath.Join(dir, "blocker")
			if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
				t.Fatalf("failed to write file: %v", err)
			}

			store := NewJSONStore(filepath.Join(blocker, "tasks.json"))
			if err := store.Save(models.NewSnapshot()); err == nil {
				t.Fatal("expected error when parent path is a file")
			}
		})

		t.Run("TargetIsDirectory", func(t *testing.T) {
			dir := t.TempDir()
			target := filepath.Join(dir, "tasks.json")
			if err := os.Mkdir(target, 0755); err != nil {
				t.Fatalf("failed to create directory: %v", err)
			}
			if err := os.WriteFile(filepath.Join(target, "keep"), []byte("x"), 0644); err != nil {
				t.Fatalf("failed to write file: %v", err)
			}

			if err := NewJSONStore(target).Save(models.NewSnapshot()); err == nil {
				t.Fatal("expected error when target is a non-empty directory")
			}
			if _, err := os.Stat(target + ".tmp"); !os.IsNotExist(err) {
				t.Error("temp file should be removed after a failed rename")
			}
		})
	})
}

func TestSQLiteStoreErrors(t *testing.T) {
	t.Run("ClosedDatabase", func(t *testing.T) {
		db := setupTestDB(t)
		store := NewSQLiteStore(db)
		db.Close()

		if _, err := store.Load(); err == nil {
			t.Error("expected Load error on closed database")
		}
		if err := store.Save(models.NewSnapshot()); err == nil {
			t.Error("expected Save error on closed database")
		}
	})

	t.Run("Constraint Violation Rolls Back", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()
		store := NewSQLiteStore(db)

		if err := store.Save(sampleSnapshot()); err != nil {
			t.Fatalf("Save() error = %v", err)
		}

		bad := sampleSnapshot()
		bad.Lists[0].Tasks[0].Status = "blocked"
		if err := store.Save(bad); err == nil {
			t.Fatal("expected constraint error for unknown status")
		}

		got, err := store.Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		assertSnapshotsEqual(t, sampleSnapshot(), got)
	})

	t.Run("OpenSQLiteStore", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tasks.db")
		store, err := OpenSQLiteStore(shared.DatabaseConfig{Path: path, MaxOpenConns: 1, MaxIdleConns: 1})
		if err != nil {
			t.Fatalf("OpenSQLiteStore() error = %v", err)
		}
		defer store.Close()

		if err := store.Save(sampleSnapshot()); err != nil {
			t.Fatalf("Save() error = %v", err)
		}

		if _, err := OpenSQLiteStore(shared.DatabaseConfig{}); err == nil {
			t.Error("expected error for empty database path")
		}
	})
}
