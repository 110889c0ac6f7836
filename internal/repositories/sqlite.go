package repositories

import (
	"database/sql"
	"fmt"

	"github.com/desertthunder/tasklists/internal/models"
	"github.com/desertthunder/tasklists/internal/shared"
)

// SQLiteStore persists the snapshot across the lists, tasks and counters tables.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore wraps an already migrated database.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// OpenSQLiteStore opens the database described by cfg and applies pending migrations.
func OpenSQLiteStore(cfg shared.DatabaseConfig) (*SQLiteStore, error) {
	db, err := shared.NewDatabase(cfg.Path)
	if err != nil {
		return nil, err
	}
	shared.ConfigureDatabase(db, cfg.MaxOpenConns, cfg.MaxIdleConns)

	if err := shared.RunMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return NewSQLiteStore(db), nil
}

// Close releases the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Load reads every list and task in stored order.
func (s *SQLiteStore) Load() (*models.Snapshot, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	snap := models.NewSnapshot()
	if snap.NextListID, err = readCounter(tx, listsCounter); err != nil {
		return nil, err
	}
	if snap.NextTaskID, err = readCounter(tx, tasksCounter); err != nil {
		return nil, err
	}

	lists, err := tx.Query(`
		SELECT id, name, description, created_at, updated_at
		FROM lists
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query lists: %w", err)
	}
	defer lists.Close()

	index := make(map[int]int)
	for lists.Next() {
		l := models.List{Tasks: []models.Task{}}
		if err := lists.Scan(&l.ID, &l.Name, &l.Description, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan list: %w", err)
		}
		index[l.ID] = len(snap.Lists)
		snap.Lists = append(snap.Lists, l)
	}
	if err := lists.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate lists: %w", err)
	}

	tasks, err := tx.Query(`
		SELECT t.id, t.list_id, t.title, t.description, t.status, t.priority, t.created_at, t.updated_at
		FROM tasks t
		JOIN lists l ON l.id = t.list_id
		ORDER BY l.position, t.position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer tasks.Close()

	for tasks.Next() {
		var t models.Task
		if err := tasks.Scan(&t.ID, &t.ListID, &t.Title, &t.Description, &t.Status, &t.Priority, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		i, ok := index[t.ListID]
		if !ok {
			return nil, fmt.Errorf("%w: task %d references missing list %d", shared.ErrStorage, t.ID, t.ListID)
		}
		snap.Lists[i].Tasks = append(snap.Lists[i].Tasks, t)
	}
	if err := tasks.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}

	return snap, nil
}

// Save replaces every stored row with the snapshot inside one transaction.
func (s *SQLiteStore) Save(snap *models.Snapshot) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM tasks"); err != nil {
		return fmt.Errorf("failed to clear tasks: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM lists"); err != nil {
		return fmt.Errorf("failed to clear lists: %w", err)
	}

	listStmt, err := tx.Prepare(`
		INSERT INTO lists (id, position, name, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare list insert: %w", err)
	}
	defer listStmt.Close()

	taskStmt, err := tx.Prepare(`
		INSERT INTO tasks (id, list_id, position, title, description, status, priority, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare task insert: %w", err)
	}
	defer taskStmt.Close()

	for i, l := range snap.Lists {
		if _, err := listStmt.Exec(l.ID, i, l.Name, l.Description, l.CreatedAt, l.UpdatedAt); err != nil {
			return fmt.Errorf("failed to insert list %d: %w", l.ID, err)
		}
		for j, t := range l.Tasks {
			_, err := taskStmt.Exec(t.ID, l.ID, j, t.Title, t.Description, string(t.Status), string(t.Priority), t.CreatedAt, t.UpdatedAt)
			if err != nil {
				return fmt.Errorf("failed to insert task %d: %w", t.ID, err)
			}
		}
	}

	if err := writeCounter(tx, listsCounter, snap.NextListID); err != nil {
		return err
	}
	if err := writeCounter(tx, tasksCounter, snap.NextTaskID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return nil
}
