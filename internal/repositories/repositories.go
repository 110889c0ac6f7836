package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

const (
	listsCounter = "lists"
	tasksCounter = "tasks"
)

// readCounter returns the stored value of a next-id counter, or 1 when the row is missing.
func readCounter(tx *sql.Tx, name string) (int, error) {
	var value int
	err := tx.QueryRow("SELECT value FROM counters WHERE name = ?", name).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 1, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read %s counter: %w", name, err)
	}
	return value, nil
}

// writeCounter upserts a next-id counter inside the caller's transaction.
func writeCounter(tx *sql.Tx, name string, value int) error {
	_, err := tx.Exec(`
		INSERT INTO counters (name, value) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value
	`, name, value)
	if err != nil {
		return fmt.Errorf("failed to write %s counter: %w", name, err)
	}
	return nil
}
