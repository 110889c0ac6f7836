package repositories

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/desertthunder/tasklists/internal/models"
	"github.com/desertthunder/tasklists/internal/shared"
)

// JSONStore persists the snapshot as a single JSON file.
type JSONStore struct {
	Path string
}

// NewJSONStore creates a JSONStore that reads and writes path.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{Path: path}
}

// Load reads the snapshot from disk. A missing or empty file is an empty store.
func (s *JSONStore) Load() (*models.Snapshot, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return models.NewSnapshot(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.Path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return models.NewSnapshot(), nil
	}

	var snap models.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", s.Path, err)
	}
	return &snap, nil
}

// Save writes the snapshot to a sibling temp file and renames it over Path.
func (s *JSONStore) Save(snap *models.Snapshot) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	data, err := shared.MarshalJSON(snap, true)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	tmp := s.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.Path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace %s: %w", s.Path, err)
	}
	return nil
}
