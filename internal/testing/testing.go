// package testing contains shared testing utilities
package testing

import (
	"errors"
	"io"
	"os"
	"sync"
	"testing"

	"github.com/desertthunder/tasklists/internal/models"
)

// MemoryStore is an in-memory test double for [tasks.Store].
//
// LoadErr and SaveErr are returned verbatim when set. Saved snapshots are deep-copied so later manager mutations
// don't leak into what the test inspects.
type MemoryStore struct {
	mu      sync.Mutex
	snap    *models.Snapshot
	LoadErr error
	SaveErr error
	saves   int
	loads   int
}

// NewMemoryStore returns a store that loads snap, or an empty store when snap is nil.
func NewMemoryStore(snap *models.Snapshot) *MemoryStore {
	s := &MemoryStore{}
	if snap != nil {
		s.snap = snap.Clone()
	}
	return s
}

func (m *MemoryStore) Load() (*models.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loads++
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.snap == nil {
		return models.NewSnapshot(), nil
	}
	return m.snap.Clone(), nil
}

func (m *MemoryStore) Save(snap *models.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.saves++
	m.snap = snap.Clone()
	return nil
}

// Saved returns a copy of the last saved snapshot, or nil if nothing was saved yet.
func (m *MemoryStore) Saved() *models.Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.snap == nil {
		return nil
	}
	return m.snap.Clone()
}

// Saves reports how many successful Save calls the store has seen.
func (m *MemoryStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

// Loads reports how many Load calls the store has seen.
func (m *MemoryStore) Loads() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loads
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

func MustGetwd(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	return wd
}

func MustChdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory to %s: %v", dir, err)
	}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func AssertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		t.Errorf("Directory does not exist: %s", path)
		return
	}
	if !info.IsDir() {
		t.Errorf("Path is not a directory: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
