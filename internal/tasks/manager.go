package tasks

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/desertthunder/tasklists/internal/models"
	"github.com/desertthunder/tasklists/internal/shared"
)

// Store persists the whole task store as one snapshot.
type Store interface {
	// Load returns the persisted snapshot. Missing state yields an empty snapshot and a nil error.
	Load() (*models.Snapshot, error)

	// Save fully overwrites the persisted snapshot.
	Save(snap *models.Snapshot) error
}

// Manager holds every list and task in memory and persists them through a [Store].
type Manager struct {
	mu    sync.RWMutex
	store Store
	state *models.Snapshot
	now   func() time.Time
}

// NewManager creates a Manager backed by store and loads its current state.
func NewManager(store Store) (*Manager, error) {
	if store == nil {
		return nil, fmt.Errorf("%w: store is required", shared.ErrInvalidArgument)
	}

	m := &Manager{
		store: store,
		state: models.NewSnapshot(),
		now:   func() time.Time { return time.Now().UTC() },
	}
	if err := m.Load(); err != nil {
		return nil, err
	}
	return m, nil
}

// Load replaces the in-memory state with the store's snapshot.
//
// A snapshot that fails validation is rejected and the current state is kept.
func (m *Manager) Load() error {
	snap, err := m.store.Load()
	if err != nil {
		return fmt.Errorf("%w: load: %w", shared.ErrStorage, err)
	}
	if snap == nil {
		snap = models.NewSnapshot()
	}
	if err := snap.Validate(); err != nil {
		return fmt.Errorf("%w: load: %w", shared.ErrStorage, err)
	}
	snap.Normalize()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = snap.Clone()
	return nil
}

// Save writes the full state to the store. The write lock is held until the store returns.
func (m *Manager) Save() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.Save(m.state.Clone()); err != nil {
		return fmt.Errorf("%w: save: %w", shared.ErrStorage, err)
	}
	return nil
}

// Snapshot returns a deep copy of the whole store.
func (m *Manager) Snapshot() models.Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return *m.state.Clone()
}

// CreateList adds an empty list and returns it.
func (m *Manager) CreateList(name, description string) (models.List, error) {
	if err := models.ValidateName(name); err != nil {
		return models.List{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	ts := m.now()
	l := models.List{
		ID:          m.state.NextListID,
		Name:        strings.TrimSpace(name),
		Description: description,
		Tasks:       []models.Task{},
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}
	m.state.NextListID++
	m.state.Lists = append(m.state.Lists, l)
	return l.Clone(), nil
}

// Lists returns every list in creation order.
func (m *Manager) Lists() []models.List {
	m.mu.RLock()
	defer m.mu.RUnlock()

	lists := make([]models.List, len(m.state.Lists))
	for i, l := range m.state.Lists {
		lists[i] = l.Clone()
	}
	return lists
}

// List returns the list with id and whether it exists.
func (m *Manager) List(id int) (models.List, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i := m.listIndex(id)
	if i < 0 {
		return models.List{}, false
	}
	return m.state.Lists[i].Clone(), true
}

// RenameList sets a new name on an existing list.
func (m *Manager) RenameList(id int, name string) error {
	_, err := m.UpdateList(id, models.ListPatch{Name: &name})
	return err
}

// UpdateList applies the provided fields of patch to the list.
func (m *Manager) UpdateList(id int, patch models.ListPatch) (models.List, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.listIndex(id)
	if i < 0 {
		return models.List{}, listNotFound(id)
	}
	if err := patch.Validate(); err != nil {
		return models.List{}, err
	}

	l := &m.state.Lists[i]
	patch.Apply(l)
	l.UpdatedAt = m.now()
	return l.Clone(), nil
}

// DeleteList removes the list and every task it owns.
func (m *Manager) DeleteList(id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.listIndex(id)
	if i < 0 {
		return listNotFound(id)
	}
	m.state.Lists = append(m.state.Lists[:i], m.state.Lists[i+1:]...)
	return nil
}

// AddTask appends task to the list and returns the stored copy.
//
// The id, owning list and timestamps are always assigned here. Empty status and priority default to pending and
// medium.
func (m *Manager) AddTask(listID int, task models.Task) (models.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.listIndex(listID)
	if i < 0 {
		return models.Task{}, listNotFound(listID)
	}

	t := task.WithDefaults()
	if err := t.Validate(); err != nil {
		return models.Task{}, err
	}

	ts := m.now()
	t.ID = m.state.NextTaskID
	t.ListID = listID
	t.CreatedAt = ts
	t.UpdatedAt = ts
	m.state.NextTaskID++

	l := &m.state.Lists[i]
	l.Tasks = append(l.Tasks, t)
	return t, nil
}

// Tasks returns the tasks of a list in insertion order.
func (m *Manager) Tasks(listID int) ([]models.Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i := m.listIndex(listID)
	if i < 0 {
		return nil, listNotFound(listID)
	}
	return m.state.Lists[i].Clone().Tasks, nil
}

// AllTasks returns every task across all lists, grouped by list in creation order.
func (m *Manager) AllTasks() []models.Task {
	m.mu.RLock()
	defer m.mu.RUnlock()

	all := make([]models.Task, 0, m.state.TaskCount())
	for _, l := range m.state.Lists {
		all = append(all, l.Tasks...)
	}
	return all
}

// Task returns the task with taskID if it lives in the given list.
func (m *Manager) Task(listID, taskID int) (models.Task, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i := m.listIndex(listID)
	if i < 0 {
		return models.Task{}, false
	}
	j := taskIndex(m.state.Lists[i], taskID)
	if j < 0 {
		return models.Task{}, false
	}
	return m.state.Lists[i].Tasks[j], true
}

// FindTask looks a task up by id across every list.
func (m *Manager) FindTask(taskID int) (models.Task, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, l := range m.state.Lists {
		if j := taskIndex(l, taskID); j >= 0 {
			return l.Tasks[j], true
		}
	}
	return models.Task{}, false
}

// UpdateTask applies the provided fields of patch to the task. Nothing changes when any field is invalid.
func (m *Manager) UpdateTask(listID, taskID int, patch models.TaskPatch) (models.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.listIndex(listID)
	if i < 0 {
		return models.Task{}, listNotFound(listID)
	}
	j := taskIndex(m.state.Lists[i], taskID)
	if j < 0 {
		return models.Task{}, taskNotFound(taskID, listID)
	}
	if err := patch.Validate(); err != nil {
		return models.Task{}, err
	}

	t := &m.state.Lists[i].Tasks[j]
	patch.Apply(t)
	t.UpdatedAt = m.now()
	return *t, nil
}

// DeleteTask removes a task from its list.
func (m *Manager) DeleteTask(listID, taskID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.listIndex(listID)
	if i < 0 {
		return listNotFound(listID)
	}
	l := &m.state.Lists[i]
	j := taskIndex(*l, taskID)
	if j < 0 {
		return taskNotFound(taskID, listID)
	}
	l.Tasks = append(l.Tasks[:j], l.Tasks[j+1:]...)
	return nil
}

// MoveTask moves a task from the source list to the end of the target list.
//
// Moving a task to the list that already holds it returns the task unchanged.
func (m *Manager) MoveTask(sourceListID, taskID, targetListID int) (models.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	si := m.listIndex(sourceListID)
	if si < 0 {
		return models.Task{}, fmt.Errorf("%w: source list %d", shared.ErrNotFound, sourceListID)
	}
	ti := m.listIndex(targetListID)
	if ti < 0 {
		return models.Task{}, fmt.Errorf("%w: target list %d", shared.ErrNotFound, targetListID)
	}
	src := &m.state.Lists[si]
	j := taskIndex(*src, taskID)
	if j < 0 {
		return models.Task{}, taskNotFound(taskID, sourceListID)
	}
	if si == ti {
		return src.Tasks[j], nil
	}

	t := src.Tasks[j]
	src.Tasks = append(src.Tasks[:j], src.Tasks[j+1:]...)

	t.ListID = targetListID
	t.UpdatedAt = m.now()
	dst := &m.state.Lists[ti]
	dst.Tasks = append(dst.Tasks, t)
	return t, nil
}

func (m *Manager) listIndex(id int) int {
	for i, l := range m.state.Lists {
		if l.ID == id {
			return i
		}
	}
	return -1
}

func taskIndex(l models.List, id int) int {
	for i, t := range l.Tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func listNotFound(id int) error {
	return fmt.Errorf("%w: list %d", shared.ErrNotFound, id)
}

func taskNotFound(taskID, listID int) error {
	return fmt.Errorf("%w: task %d in list %d", shared.ErrNotFound, taskID, listID)
}
