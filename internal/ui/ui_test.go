package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/desertthunder/tasklists/internal/models"
	"github.com/desertthunder/tasklists/internal/tasks"
	tu "github.com/desertthunder/tasklists/internal/testing"
)

func setupModel(t *testing.T) (*Model, *tasks.Manager, *tu.MemoryStore) {
	t.Helper()
	store := tu.NewMemoryStore(nil)
	manager, err := tasks.NewManager(store)
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}
	l, err := manager.CreateList("Chores", "around the house")
	if err != nil {
		t.Fatalf("CreateList() error = %v", err)
	}
	if _, err := manager.AddTask(l.ID, models.Task{Title: "Dishes"}); err != nil {
		t.Fatalf("AddTask() error = %v", err)
	}

	m := NewModel(manager)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m.Update(m.Init()())
	return m, manager, store
}

func press(m *Model, k tea.KeyMsg) tea.Msg {
	_, cmd := m.Update(k)
	if cmd == nil {
		return nil
	}
	return cmd()
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestModel(t *testing.T) {
	t.Run("Init loads lists", func(t *testing.T) {
		m, _, _ := setupModel(t)
		if got := len(m.lists.Items()); got != 1 {
			t.Fatalf("expected 1 list item, got %d", got)
		}
		if !strings.Contains(m.View(), "Chores") {
			t.Errorf("expected view to contain list name, got %q", m.View())
		}
	})

	t.Run("enter opens the selected list", func(t *testing.T) {
		m, _, _ := setupModel(t)
		m.Update(press(m, keyEnter))

		if m.view != TasksView {
			t.Fatalf("expected TasksView, got %v", m.view)
		}
		if got := len(m.tasks.Items()); got != 1 {
			t.Errorf("expected 1 task item, got %d", got)
		}
	})

	t.Run("esc returns to lists", func(t *testing.T) {
		m, _, _ := setupModel(t)
		m.Update(press(m, keyEnter))
		press(m, keyEsc)

		if m.view != ListsView {
			t.Errorf("expected ListsView, got %v", m.view)
		}
	})

	t.Run("status key advances and saves", func(t *testing.T) {
		m, manager, store := setupModel(t)
		m.Update(press(m, keyEnter))

		msg := press(m, keyRune('s'))
		if msg == nil {
			t.Fatal("expected a mutation command")
		}
		m.Update(msg)

		task, ok := manager.FindTask(1)
		if !ok {
			t.Fatal("expected task to exist")
		}
		if task.Status != models.StatusInProgress {
			t.Errorf("expected status %q, got %q", models.StatusInProgress, task.Status)
		}
		if store.Saves() != 1 {
			t.Errorf("expected 1 save, got %d", store.Saves())
		}
		if m.err != nil || m.status == "" {
			t.Errorf("expected status line without error, got status=%q err=%v", m.status, m.err)
		}
	})

	t.Run("priority key advances", func(t *testing.T) {
		m, manager, _ := setupModel(t)
		m.Update(press(m, keyEnter))
		m.Update(press(m, keyRune('p')))

		task, _ := manager.FindTask(1)
		if task.Priority != models.PriorityHigh {
			t.Errorf("expected priority %q, got %q", models.PriorityHigh, task.Priority)
		}
	})

	t.Run("delete key removes the task", func(t *testing.T) {
		m, manager, _ := setupModel(t)
		m.Update(press(m, keyEnter))
		m.Update(press(m, keyRune('x')))

		if _, ok := manager.FindTask(1); ok {
			t.Error("expected task to be deleted")
		}
	})

	t.Run("save failure is shown inline", func(t *testing.T) {
		m, _, store := setupModel(t)
		m.Update(press(m, keyEnter))
		store.SaveErr = errors.New("disk full")
		m.Update(press(m, keyRune('s')))

		if m.err == nil {
			t.Fatal("expected error to be recorded")
		}
		if !strings.Contains(m.View(), "disk full") {
			t.Errorf("expected view to show the error, got %q", m.View())
		}
	})

	t.Run("q quits", func(t *testing.T) {
		m, _, _ := setupModel(t)
		if _, ok := press(m, keyRune('q')).(tea.QuitMsg); !ok {
			t.Error("expected quit message")
		}
	})

	t.Run("missing list falls back to lists view", func(t *testing.T) {
		m, _, _ := setupModel(t)
		m.view = TasksView
		m.Update(tasksLoadedMsg(models.List{}, false))
		if m.view != ListsView {
			t.Errorf("expected ListsView, got %v", m.view)
		}
	})
}
