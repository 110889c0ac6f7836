package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/desertthunder/tasklists/internal/models"
	"github.com/desertthunder/tasklists/internal/tasks"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	ListsView ViewState = iota
	TasksView
)

// Model represents the TUI application state.
type Model struct {
	manager  *tasks.Manager
	view     ViewState
	width    int
	height   int
	lists    list.Model
	tasks    list.Model
	selected models.List
	status   string
	err      error
	help     help.Model
	keys     keyMap
}

// NewModel creates a new TUI model backed by manager.
func NewModel(manager *tasks.Manager) *Model {
	return &Model{
		manager: manager,
		view:    ListsView,
		lists:   newList("Lists"),
		tasks:   newList("Tasks"),
		help:    help.New(),
		keys:    newKeyMap(),
	}
}

func newList(title string) list.Model {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = title
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	return l
}

// Init loads every list from the manager.
func (m *Model) Init() tea.Cmd {
	return m.loadLists()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.lists.SetSize(msg.Width-4, msg.Height-8)
		m.tasks.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case ListsView:
			return m.handleListsKeys(msg)
		case TasksView:
			return m.handleTasksKeys(msg)
		}

	case Msg:
		return m.handleMsg(msg)
	}

	return m.updateLists(msg)
}

func (m *Model) handleMsg(msg Msg) (tea.Model, tea.Cmd) {
	switch msg.kind {
	case MsgListsLoaded:
		lists := msg.data.([]models.List)
		cmd := m.lists.SetItems(listItems(lists))
		return m, cmd

	case MsgTasksLoaded:
		data := msg.data.(tasksLoaded)
		if !data.found {
			m.view = ListsView
			m.status = "list no longer exists"
			return m, m.loadLists()
		}
		m.selected = data.list
		m.tasks.Title = fmt.Sprintf("Tasks in '%s'", data.list.Name)
		cmd := m.tasks.SetItems(taskItems(data.list.Tasks))
		m.view = TasksView
		return m, cmd

	case MsgMutated:
		data := msg.data.(mutated)
		m.err = data.err
		if data.err == nil {
			m.status = data.status
		}
		return m, tea.Batch(m.loadLists(), m.loadTasks(data.listID))
	}
	return m, nil
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	switch m.view {
	case ListsView:
		return m.render(m.lists, []key.Binding{m.keys.enter, m.keys.quit})
	case TasksView:
		return m.render(m.tasks, []key.Binding{m.keys.status, m.keys.priority, m.keys.delete, m.keys.back, m.keys.quit})
	default:
		return ""
	}
}

func (m *Model) render(l list.Model, bindings []key.Binding) string {
	var line string
	switch {
	case m.err != nil:
		line = styles.err.Render(fmt.Sprintf("Error: %v", m.err))
	case m.status != "":
		line = styles.ok.Render(m.status)
	}
	return fmt.Sprintf("%s\n%s\n%s", l.View(), line, m.help.ShortHelpView(bindings))
}

func (m *Model) handleListsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.back):
		return m, nil
	case key.Matches(msg, m.keys.enter):
		if item, ok := m.lists.SelectedItem().(listItem); ok {
			m.status, m.err = "", nil
			return m, m.loadTasks(item.list.ID)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.lists, cmd = m.lists.Update(msg)
	return m, cmd
}

func (m *Model) handleTasksKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.back):
		m.view = ListsView
		m.status, m.err = "", nil
		return m, m.loadLists()
	}

	item, ok := m.tasks.SelectedItem().(taskItem)
	switch {
	case key.Matches(msg, m.keys.status):
		if ok {
			next := item.task.Status.Next()
			return m, m.mutate(fmt.Sprintf("'%s' is now %s", item.task.Title, next), func() error {
				_, err := m.manager.UpdateTask(item.task.ListID, item.task.ID, models.TaskPatch{Status: &next})
				return err
			})
		}
		return m, nil
	case key.Matches(msg, m.keys.priority):
		if ok {
			next := item.task.Priority.Next()
			return m, m.mutate(fmt.Sprintf("'%s' is now %s priority", item.task.Title, next), func() error {
				_, err := m.manager.UpdateTask(item.task.ListID, item.task.ID, models.TaskPatch{Priority: &next})
				return err
			})
		}
		return m, nil
	case key.Matches(msg, m.keys.delete):
		if ok {
			return m, m.mutate(fmt.Sprintf("deleted '%s'", item.task.Title), func() error {
				return m.manager.DeleteTask(item.task.ListID, item.task.ID)
			})
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.tasks, cmd = m.tasks.Update(msg)
	return m, cmd
}

func (m *Model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case ListsView:
		m.lists, cmd = m.lists.Update(msg)
	case TasksView:
		m.tasks, cmd = m.tasks.Update(msg)
	}
	return m, cmd
}

func (m *Model) loadLists() tea.Cmd {
	return func() tea.Msg {
		return listsLoadedMsg(m.manager.Lists())
	}
}

func (m *Model) loadTasks(listID int) tea.Cmd {
	return func() tea.Msg {
		l, ok := m.manager.List(listID)
		return tasksLoadedMsg(l, ok)
	}
}

// mutate runs fn and saves the store, reporting the outcome as a [MsgMutated].
func (m *Model) mutate(status string, fn func() error) tea.Cmd {
	listID := m.selected.ID
	return func() tea.Msg {
		if err := fn(); err != nil {
			return mutatedMsg(listID, "", err)
		}
		return mutatedMsg(listID, status, m.manager.Save())
	}
}
