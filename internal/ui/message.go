package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/desertthunder/tasklists/internal/models"
)

// MsgKind enumerates all message types in the application.
type MsgKind int

// Msg represents all possible messages in the TUI (Elm-style message union).
type Msg struct {
	kind MsgKind
	data any
}

var (
	_ tea.Msg = Msg{}
)

const (
	MsgListsLoaded MsgKind = iota
	MsgTasksLoaded
	MsgMutated
)

type tasksLoaded struct {
	list  models.List
	found bool
}

type mutated struct {
	listID int
	status string
	err    error
}

// listsLoadedMsg is the constructor for [MsgListsLoaded]
func listsLoadedMsg(lists []models.List) Msg {
	return Msg{kind: MsgListsLoaded, data: lists}
}

// tasksLoadedMsg is the constructor for [MsgTasksLoaded]
func tasksLoadedMsg(list models.List, found bool) Msg {
	return Msg{kind: MsgTasksLoaded, data: tasksLoaded{list: list, found: found}}
}

// mutatedMsg is the constructor for [MsgMutated]
func mutatedMsg(listID int, status string, err error) Msg {
	return Msg{kind: MsgMutated, data: mutated{listID: listID, status: status, err: err}}
}
