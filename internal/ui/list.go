package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"

	"github.com/desertthunder/tasklists/internal/models"
)

var (
	_ list.Item = listItem{}
	_ list.Item = taskItem{}
)

// listItem wraps [models.List] to implement [list.Item].
type listItem struct {
	list models.List
}

func (i listItem) FilterValue() string { return i.list.Name }
func (i listItem) Title() string       { return i.list.Name }
func (i listItem) Description() string {
	done := 0
	for _, t := range i.list.Tasks {
		if t.Status == models.StatusDone {
			done++
		}
	}
	desc := fmt.Sprintf("%d tasks • %d done", len(i.list.Tasks), done)
	if i.list.Description != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.list.Description)
	}
	return desc
}

// taskItem wraps [models.Task] to implement [list.Item].
type taskItem struct {
	task models.Task
}

func (i taskItem) FilterValue() string { return i.task.Title }
func (i taskItem) Title() string       { return i.task.Title }
func (i taskItem) Description() string {
	desc := fmt.Sprintf("%s • %s",
		styles.statusStyle(i.task.Status).Render(string(i.task.Status)),
		styles.priorityStyle(i.task.Priority).Render(string(i.task.Priority)),
	)
	if i.task.Description != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.task.Description)
	}
	return desc
}

func listItems(lists []models.List) []list.Item {
	items := make([]list.Item, len(lists))
	for i, l := range lists {
		items[i] = listItem{list: l}
	}
	return items
}

func taskItems(tasks []models.Task) []list.Item {
	items := make([]list.Item, len(tasks))
	for i, t := range tasks {
		items[i] = taskItem{task: t}
	}
	return items
}
