package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/tasklists/internal/models"
	"github.com/desertthunder/tasklists/internal/shared"
	"github.com/desertthunder/tasklists/internal/tasks"
	"github.com/urfave/cli/v3"
)

// ListTasks prints the tasks of one list, or of every list when --list is not given.
func (r *Runner) ListTasks(ctx context.Context, cmd *cli.Command) error {
	m, err := r.Manager()
	if err != nil {
		return err
	}

	var items []models.Task
	if cmd.IsSet("list") {
		listID, err := idFlag(cmd, "list")
		if err != nil {
			return err
		}
		if items, err = m.Tasks(listID); err != nil {
			return err
		}
	} else {
		items = m.AllTasks()
	}

	if cmd.Bool("json") {
		return r.writeJSON(items, true)
	}

	if len(items) == 0 {
		r.writePlain("No tasks found.\n")
		return nil
	}

	r.writePlainHeader(fmt.Sprintf("Tasks (%d)", len(items)))
	for _, t := range items {
		r.writePlain("%4d  [%-11s] %-6s list %-4d %s\n", t.ID, t.Status, t.Priority, t.ListID, t.Title)
	}
	return nil
}

// AddTask appends a task to the list given by --list.
func (r *Runner) AddTask(ctx context.Context, cmd *cli.Command) error {
	listID, err := idFlag(cmd, "list")
	if err != nil {
		return err
	}

	task := models.Task{
		Title:       cmd.StringArg("title"),
		Description: cmd.String("description"),
	}
	if task.Title == "" {
		return fmt.Errorf("%w: title", shared.ErrMissingArgument)
	}
	if raw := cmd.String("status"); raw != "" {
		if task.Status, err = models.ParseStatus(raw); err != nil {
			return err
		}
	}
	if raw := cmd.String("priority"); raw != "" {
		if task.Priority, err = models.ParsePriority(raw); err != nil {
			return err
		}
	}

	var created models.Task
	err = r.mutate(func(m *tasks.Manager) error {
		var err error
		created, err = m.AddTask(listID, task)
		return err
	})
	if err != nil {
		return err
	}

	r.writePlain("✓ Added task %d to list %d: %s\n", created.ID, listID, created.Title)
	return nil
}

// UpdateTask applies the flags that were set as a partial update.
func (r *Runner) UpdateTask(ctx context.Context, cmd *cli.Command) error {
	taskID, err := idArg(cmd, "id")
	if err != nil {
		return err
	}
	listID, err := idFlag(cmd, "list")
	if err != nil {
		return err
	}

	patch, err := taskPatchFromFlags(cmd)
	if err != nil {
		return err
	}

	var updated models.Task
	err = r.mutate(func(m *tasks.Manager) error {
		var err error
		updated, err = m.UpdateTask(listID, taskID, patch)
		return err
	})
	if err != nil {
		return err
	}

	r.writePlain("✓ Updated task %d: %s [%s, %s]\n", updated.ID, updated.Title, updated.Status, updated.Priority)
	return nil
}

// MoveTask moves a task between lists.
func (r *Runner) MoveTask(ctx context.Context, cmd *cli.Command) error {
	taskID, err := idArg(cmd, "id")
	if err != nil {
		return err
	}
	from, err := idFlag(cmd, "from")
	if err != nil {
		return err
	}
	to, err := idFlag(cmd, "to")
	if err != nil {
		return err
	}

	if err := r.mutate(func(m *tasks.Manager) error {
		_, err := m.MoveTask(from, taskID, to)
		return err
	}); err != nil {
		return err
	}

	r.writePlain("✓ Moved task %d from list %d to list %d\n", taskID, from, to)
	return nil
}

// DeleteTask removes a task from the list given by --list.
func (r *Runner) DeleteTask(ctx context.Context, cmd *cli.Command) error {
	taskID, err := idArg(cmd, "id")
	if err != nil {
		return err
	}
	listID, err := idFlag(cmd, "list")
	if err != nil {
		return err
	}

	if err := r.mutate(func(m *tasks.Manager) error { return m.DeleteTask(listID, taskID) }); err != nil {
		return err
	}

	r.writePlain("✓ Deleted task %d\n", taskID)
	return nil
}

func taskPatchFromFlags(cmd *cli.Command) (models.TaskPatch, error) {
	var patch models.TaskPatch
	if cmd.IsSet("title") {
		v := cmd.String("title")
		patch.Title = &v
	}
	if cmd.IsSet("description") {
		v := cmd.String("description")
		patch.Description = &v
	}
	if cmd.IsSet("status") {
		s, err := models.ParseStatus(cmd.String("status"))
		if err != nil {
			return patch, err
		}
		patch.Status = &s
	}
	if cmd.IsSet("priority") {
		p, err := models.ParsePriority(cmd.String("priority"))
		if err != nil {
			return patch, err
		}
		patch.Priority = &p
	}
	if patch.Empty() {
		return patch, fmt.Errorf("%w: at least one of --title, --description, --status or --priority", shared.ErrMissingArgument)
	}
	return patch, nil
}
