package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/tasklists/internal/models"
	"github.com/desertthunder/tasklists/internal/shared"
	"github.com/desertthunder/tasklists/internal/tasks"
	"github.com/urfave/cli/v3"
)

// ListLists prints every list with its task counts.
func (r *Runner) ListLists(ctx context.Context, cmd *cli.Command) error {
	m, err := r.Manager()
	if err != nil {
		return err
	}
	lists := m.Lists()

	if cmd.Bool("json") {
		return r.writeJSON(lists, true)
	}

	if len(lists) == 0 {
		r.writePlain("No lists yet. Create one with 'tasklists lists create NAME'.\n")
		return nil
	}

	r.writePlainHeader(fmt.Sprintf("Lists (%d)", len(lists)))
	for _, l := range lists {
		r.writePlain("%4d  %-30s %d tasks, %d done\n", l.ID, l.Name, len(l.Tasks), countDone(l))
		if l.Description != "" {
			r.writePlain("      %s\n", l.Description)
		}
	}
	return nil
}

// CreateList creates a list from the name argument.
func (r *Runner) CreateList(ctx context.Context, cmd *cli.Command) error {
	name := cmd.StringArg("name")
	if name == "" {
		return fmt.Errorf("%w: name", shared.ErrMissingArgument)
	}

	var created models.List
	err := r.mutate(func(m *tasks.Manager) error {
		var err error
		created, err = m.CreateList(name, cmd.String("description"))
		return err
	})
	if err != nil {
		return err
	}

	r.logger.Debug("list created", "id", created.ID)
	r.writePlain("✓ Created list %d: %s\n", created.ID, created.Name)
	return nil
}

// RenameList renames the list given by the id argument.
func (r *Runner) RenameList(ctx context.Context, cmd *cli.Command) error {
	id, err := idArg(cmd, "id")
	if err != nil {
		return err
	}
	name := cmd.StringArg("name")

	if err := r.mutate(func(m *tasks.Manager) error { return m.RenameList(id, name) }); err != nil {
		return err
	}

	r.writePlain("✓ Renamed list %d to %s\n", id, name)
	return nil
}

// DeleteList removes a list and its tasks.
func (r *Runner) DeleteList(ctx context.Context, cmd *cli.Command) error {
	id, err := idArg(cmd, "id")
	if err != nil {
		return err
	}

	if err := r.mutate(func(m *tasks.Manager) error { return m.DeleteList(id) }); err != nil {
		return err
	}

	r.writePlain("✓ Deleted list %d\n", id)
	return nil
}

func countDone(l models.List) int {
	n := 0
	for _, t := range l.Tasks {
		if t.Status == models.StatusDone {
			n++
		}
	}
	return n
}
