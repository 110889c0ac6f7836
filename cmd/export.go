package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/tasklists/internal/formatter"
	"github.com/desertthunder/tasklists/internal/shared"
	"github.com/urfave/cli/v3"
)

// Export writes a list to disk in the requested format.
func (r *Runner) Export(ctx context.Context, cmd *cli.Command) error {
	id, err := idArg(cmd, "id")
	if err != nil {
		return err
	}
	format, err := formatter.ParseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	m, err := r.Manager()
	if err != nil {
		return err
	}
	list, ok := m.List(id)
	if !ok {
		return fmt.Errorf("%w: list %d", shared.ErrNotFound, id)
	}

	r.logger.Info("exporting list", "id", id, "format", format)
	files, err := formatter.WriteExport(list, format, cmd.String("output"))
	if err != nil {
		return err
	}

	r.writePlain("✓ Exported '%s' (%d tasks)\n", list.Name, len(list.Tasks))
	for _, f := range files {
		r.writePlain("  %s\n", f)
	}
	return nil
}
