package main

import (
	"context"
	"os"

	"github.com/desertthunder/tasklists/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)
	runner := NewRunner(RunnerOpts{Logger: logger})

	if err := newApp(runner).Run(context.Background(), os.Args); err != nil {
		runner.Close()
		logger.Fatalf("application error: %v", err)
	}
	runner.Close()
}

func newApp(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tasklists",
		Usage:   "Manage task lists from the terminal or over HTTP",
		Version: "0.1.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
				Sources: cli.EnvVars("TASKLISTS_CONFIG"),
			},
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "Enable debug logging",
				Sources: cli.EnvVars("TASKLISTS_DEBUG"),
			},
		},
		Before:   r.Before,
		Commands: r.register(),
	}
}
