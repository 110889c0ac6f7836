// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// serveCommand runs the HTTP API
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP API until interrupted",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "host",
				Usage: "Host to bind (overrides server.host)",
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Port to bind (overrides server.port)",
			},
		},
		Action: r.Serve,
	}
}

// setupCommand handles first-run setup for the config file and database.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:   "config",
				Usage:  "Write a config file from the built-in template",
				Action: r.SetupConfig,
			},
			{
				Name:   "database",
				Usage:  "Initialize database and run migrations",
				Action: r.SetupDatabase,
			},
		},
	}
}

// listsCommand handles list operations
func listsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "lists",
		Aliases: []string{"list", "l"},
		Usage:   "Manage task lists",
		Commands: []*cli.Command{
			{
				Name:    "ls",
				Aliases: []string{"all"},
				Usage:   "Show every list",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.ListLists,
			},
			{
				Name:  "create",
				Usage: "Create a list",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "name"},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "description",
						Aliases: []string{"d"},
						Usage:   "List description",
					},
				},
				Action: r.CreateList,
			},
			{
				Name:  "rename",
				Usage: "Rename a list",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
					&cli.StringArg{Name: "name"},
				},
				Action: r.RenameList,
			},
			{
				Name:    "rm",
				Aliases: []string{"delete"},
				Usage:   "Delete a list and all of its tasks",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Action: r.DeleteList,
			},
		},
	}
}

// tasksCommand handles task operations
func tasksCommand(r *Runner) *cli.Command {
	listFlag := func(required bool) cli.Flag {
		return &cli.IntFlag{
			Name:     "list",
			Aliases:  []string{"l"},
			Usage:    "List ID",
			Required: required,
		}
	}

	return &cli.Command{
		Name:    "tasks",
		Aliases: []string{"task", "t"},
		Usage:   "Manage tasks",
		Commands: []*cli.Command{
			{
				Name:  "ls",
				Usage: "Show tasks, optionally limited to one list",
				Flags: []cli.Flag{
					listFlag(false),
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.ListTasks,
			},
			{
				Name:  "add",
				Usage: "Add a task to a list",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "title"},
				},
				Flags: []cli.Flag{
					listFlag(true),
					&cli.StringFlag{
						Name:    "description",
						Aliases: []string{"d"},
						Usage:   "Task description",
					},
					&cli.StringFlag{
						Name:  "status",
						Usage: "pending, in_progress or done",
					},
					&cli.StringFlag{
						Name:  "priority",
						Usage: "low, medium or high",
					},
				},
				Action: r.AddTask,
			},
			{
				Name:  "update",
				Usage: "Update fields of a task",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags: []cli.Flag{
					listFlag(true),
					&cli.StringFlag{Name: "title", Usage: "New title"},
					&cli.StringFlag{Name: "description", Aliases: []string{"d"}, Usage: "New description"},
					&cli.StringFlag{Name: "status", Usage: "pending, in_progress or done"},
					&cli.StringFlag{Name: "priority", Usage: "low, medium or high"},
				},
				Action: r.UpdateTask,
			},
			{
				Name:  "move",
				Usage: "Move a task to another list",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "from", Usage: "Source list ID", Required: true},
					&cli.IntFlag{Name: "to", Usage: "Target list ID", Required: true},
				},
				Action: r.MoveTask,
			},
			{
				Name:    "rm",
				Aliases: []string{"delete"},
				Usage:   "Delete a task",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags:  []cli.Flag{listFlag(true)},
				Action: r.DeleteTask,
			},
		},
	}
}

// exportCommand writes a list to disk
func exportCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export a list as csv, markdown, text, yaml, json or pdf",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "id"},
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Export format",
				Value:   "csv",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output path (file base for csv, directory for markdown)",
			},
		},
		Action: r.Export,
	}
}

// tuiCommand launches the interactive interface
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "tui",
		Usage:  "Browse and edit lists interactively",
		Action: r.TUI,
	}
}
