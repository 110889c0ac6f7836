package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/tasklists/internal/repositories"
	"github.com/desertthunder/tasklists/internal/shared"
	"github.com/desertthunder/tasklists/internal/tasks"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config  *shared.Config
	logger  *log.Logger
	output  io.Writer
	manager *tasks.Manager
	closer  io.Closer
	once    sync.Once
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config  *shared.Config
	Logger  *log.Logger
	Output  io.Writer
	Manager *tasks.Manager
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	return &Runner{
		config:  opts.Config,
		logger:  opts.Logger,
		output:  opts.Output,
		manager: opts.Manager,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		serveCommand, setupCommand, listsCommand, tasksCommand, exportCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// Before loads the configuration named by --config and applies the log level.
//
// A missing config file is not an error: the embedded defaults are used instead.
func (r *Runner) Before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	path := cmd.String("config")

	if _, err := os.Stat(path); err == nil {
		config, err := shared.LoadConfig(path)
		if err != nil {
			return ctx, err
		}
		r.config = config
	} else if errors.Is(err, os.ErrNotExist) {
		r.logger.Debug("config file not found, using defaults", "path", path)
	} else {
		return ctx, fmt.Errorf("failed to stat config file: %w", err)
	}

	level := r.config.LogLevel()
	if cmd.Bool("debug") {
		level = log.DebugLevel
	}
	shared.SetLogLevel(r.logger, level)
	return ctx, nil
}

// SetLogger replaces the logger used by the runner.
func (r *Runner) SetLogger(logger *log.Logger) {
	r.logger = logger
}

// Manager returns the task manager, opening and loading the configured store on first use.
func (r *Runner) Manager() (*tasks.Manager, error) {
	if r.manager != nil {
		return r.manager, nil
	}

	var store tasks.Store
	switch r.config.Storage.Backend {
	case shared.BackendSQLite:
		s, err := repositories.OpenSQLiteStore(r.config.Database)
		if err != nil {
			return nil, err
		}
		r.closer = s
		store = s
		r.logger.Debug("using sqlite store", "path", r.config.Database.Path)
	default:
		store = repositories.NewJSONStore(r.config.Storage.Path)
		r.logger.Debug("using json store", "path", r.config.Storage.Path)
	}

	manager, err := tasks.NewManager(store)
	if err != nil {
		return nil, err
	}
	if err := manager.Load(); err != nil {
		return nil, err
	}
	r.manager = manager
	return manager, nil
}

// Close releases the store opened by [Runner.Manager], if any.
func (r *Runner) Close() {
	r.once.Do(func() {
		if r.closer == nil {
			return
		}
		if err := r.closer.Close(); err != nil {
			r.logger.Warn("failed to close store", "error", err)
		}
	})
}

// mutate runs fn against the manager and saves the store afterwards.
func (r *Runner) mutate(fn func(m *tasks.Manager) error) error {
	m, err := r.Manager()
	if err != nil {
		return err
	}
	if err := fn(m); err != nil {
		return err
	}
	return m.Save()
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	output, err := shared.MarshalJSON(data, pretty)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainHeader(title string) {
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("%v\n", title)
	r.writePlain("═══════════════════════════════════════\n")
}

// idArg parses the named positional argument as a positive id.
func idArg(cmd *cli.Command, name string) (int, error) {
	raw := cmd.StringArg(name)
	if raw == "" {
		return 0, fmt.Errorf("%w: %s", shared.ErrMissingArgument, name)
	}
	return parseID(name, raw)
}

// idFlag parses the named flag as a positive id.
func idFlag(cmd *cli.Command, name string) (int, error) {
	if !cmd.IsSet(name) {
		return 0, fmt.Errorf("%w: --%s", shared.ErrMissingArgument, name)
	}
	id := cmd.Int(name)
	if id < 1 {
		return 0, fmt.Errorf("%w: --%s must be a positive integer", shared.ErrInvalidFlag, name)
	}
	return id, nil
}

func parseID(name, raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: %s must be a positive integer, got %q", shared.ErrInvalidArgument, name, raw)
	}
	return id, nil
}
