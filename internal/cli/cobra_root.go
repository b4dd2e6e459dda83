package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"todo-list/internal/config"
	"todo-list/internal/logging"
	"todo-list/internal/repository/sqlite"
)

// Opener opens the repository under diagnosis
type Opener func(cfg *config.Config) (sqlite.Repository, error)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	config *config.Config
	out    *StatusPrinter
	open   Opener
}

// NewRootCommand creates the todo-diag cobra command. The database is opened without
// creating the schema so a missing table is reported rather than fixed.
func NewRootCommand(cfg *config.Config, out io.Writer) *RootCommand {
	root := &RootCommand{
		config: cfg,
		out:    NewStatusPrinter(out),
		open:   config.OpenRepository,
	}

	root.cmd = &cobra.Command{
		Use:   "todo-diag",
		Short: "Check the todo database",
		Long: `todo-diag connects to the todo database and checks that it is usable.

Without a subcommand it runs the smoke cycle: check that the todos table exists,
list the tasks, add a probe task, list, delete the probe by its text, list again.

EXIT STATUS:
  Non-zero when the database cannot be opened or the todos table is missing.

CONFIGURATION:
  TODO_DB_DIR                              Database directory (default: .)
  TODO_DB_FILENAME                         Database filename (default: todos.db)
  TODO_DB_BUSY_TIMEOUT                     Lock wait before failing (default: 5s)
  TODO_DEBUG                               Print error causes`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.getConfigFromFlags()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return root.run(cmd.Context(), nil)
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute(ctx context.Context) error {
	return r.cmd.ExecuteContext(ctx)
}

// SetArgs replaces the command line, for tests
func (r *RootCommand) SetArgs(args []string) {
	r.cmd.SetArgs(args)
}

func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("db-dir", "", "Database directory (overrides TODO_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides TODO_DB_FILENAME)")
	flags.Duration("busy-timeout", 0, "Lock wait before failing (overrides TODO_DB_BUSY_TIMEOUT)")
	flags.Bool("debug", false, "Print error causes (same as TODO_DEBUG=1)")
}

func (r *RootCommand) addSubcommands() {
	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Check that the todos table exists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd.Context(), []string{"check"})
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd.Context(), []string{"list"})
		},
	}

	addCmd := &cobra.Command{
		Use:   "add [task text]",
		Short: "Add a task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd.Context(), append([]string{"add"}, args...))
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete [task text]",
		Short: "Delete every task with exactly this text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd.Context(), append([]string{"delete"}, args...))
		},
	}

	r.cmd.AddCommand(checkCmd, listCmd, addCmd, deleteCmd)
}

// run opens the database, runs one command against it and closes it again
func (r *RootCommand) run(ctx context.Context, args []string) error {
	repo, err := r.open(r.config)
	if err != nil {
		r.out.Fail("Database connection failed: %v", err)
		return err
	}
	r.out.OK("Connected to database %s", repo.Path())
	r.out.Separator()

	runErr := NewApp(repo, r.out).Run(ctx, args)

	if err := repo.Close(); err != nil {
		r.out.Fail("Closing database failed: %v", err)
		if runErr == nil {
			runErr = err
		}
	} else {
		r.out.OK("Database connection closed.")
	}
	return runErr
}

// getConfigFromFlags updates the configuration with values from command-line flags
func (r *RootCommand) getConfigFromFlags() error {
	if r.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	flags := r.cmd.PersistentFlags()

	if dbDir, _ := flags.GetString("db-dir"); dbDir != "" {
		r.config.Database.Dir = dbDir
	}
	if dbFilename, _ := flags.GetString("db-filename"); dbFilename != "" {
		r.config.Database.Filename = dbFilename
	}
	if busyTimeout, _ := flags.GetDuration("busy-timeout"); busyTimeout > 0 {
		r.config.Database.BusyTimeout = busyTimeout
	}
	if debug, _ := flags.GetBool("debug"); debug {
		r.config.Application.Debug = true
	}
	logging.SetDebug(r.config.Application.Debug)

	return r.config.Validate()
}
