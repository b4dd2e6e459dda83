package cli

import (
	"context"

	"todo-list/internal/repository/sqlite"
)

// ProbeTask is the text the smoke cycle adds and then removes again
const ProbeTask = "diagnostic probe"

// App runs diagnostic commands against an open repository
type App struct {
	repo     sqlite.Repository
	out      *StatusPrinter
	errors   *ErrorHandler
	registry *CommandRegistry
}

// NewApp creates a new diagnostic application bound to repo
func NewApp(repo sqlite.Repository, out *StatusPrinter) *App {
	app := &App{
		repo:   repo,
		out:    out,
		errors: NewErrorHandler(),
	}
	app.registry = NewCommandRegistry(app)
	return app
}

// Run executes the named command. With no arguments the full smoke cycle runs.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.registry.Execute(ctx, "smoke", nil)
	}

	return a.registry.Execute(ctx, args[0], args[1:])
}
