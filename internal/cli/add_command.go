package cli

import (
	"context"
	"strings"

	"todo-list/internal/errors"
	"todo-list/internal/repository/sqlite"
)

// AddCommand inserts one task with the given text as-is
type AddCommand struct {
	app *App
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{app: app}
}

// Execute runs the add command; all arguments are joined into the task text
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	text := strings.Join(args, " ")
	if text == "" {
		return errors.NewInvalidInputError("text", text, "task text is required")
	}

	task := &sqlite.Task{Text: text}
	if err := c.app.repo.CreateTask(ctx, task); err != nil {
		err = c.app.errors.Handle("add task", err)
		c.app.out.Fail("%v", err)
		return err
	}

	c.app.out.OK("Added task: %s", text)
	return nil
}
