package cli

import (
	"context"
	"strings"

	"todo-list/internal/errors"
)

// DeleteCommand removes every task whose text matches exactly
type DeleteCommand struct {
	app *App
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{app: app}
}

// Execute runs the delete command; all arguments are joined into the text to match
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	text := strings.Join(args, " ")
	if text == "" {
		return errors.NewInvalidInputError("text", text, "task text is required")
	}

	removed, err := c.app.repo.DeleteTasksByText(ctx, text)
	if err != nil {
		err = c.app.errors.Handle("delete task", err)
		c.app.out.Fail("%v", err)
		return err
	}

	c.app.out.OK("Deleted task: %s (%d row(s))", text, removed)
	return nil
}
