package cli

import (
	"context"
)

// CheckCommand reports whether the todos table exists
type CheckCommand struct {
	app *App
}

// NewCheckCommand creates a new check command handler
func NewCheckCommand(app *App) *CheckCommand {
	return &CheckCommand{app: app}
}

// Execute runs the check command. A missing table is reported and returned as ErrTableMissing.
func (c *CheckCommand) Execute(ctx context.Context, args []string) error {
	exists, err := c.app.repo.TableExists(ctx)
	if err != nil {
		err = c.app.errors.Handle("query table", err)
		c.app.out.Fail("%v", err)
		return err
	}

	if !exists {
		c.app.out.Fail("Table 'todos' does not exist.")
		return ErrTableMissing
	}

	c.app.out.OK("Table 'todos' exists.")
	return nil
}
