package cli

import (
	"context"
)

// ListCommand prints every task
type ListCommand struct {
	app *App
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{app: app}
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	tasks, err := c.app.repo.ListTasks(ctx)
	if err != nil {
		err = c.app.errors.Handle("list tasks", err)
		c.app.out.Fail("%v", err)
		return err
	}

	if len(tasks) == 0 {
		c.app.out.Info("No tasks.")
		return nil
	}

	c.app.out.Info("Current tasks:")
	for _, task := range tasks {
		c.app.out.Line("- [%d] %s", task.ID, task.Text)
	}
	return nil
}
