package cli

import (
	"context"
)

// SmokeCommand exercises the table end to end: check, list, add the probe, list,
// delete the probe, list. It stops at the first failing step.
type SmokeCommand struct {
	app *App
}

// NewSmokeCommand creates a new smoke command handler
func NewSmokeCommand(app *App) *SmokeCommand {
	return &SmokeCommand{app: app}
}

// Execute runs the smoke cycle
func (c *SmokeCommand) Execute(ctx context.Context, args []string) error {
	probe := []string{ProbeTask}

	steps := []struct {
		name string
		args []string
	}{
		{"check", nil},
		{"list", nil},
		{"add", probe},
		{"list", nil},
		{"delete", probe},
		{"list", nil},
	}

	for _, step := range steps {
		if err := c.app.registry.Execute(ctx, step.name, step.args); err != nil {
			return err
		}
	}
	return nil
}
