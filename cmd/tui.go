package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kylejschultz/caddyy-sub000/internal/shared"
	"github.com/kylejschultz/caddyy-sub000/internal/tasks"
	"github.com/kylejschultz/caddyy-sub000/internal/ui"
	"github.com/urfave/cli/v3"
)

// ImportUI launches the interactive review TUI for an import session.
func (r *Runner) ImportUI(ctx context.Context, cmd *cli.Command) error {
	if r.client == nil {
		return fmt.Errorf("%w: backend client not initialized", shared.ErrServiceUnavailable)
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger("./tmp/caddyy-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)
	r.controller = tasks.NewSessionController(r.client, fileLogger, r.config.PollInterval())

	model := ui.NewModel(ctx, r.client, r.controller, cmd.String("type"))
	p := tea.NewProgram(model)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
