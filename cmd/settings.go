package main

import (
	"context"
	"fmt"

	"github.com/kylejschultz/caddyy-sub000/internal/shared"
	"github.com/urfave/cli/v3"
)

// SettingsGet shows the backend's global settings.
func (r *Runner) SettingsGet(ctx context.Context, cmd *cli.Command) error {
	settings, err := r.client.Settings(ctx)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(settings, true)
	}

	if settings.AppName != "" {
		r.writePlain("App: %s\n", settings.AppName)
	}
	r.writePlain("Auto-match threshold: %.2f\n", settings.AutoMatchThreshold)
	r.writePlain("Debug mode: %v\n", settings.DebugMode)
	return nil
}

// SettingsSet patches settings fields.
func (r *Runner) SettingsSet(ctx context.Context, cmd *cli.Command) error {
	updates := map[string]any{}

	if threshold := cmd.Float("threshold"); threshold >= 0 {
		if threshold > 1 {
			return fmt.Errorf("%w: threshold must be between 0 and 1", shared.ErrInvalidFlag)
		}
		updates["auto_match_threshold"] = threshold
	}
	if name := cmd.String("app-name"); name != "" {
		updates["app_name"] = name
	}

	if len(updates) == 0 {
		return fmt.Errorf("%w: nothing to update", shared.ErrMissingArgument)
	}

	settings, err := r.client.UpdateSettings(ctx, updates)
	if err != nil {
		return err
	}

	r.logger.Info("settings updated", "fields", len(updates))
	return r.writePlain("Auto-match threshold: %.2f\n", settings.AutoMatchThreshold)
}
