package main

import (
	"context"
	"fmt"

	"github.com/kylejschultz/caddyy-sub000/internal/models"
	"github.com/kylejschultz/caddyy-sub000/internal/repositories"
	"github.com/kylejschultz/caddyy-sub000/internal/shared"
	"github.com/urfave/cli/v3"
)

// PrefsList lists all saved view preferences.
func (r *Runner) PrefsList(ctx context.Context, cmd *cli.Command) error {
	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := repositories.NewViewPreferenceRepository(db)
	prefs, err := repo.List()
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		out := make([]map[string]any, 0, len(prefs))
		for _, p := range prefs {
			out = append(out, map[string]any{"screen_key": p.ScreenKey, "payload": p.Payload})
		}
		return r.writeJSON(out, true)
	}

	if len(prefs) == 0 {
		return r.writePlain("No saved preferences\n")
	}
	for _, p := range prefs {
		r.writePlain("%s: filter=%s sort=%s columns=%v\n", p.ScreenKey, p.Payload.DefaultFilter, p.Payload.DefaultSort, p.Payload.VisibleColumns)
	}
	return nil
}

// PrefsGet shows the preference for one screen.
func (r *Runner) PrefsGet(ctx context.Context, cmd *cli.Command) error {
	screen := cmd.StringArg("screen")
	if screen == "" {
		return fmt.Errorf("%w: screen key required", shared.ErrMissingArgument)
	}

	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := repositories.NewViewPreferenceRepository(db)
	pref, err := repo.GetByScreenKey(screen)
	if err != nil {
		return err
	}
	if pref == nil {
		return r.writePlain("No preference saved for %s\n", screen)
	}
	return r.writeJSON(pref.Payload, true)
}

// PrefsSet saves the preference for one screen, replacing any previous value.
func (r *Runner) PrefsSet(ctx context.Context, cmd *cli.Command) error {
	screen := cmd.StringArg("screen")
	if screen == "" {
		return fmt.Errorf("%w: screen key required", shared.ErrMissingArgument)
	}

	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	payload := models.ViewPreferencePayload{
		VisibleColumns: cmd.StringSlice("column"),
		DefaultFilter:  cmd.String("filter"),
		DefaultSort:    cmd.String("sort"),
	}

	repo := repositories.NewViewPreferenceRepository(db)
	if _, err := repo.Upsert(screen, payload); err != nil {
		return err
	}

	r.logger.Info("preference saved", "screen", screen)
	return r.writePlain("Preference saved for %s\n", screen)
}

// PrefsDelete removes the preference for one screen.
func (r *Runner) PrefsDelete(ctx context.Context, cmd *cli.Command) error {
	screen := cmd.StringArg("screen")
	if screen == "" {
		return fmt.Errorf("%w: screen key required", shared.ErrMissingArgument)
	}

	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := repositories.NewViewPreferenceRepository(db)
	if err := repo.DeleteByScreenKey(screen); err != nil {
		return err
	}
	return r.writePlain("Preference deleted for %s\n", screen)
}
