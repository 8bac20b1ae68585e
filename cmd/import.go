package main

import (
	"context"
	"fmt"

	"github.com/kylejschultz/caddyy-sub000/internal/formatter"
	"github.com/kylejschultz/caddyy-sub000/internal/models"
	"github.com/kylejschultz/caddyy-sub000/internal/shared"
	"github.com/kylejschultz/caddyy-sub000/internal/tasks"
	"github.com/urfave/cli/v3"
)

// ImportStart begins a scan session and optionally polls it to preview.
func (r *Runner) ImportStart(ctx context.Context, cmd *cli.Command) error {
	mediaType := cmd.String("type")
	paths := cmd.StringSlice("path")
	watch := cmd.Bool("watch")
	useJSON := cmd.Bool("json")

	if len(paths) == 0 {
		dirs, err := r.client.LibraryPaths(ctx, mediaType)
		if err != nil {
			return fmt.Errorf("failed to load configured paths: %w", err)
		}
		for _, d := range dirs {
			if d.Enabled {
				paths = append(paths, d.Path)
			}
		}
	}

	status, err := r.controller.Start(ctx, mediaType, paths)
	if err != nil {
		return err
	}

	r.writePlain("Session %s started over %d paths\n", status.SessionID, len(paths))

	if !watch {
		if useJSON {
			return r.writeJSON(status, true)
		}
		return nil
	}

	// Watch runs until terminal, but a session parks in preview awaiting
	// review; stop polling once the preview payload has landed.
	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	progressCh := make(chan tasks.ProgressUpdate, 50)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for update := range progressCh {
			switch update.Phase {
			case tasks.Scanning:
				r.writePlain("🔍 %s (%.0f%%)\n", update.Message, update.Percent*100)
			case tasks.Matching:
				r.writePlain("🎯 %s (%.0f%%)\n", update.Message, update.Percent*100)
			case tasks.PreviewReady:
				r.writePlain("✓ %s\n", update.Message)
				cancel()
			case tasks.Importing:
				r.writePlain("📦 %s (%.0f%%)\n", update.Message, update.Percent*100)
			}
		}
	}()

	final, err := r.controller.Watch(watchCtx, progressCh)
	close(progressCh)
	<-done
	if err != nil && err != context.Canceled {
		return err
	}

	if preview := r.controller.Preview(); preview != nil {
		if useJSON {
			return r.writeJSON(preview, true)
		}
		r.writePlainln("Preview ready: review with 'caddyy import ui' or 'caddyy import preview %s'", r.controller.SessionID())
		r.output.Write(formatter.PreviewSummaryText(preview.Summary))
		return nil
	}

	if final != nil && useJSON {
		return r.writeJSON(final, true)
	}
	return nil
}

// ImportStatus shows the status of one session.
func (r *Runner) ImportStatus(ctx context.Context, cmd *cli.Command) error {
	sessionID := cmd.StringArg("session")
	if sessionID == "" {
		return fmt.Errorf("%w: session id required", shared.ErrMissingArgument)
	}

	status, err := r.client.SessionStatus(ctx, sessionID)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(status, true)
	}

	r.writePlain("Session: %s\n", status.SessionID)
	r.writePlain("Status: %s (%.0f%%)\n", status.Status, status.Progress*100)
	r.writePlain("Scanned: %d, matched: %d\n", status.ScannedCount, status.MatchedCount)
	if status.Message != "" {
		r.writePlain("Message: %s\n", status.Message)
	}
	if status.ErrorMessage != "" {
		r.writePlain("Error: %s\n", status.ErrorMessage)
	}
	return nil
}

// ImportPreview renders the reconciliation preview of a session with the
// requested filter and sort applied.
func (r *Runner) ImportPreview(ctx context.Context, cmd *cli.Command) error {
	sessionID := cmd.StringArg("session")
	if sessionID == "" {
		return fmt.Errorf("%w: session id required", shared.ErrMissingArgument)
	}

	preview, err := r.client.SessionPreview(ctx, sessionID)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(preview, true)
	}

	threshold := tasks.DefaultAutoMatchThreshold
	if settings, err := r.client.Settings(ctx); err == nil && settings.AutoMatchThreshold > 0 {
		threshold = settings.AutoMatchThreshold
	}

	rec := tasks.NewReconciler()
	rec.ApplyPreview(preview, threshold)

	view := rec.View(tasks.FilterMode(cmd.String("filter")), tasks.SortKey(cmd.String("sort")))
	matches := make([]models.ImportMatch, len(view))
	indices := make([]int, len(view))
	selected := make(map[int]bool, len(view))
	for i, im := range view {
		matches[i] = im.Match
		indices[i] = im.Index
		selected[im.Index] = rec.IsSelected(im.Index)
	}

	r.writePlain("%s\n\n", formatter.PreviewTable(matches, indices, selected))
	r.output.Write(formatter.PreviewSummaryText(preview.Summary))
	return nil
}

// ImportSessions lists active import sessions.
func (r *Runner) ImportSessions(ctx context.Context, cmd *cli.Command) error {
	sessions, err := r.client.Sessions(ctx)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(sessions, true)
	}

	if len(sessions) == 0 {
		return r.writePlain("No active sessions\n")
	}
	return r.writePlain("%s\n", formatter.SessionsTable(sessions))
}

// ImportCancel deletes a session server side.
func (r *Runner) ImportCancel(ctx context.Context, cmd *cli.Command) error {
	sessionID := cmd.StringArg("session")
	if sessionID == "" {
		return fmt.Errorf("%w: session id required", shared.ErrMissingArgument)
	}

	if err := r.client.CancelSession(ctx, sessionID); err != nil {
		return err
	}
	r.logger.Info("session cancelled", "session_id", sessionID)
	return r.writePlain("Session %s cancelled\n", sessionID)
}

// ImportRenames shows suggested file reorganizations for a session.
func (r *Runner) ImportRenames(ctx context.Context, cmd *cli.Command) error {
	sessionID := cmd.StringArg("session")
	if sessionID == "" {
		return fmt.Errorf("%w: session id required", shared.ErrMissingArgument)
	}

	ops, err := r.client.RenameOperations(ctx, sessionID)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(ops, true)
	}

	if len(ops) == 0 {
		return r.writePlain("No rename operations suggested\n")
	}
	return r.writePlain("%s\n", formatter.RenameOperationsTable(ops))
}
