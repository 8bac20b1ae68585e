package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/kylejschultz/caddyy-sub000/internal/formatter"
	"github.com/kylejschultz/caddyy-sub000/internal/shared"
	"github.com/kylejschultz/caddyy-sub000/internal/tasks"
	"github.com/urfave/cli/v3"
)

func parseIDArg(cmd *cli.Command, name string) (int, error) {
	raw := cmd.StringArg(name)
	if raw == "" {
		return 0, fmt.Errorf("%w: %s required", shared.ErrMissingArgument, name)
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer: %v", shared.ErrInvalidArgument, name, err)
	}
	return id, nil
}

// CollectionList lists shows in the collection.
func (r *Runner) CollectionList(ctx context.Context, cmd *cli.Command) error {
	shows, err := r.client.Collection(ctx)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(shows, true)
	}

	if len(shows) == 0 {
		return r.writePlain("Collection is empty\n")
	}
	return r.writePlain("%s\n", formatter.CollectionTable(shows))
}

// CollectionShow displays one collection item.
func (r *Runner) CollectionShow(ctx context.Context, cmd *cli.Command) error {
	id, err := parseIDArg(cmd, "id")
	if err != nil {
		return err
	}

	show, err := r.client.CollectionShow(ctx, id)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(show, true)
	}

	r.writePlain("Title: %s\n", show.Title)
	if show.Year != nil {
		r.writePlain("Year: %d\n", *show.Year)
	}
	r.writePlain("TMDB: %d\n", show.TMDBID)
	r.writePlain("Monitored: %v\n", show.Monitored)
	if show.FolderPath != "" {
		r.writePlain("Path: %s\n", show.FolderPath)
	}
	if show.TotalSize > 0 {
		r.writePlain("Size: %s\n", formatter.FormatBytes(show.TotalSize))
	}
	if show.Overview != "" {
		r.writePlainln("%s", show.Overview)
	}
	return nil
}

// CollectionRemove deletes a show from the collection. The caller must choose
// explicitly between keeping and deleting files; there is no default.
func (r *Runner) CollectionRemove(ctx context.Context, cmd *cli.Command) error {
	id, err := parseIDArg(cmd, "id")
	if err != nil {
		return err
	}

	keep := cmd.Bool("keep-files")
	del := cmd.Bool("delete-files")
	if keep == del {
		return fmt.Errorf("%w: exactly one of --keep-files or --delete-files is required", shared.ErrInvalidFlag)
	}

	if err := r.client.RemoveCollectionItem(ctx, id, del); err != nil {
		return err
	}

	r.logger.Info("collection item removed", "id", id, "deleted_files", del)
	if del {
		return r.writePlain("Show %d removed and files deleted\n", id)
	}
	return r.writePlain("Show %d removed (files kept)\n", id)
}

// CollectionMonitor toggles monitoring for a show.
func (r *Runner) CollectionMonitor(ctx context.Context, cmd *cli.Command) error {
	id, err := parseIDArg(cmd, "id")
	if err != nil {
		return err
	}

	monitored := !cmd.Bool("off")
	if err := r.client.SetMonitoring(ctx, id, monitored); err != nil {
		return err
	}
	return r.writePlain("Show %d monitoring set to %v\n", id, monitored)
}

// CollectionExport walks the backend's read endpoints and writes a JSON
// snapshot to disk.
func (r *Runner) CollectionExport(ctx context.Context, cmd *cli.Command) error {
	output := cmd.String("output")
	pretty := cmd.Bool("pretty")

	r.writePlain("Exporting collection state...\n\n")

	progressCh := make(chan tasks.ProgressUpdate, 10)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for update := range progressCh {
			r.writePlain("📥 %s\n", update.Message)
		}
	}()

	exporter := tasks.NewCollectionExporter(r.client, r.config.Import.SyncRatePerSecond, r.logger)
	result, err := exporter.Export(ctx, progressCh)
	close(progressCh)
	<-done

	if err != nil {
		return err
	}

	path, err := formatter.WriteJSONExport(result, output)
	if err != nil {
		return err
	}

	r.writePlain("\n✓ Export complete\n")
	r.writePlain("Saved to %s\n", path)
	if len(result.Errors) > 0 {
		r.writePlain("\n%d endpoints failed:\n", len(result.Errors))
		for _, e := range result.Errors {
			r.writePlain("  - %s: %s\n", e.Endpoint, e.Error)
		}
	}

	if pretty {
		return r.writeJSON(result, true)
	}
	return nil
}
