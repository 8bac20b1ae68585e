package main

import (
	"context"
	"fmt"

	"github.com/kylejschultz/caddyy-sub000/internal/formatter"
	"github.com/kylejschultz/caddyy-sub000/internal/models"
	"github.com/kylejschultz/caddyy-sub000/internal/shared"
	"github.com/urfave/cli/v3"
)

// PathsList lists configured scan roots for a media type.
func (r *Runner) PathsList(ctx context.Context, cmd *cli.Command) error {
	mediaType := cmd.String("type")

	dirs, err := r.client.LibraryPaths(ctx, mediaType)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(dirs, true)
	}

	if len(dirs) == 0 {
		return r.writePlain("No %s paths configured\n", mediaType)
	}
	return r.writePlain("%s\n", formatter.PathsTable(dirs))
}

// PathsAdd appends a scan root.
func (r *Runner) PathsAdd(ctx context.Context, cmd *cli.Command) error {
	name := cmd.String("name")
	path := cmd.String("path")
	if name == "" || path == "" {
		return fmt.Errorf("%w: name and path required", shared.ErrMissingArgument)
	}

	dir := models.MediaDirectory{Name: name, Path: path, Enabled: true}
	added, err := r.client.AddLibraryPath(ctx, cmd.String("type"), dir)
	if err != nil {
		return err
	}
	return r.writePlain("Added %s (%s)\n", added.Name, added.Path)
}

// PathsUpdate replaces the scan root at an index.
func (r *Runner) PathsUpdate(ctx context.Context, cmd *cli.Command) error {
	index, err := parseIDArg(cmd, "index")
	if err != nil {
		return err
	}

	name := cmd.String("name")
	path := cmd.String("path")
	if name == "" || path == "" {
		return fmt.Errorf("%w: name and path required", shared.ErrMissingArgument)
	}

	dir := models.MediaDirectory{Name: name, Path: path, Enabled: cmd.Bool("enabled")}
	updated, err := r.client.UpdateLibraryPath(ctx, cmd.String("type"), index, dir)
	if err != nil {
		return err
	}
	return r.writePlain("Updated path %d: %s (%s)\n", index, updated.Name, updated.Path)
}

// PathsRemove deletes the scan root at an index.
func (r *Runner) PathsRemove(ctx context.Context, cmd *cli.Command) error {
	index, err := parseIDArg(cmd, "index")
	if err != nil {
		return err
	}

	if err := r.client.DeleteLibraryPath(ctx, cmd.String("type"), index); err != nil {
		return err
	}
	return r.writePlain("Removed path %d\n", index)
}
