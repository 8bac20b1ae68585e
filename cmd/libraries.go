package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/kylejschultz/caddyy-sub000/internal/formatter"
	"github.com/kylejschultz/caddyy-sub000/internal/models"
	"github.com/kylejschultz/caddyy-sub000/internal/shared"
	"github.com/kylejschultz/caddyy-sub000/internal/tasks"
	"github.com/urfave/cli/v3"
)

// parseFolderSpec parses a folder flag of the form "[id:]name=path".
func parseFolderSpec(spec string) (models.LibraryFolder, error) {
	folder := models.LibraryFolder{Enabled: true}

	rest := spec
	if idx := strings.Index(rest, ":"); idx > 0 {
		if id, err := strconv.Atoi(rest[:idx]); err == nil {
			folder.ID = id
			rest = rest[idx+1:]
		}
	}

	name, path, ok := strings.Cut(rest, "=")
	if !ok || name == "" || path == "" {
		return folder, fmt.Errorf("%w: folder must be [id:]name=path, got %q", shared.ErrInvalidArgument, spec)
	}
	folder.Name = name
	folder.Path = path
	return folder, nil
}

func parseFolderSpecs(specs []string) ([]models.LibraryFolder, error) {
	folders := make([]models.LibraryFolder, 0, len(specs))
	for _, spec := range specs {
		folder, err := parseFolderSpec(spec)
		if err != nil {
			return nil, err
		}
		folders = append(folders, folder)
	}
	return folders, nil
}

func (r *Runner) reportFolderSync(result *tasks.FolderSyncResult) {
	for _, op := range result.Ops {
		if op.Err != nil {
			r.writePlain("  ✗ %s %s: %v\n", op.Kind, op.Path, op.Err)
		} else {
			r.writePlain("  ✓ %s %s (priority %d)\n", op.Kind, op.Path, op.Priority)
		}
	}
}

// LibrariesList lists configured libraries.
func (r *Runner) LibrariesList(ctx context.Context, cmd *cli.Command) error {
	libraries, err := r.client.Libraries(ctx)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(libraries, true)
	}

	if len(libraries) == 0 {
		return r.writePlain("No libraries configured\n")
	}
	return r.writePlain("%s\n", formatter.LibrariesTable(libraries))
}

// LibraryShow displays one library with folders and disk usage.
func (r *Runner) LibraryShow(ctx context.Context, cmd *cli.Command) error {
	id, err := parseIDArg(cmd, "id")
	if err != nil {
		return err
	}

	library, err := r.client.Library(ctx, id)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(library, true)
	}

	usage, err := r.client.FolderUsage(ctx, id)
	if err != nil {
		r.logger.Warn("failed to fetch folder usage", "library_id", id, "error", err)
	}

	r.writePlain("Library: %s (%s)\n", library.Name, library.MediaType)
	if primary := library.PrimaryFolder(); primary != nil {
		r.writePlain("Primary: %s\n", primary.Path)
	}
	return r.writePlain("\n%s\n", formatter.FoldersTable(library.Folders, usage))
}

// LibraryCreate creates a library and its folders in display order.
func (r *Runner) LibraryCreate(ctx context.Context, cmd *cli.Command) error {
	name := cmd.StringArg("name")
	if name == "" {
		return fmt.Errorf("%w: library name required", shared.ErrMissingArgument)
	}

	folders, err := parseFolderSpecs(cmd.StringSlice("folder"))
	if err != nil {
		return err
	}

	syncer := tasks.NewLibrarySyncer(r.client, r.config.Import.SyncRatePerSecond, r.logger)
	library, result, err := syncer.CreateLibraryWithFolders(ctx, name, cmd.String("type"), folders, nil)
	if err != nil {
		return err
	}

	r.writePlain("Library %d created: %s\n", library.ID, library.Name)
	if result != nil && len(result.Ops) > 0 {
		r.reportFolderSync(result)
		if err := result.Err(); err != nil {
			return err
		}
	}
	return nil
}

// LibraryUpdate updates library fields.
func (r *Runner) LibraryUpdate(ctx context.Context, cmd *cli.Command) error {
	id, err := parseIDArg(cmd, "id")
	if err != nil {
		return err
	}

	fields := map[string]any{}
	if name := cmd.String("name"); name != "" {
		fields["name"] = name
	}
	if cmd.IsSet("enabled") {
		fields["enabled"] = cmd.Bool("enabled")
	}
	if len(fields) == 0 {
		return fmt.Errorf("%w: nothing to update", shared.ErrMissingArgument)
	}

	library, err := r.client.UpdateLibrary(ctx, id, fields)
	if err != nil {
		return err
	}
	return r.writePlain("Library %d updated: %s\n", library.ID, library.Name)
}

// LibraryDelete removes a library.
func (r *Runner) LibraryDelete(ctx context.Context, cmd *cli.Command) error {
	id, err := parseIDArg(cmd, "id")
	if err != nil {
		return err
	}

	if err := r.client.DeleteLibrary(ctx, id); err != nil {
		return err
	}
	r.logger.Info("library deleted", "id", id)
	return r.writePlain("Library %d deleted\n", id)
}

// LibraryFolders replaces a library's folder list through the three-way diff
// sync: recognized ids are updated, new entries created, absent ids deleted.
func (r *Runner) LibraryFolders(ctx context.Context, cmd *cli.Command) error {
	id, err := parseIDArg(cmd, "id")
	if err != nil {
		return err
	}

	edited, err := parseFolderSpecs(cmd.StringSlice("folder"))
	if err != nil {
		return err
	}

	library, err := r.client.Library(ctx, id)
	if err != nil {
		return err
	}

	syncer := tasks.NewLibrarySyncer(r.client, r.config.Import.SyncRatePerSecond, r.logger)
	result := syncer.SyncLibraryFolders(ctx, id, library.Folders, edited, nil)

	r.writePlain("Folder sync for library %d:\n", id)
	r.reportFolderSync(result)
	return result.Err()
}

// LibraryUsage shows disk usage for a library's folders.
func (r *Runner) LibraryUsage(ctx context.Context, cmd *cli.Command) error {
	id, err := parseIDArg(cmd, "id")
	if err != nil {
		return err
	}

	usage, err := r.client.FolderUsage(ctx, id)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(usage, true)
	}

	for _, u := range usage {
		r.writePlain("Folder %d: %s free of %s\n", u.FolderID, formatter.FormatBytes(u.FreeBytes), formatter.FormatBytes(u.TotalBytes))
	}
	return nil
}
