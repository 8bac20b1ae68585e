package main

import (
	"context"
	"fmt"

	"github.com/kylejschultz/caddyy-sub000/internal/formatter"
	"github.com/kylejschultz/caddyy-sub000/internal/shared"
	"github.com/urfave/cli/v3"
)

// Search queries the metadata provider through the backend.
func (r *Runner) Search(ctx context.Context, cmd *cli.Command) error {
	query := cmd.StringArg("query")
	if query == "" {
		return fmt.Errorf("%w: search query required", shared.ErrMissingArgument)
	}

	results, err := r.client.Search(ctx, query, cmd.String("type"))
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(results, true)
	}

	if len(results) == 0 {
		return r.writePlain("No results for %q\n", query)
	}
	return r.writePlain("%s\n", formatter.CandidatesTable(results))
}

// FSBrowse lists a directory on the backend host.
func (r *Runner) FSBrowse(ctx context.Context, cmd *cli.Command) error {
	path := cmd.StringArg("path")
	if path == "" {
		path = "/"
	}

	listing, err := r.client.Browse(ctx, path)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(listing, true)
	}

	r.output.Write(formatter.DirectoryListingText(listing))
	return nil
}

// FSRoots lists suggested starting points for the path picker.
func (r *Runner) FSRoots(ctx context.Context, cmd *cli.Command) error {
	roots, err := r.client.Roots(ctx)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(roots, true)
	}

	if len(roots) == 0 {
		return r.writePlain("No filesystem roots reported\n")
	}
	for _, root := range roots {
		r.writePlain("%-20s %s\n", root.Name, root.Path)
	}
	return nil
}
