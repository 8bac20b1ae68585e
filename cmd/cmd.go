// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func mediaTypeFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "type",
		Aliases: []string{"t"},
		Usage:   "Media type (tv or movies)",
		Value:   "tv",
	}
}

// importCommand handles import session operations
func importCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "import",
		Usage: "Scan library paths and import matched media",
		Commands: []*cli.Command{
			{
				Name:  "start",
				Usage: "Start a scan session over configured or given paths",
				Flags: []cli.Flag{
					mediaTypeFlag(),
					&cli.StringSliceFlag{
						Name:  "path",
						Usage: "Library path to scan (repeatable; defaults to all configured paths)",
					},
					&cli.BoolFlag{
						Name:  "watch",
						Usage: "Poll the session until it reaches preview",
						Value: true,
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.ImportStart,
			},
			{
				Name:  "status",
				Usage: "Show status of an import session",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "session"},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.ImportStatus,
			},
			{
				Name:  "preview",
				Usage: "Show the reconciliation preview of a session",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "session"},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "filter",
						Usage: "Filter: all, matched, needs_review, already_in_collection, ready_for_import",
						Value: "all",
					},
					&cli.StringFlag{
						Name:  "sort",
						Usage: "Sort: name, confidence, status, episodes",
						Value: "name",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.ImportPreview,
			},
			{
				Name:   "sessions",
				Usage:  "List active import sessions",
				Flags:  []cli.Flag{&cli.BoolFlag{Name: "json", Usage: "Output raw JSON"}},
				Action: r.ImportSessions,
			},
			{
				Name:  "cancel",
				Usage: "Cancel an import session",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "session"},
				},
				Action: r.ImportCancel,
			},
			{
				Name:  "renames",
				Usage: "Show suggested file reorganizations for a session",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "session"},
				},
				Flags:  []cli.Flag{&cli.BoolFlag{Name: "json", Usage: "Output raw JSON"}},
				Action: r.ImportRenames,
			},
			{
				Name:    "ui",
				Aliases: []string{"review", "tui"},
				Usage:   "Interactive review TUI: scan, match, select and import",
				Flags:   []cli.Flag{mediaTypeFlag()},
				Action:  r.ImportUI,
			},
		},
	}
}

// collectionCommand handles collection operations
func collectionCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "collection",
		Aliases: []string{"coll"},
		Usage:   "Browse and manage the media collection",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List shows in the collection",
				Flags:  []cli.Flag{&cli.BoolFlag{Name: "json", Usage: "Output raw JSON"}},
				Action: r.CollectionList,
			},
			{
				Name:  "show",
				Usage: "Show one collection item",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags:  []cli.Flag{&cli.BoolFlag{Name: "json", Usage: "Output raw JSON"}},
				Action: r.CollectionShow,
			},
			{
				Name:  "remove",
				Usage: "Remove a show from the collection",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "keep-files",
						Usage: "Remove the show but keep its files on disk",
					},
					&cli.BoolFlag{
						Name:  "delete-files",
						Usage: "Remove the show and delete its files from disk",
					},
				},
				Action: r.CollectionRemove,
			},
			{
				Name:  "monitor",
				Usage: "Toggle monitoring for a show",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "off",
						Usage: "Disable monitoring instead of enabling it",
					},
				},
				Action: r.CollectionMonitor,
			},
			{
				Name:  "export",
				Usage: "Export collection, libraries and settings to JSON",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path",
						Value:   "caddyy_export.json",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
				},
				Action: r.CollectionExport,
			},
		},
	}
}

// librariesCommand handles library and folder management
func librariesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "libraries",
		Aliases: []string{"lib"},
		Usage:   "Manage libraries and their folders",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List configured libraries",
				Flags:  []cli.Flag{&cli.BoolFlag{Name: "json", Usage: "Output raw JSON"}},
				Action: r.LibrariesList,
			},
			{
				Name:  "show",
				Usage: "Show one library with folders and disk usage",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags:  []cli.Flag{&cli.BoolFlag{Name: "json", Usage: "Output raw JSON"}},
				Action: r.LibraryShow,
			},
			{
				Name:  "create",
				Usage: "Create a library with ordered folders",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "name"},
				},
				Flags: []cli.Flag{
					mediaTypeFlag(),
					&cli.StringSliceFlag{
						Name:  "folder",
						Usage: "Folder as name=path (repeatable; first is primary)",
					},
				},
				Action: r.LibraryCreate,
			},
			{
				Name:  "update",
				Usage: "Update library fields",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Usage: "New library name"},
					&cli.BoolFlag{Name: "enabled", Usage: "Enable the library", Value: true},
				},
				Action: r.LibraryUpdate,
			},
			{
				Name:  "delete",
				Usage: "Delete a library",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Action: r.LibraryDelete,
			},
			{
				Name:  "folders",
				Usage: "Replace a library's folder list (diff-synced)",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:  "folder",
						Usage: "Folder as [id:]name=path in display order (repeatable)",
					},
				},
				Action: r.LibraryFolders,
			},
			{
				Name:  "usage",
				Usage: "Show disk usage for a library's folders",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags:  []cli.Flag{&cli.BoolFlag{Name: "json", Usage: "Output raw JSON"}},
				Action: r.LibraryUsage,
			},
		},
	}
}

// configCommand handles library path configuration
func configCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Configure scan roots for tv and movies",
		Commands: []*cli.Command{
			{
				Name:  "paths",
				Usage: "Library path operations",
				Commands: []*cli.Command{
					{
						Name:   "list",
						Usage:  "List configured paths",
						Flags:  []cli.Flag{mediaTypeFlag(), &cli.BoolFlag{Name: "json", Usage: "Output raw JSON"}},
						Action: r.PathsList,
					},
					{
						Name:  "add",
						Usage: "Add a path",
						Flags: []cli.Flag{
							mediaTypeFlag(),
							&cli.StringFlag{Name: "name", Usage: "Display name", Required: true},
							&cli.StringFlag{Name: "path", Usage: "Directory path", Required: true},
						},
						Action: r.PathsAdd,
					},
					{
						Name:  "update",
						Usage: "Update the path at an index",
						Arguments: []cli.Argument{
							&cli.StringArg{Name: "index"},
						},
						Flags: []cli.Flag{
							mediaTypeFlag(),
							&cli.StringFlag{Name: "name", Usage: "Display name", Required: true},
							&cli.StringFlag{Name: "path", Usage: "Directory path", Required: true},
							&cli.BoolFlag{Name: "enabled", Usage: "Enable the path", Value: true},
						},
						Action: r.PathsUpdate,
					},
					{
						Name:  "remove",
						Usage: "Remove the path at an index",
						Arguments: []cli.Argument{
							&cli.StringArg{Name: "index"},
						},
						Flags:  []cli.Flag{mediaTypeFlag()},
						Action: r.PathsRemove,
					},
				},
			},
		},
	}
}

// settingsCommand handles global settings
func settingsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "settings",
		Usage: "View and change backend settings",
		Commands: []*cli.Command{
			{
				Name:   "get",
				Usage:  "Show current settings",
				Flags:  []cli.Flag{&cli.BoolFlag{Name: "json", Usage: "Output raw JSON"}},
				Action: r.SettingsGet,
			},
			{
				Name:  "set",
				Usage: "Update settings fields",
				Flags: []cli.Flag{
					&cli.FloatFlag{
						Name:  "threshold",
						Usage: "Auto-match confidence threshold (0..1)",
						Value: -1,
					},
					&cli.StringFlag{Name: "app-name", Usage: "Application display name"},
				},
				Action: r.SettingsSet,
			},
		},
	}
}

// searchCommand handles ad-hoc metadata search
func searchCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "Search the metadata provider through the backend",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "query"},
		},
		Flags: []cli.Flag{
			mediaTypeFlag(),
			&cli.BoolFlag{Name: "json", Usage: "Output raw JSON"},
		},
		Action: r.Search,
	}
}

// fsCommand handles server-side filesystem browsing
func fsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "fs",
		Usage: "Browse the backend host's filesystem",
		Commands: []*cli.Command{
			{
				Name:  "browse",
				Usage: "List a directory on the backend host",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "path"},
				},
				Flags:  []cli.Flag{&cli.BoolFlag{Name: "json", Usage: "Output raw JSON"}},
				Action: r.FSBrowse,
			},
			{
				Name:   "roots",
				Usage:  "List filesystem roots suggested by the backend",
				Flags:  []cli.Flag{&cli.BoolFlag{Name: "json", Usage: "Output raw JSON"}},
				Action: r.FSRoots,
			},
		},
	}
}

// setupCommand handles setup operations for the local database.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "database",
				Usage: "Initialize database and run migrations",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupDatabase,
			},
		},
	}
}

// prefsCommand handles persisted per-screen view preferences
func prefsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "prefs",
		Usage: "Manage saved view preferences",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List saved preferences",
				Flags:  []cli.Flag{&cli.BoolFlag{Name: "json", Usage: "Output raw JSON"}},
				Action: r.PrefsList,
			},
			{
				Name:  "get",
				Usage: "Show the preference for a screen",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "screen"},
				},
				Action: r.PrefsGet,
			},
			{
				Name:  "set",
				Usage: "Save the preference for a screen",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "screen"},
				},
				Flags: []cli.Flag{
					&cli.StringSliceFlag{Name: "column", Usage: "Visible column (repeatable)"},
					&cli.StringFlag{Name: "filter", Usage: "Default filter"},
					&cli.StringFlag{Name: "sort", Usage: "Default sort"},
				},
				Action: r.PrefsSet,
			},
			{
				Name:  "delete",
				Usage: "Delete the preference for a screen",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "screen"},
				},
				Action: r.PrefsDelete,
			},
		},
	}
}

// apiCommand handles direct API calls to the backend
func apiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "api",
		Usage: "Direct API calls to the Caddyy backend",
		Commands: []*cli.Command{
			{
				Name:  "get",
				Usage: "Direct GET to the backend, prints raw JSON",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "path"},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
						Value: true,
					},
				},
				Action: r.APIGet,
			},
			{
				Name:  "post",
				Usage: "Direct POST with JSON body",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "path"},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "data",
						Aliases:  []string{"d"},
						Usage:    "JSON body to send",
						Required: true,
					},
				},
				Action: r.APIPost,
			},
		},
	}
}
