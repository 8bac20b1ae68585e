// package services defines interface Client for the Caddyy backend HTTP API
package services

import (
	"context"

	"github.com/kylejschultz/caddyy-sub000/internal/models"
)

// Client defines the operations the Caddyy backend exposes to this CLI.
// Implemented by [CaddyyService]; test doubles implement it in-memory.
type Client interface {
	// Health checks backend availability.
	Health(ctx context.Context) error

	// LibraryPaths returns the configured scan roots for a media type ("tv" or "movies").
	LibraryPaths(ctx context.Context, mediaType string) ([]models.MediaDirectory, error)

	// AddLibraryPath appends a configured scan root.
	AddLibraryPath(ctx context.Context, mediaType string, dir models.MediaDirectory) (*models.MediaDirectory, error)

	// UpdateLibraryPath updates the scan root at index.
	UpdateLibraryPath(ctx context.Context, mediaType string, index int, dir models.MediaDirectory) (*models.MediaDirectory, error)

	// DeleteLibraryPath removes the scan root at index.
	DeleteLibraryPath(ctx context.Context, mediaType string, index int) error

	// StartSession starts a scan over the given paths and returns the initial status.
	StartSession(ctx context.Context, mediaType string, libraryPaths []string) (*models.SessionStatus, error)

	// SessionStatus polls one session.
	SessionStatus(ctx context.Context, sessionID string) (*models.SessionStatus, error)

	// SessionPreview fetches the reconciliation payload. Only valid while the
	// session status is preview or complete.
	SessionPreview(ctx context.Context, sessionID string) (*models.ImportPreview, error)

	// ManualMatch commits a specific candidate for one item and returns the
	// refreshed preview entry state.
	ManualMatch(ctx context.Context, sessionID string, itemIndex int, tmdbID int) error

	// CustomSearch re-requests candidates for one item from a free-text query.
	CustomSearch(ctx context.Context, sessionID string, itemIndex int, query string) error

	// SkipItem marks one item as skipped.
	SkipItem(ctx context.Context, sessionID string, itemIndex int) error

	// ExecuteImport starts the server-side import of matched items.
	ExecuteImport(ctx context.Context, sessionID string) error

	// CancelSession deletes a session server side.
	CancelSession(ctx context.Context, sessionID string) error

	// Sessions lists active import sessions.
	Sessions(ctx context.Context) ([]models.SessionInfo, error)

	// RenameOperations fetches suggested file reorganizations for a session.
	RenameOperations(ctx context.Context, sessionID string) ([]models.RenameOperation, error)

	// Collection returns the TV shows currently in the collection.
	Collection(ctx context.Context) ([]models.CollectionShow, error)

	// CollectionShow fetches one show by collection id.
	CollectionShow(ctx context.Context, id int) (*models.CollectionShow, error)

	// RemoveCollectionItem deletes a show, optionally removing files on disk.
	RemoveCollectionItem(ctx context.Context, id int, deleteFromDisk bool) error

	// SetMonitoring updates the monitoring flag for a show.
	SetMonitoring(ctx context.Context, id int, monitored bool) error

	// Libraries lists configured libraries with their folders.
	Libraries(ctx context.Context) ([]models.Library, error)

	// Library fetches one library.
	Library(ctx context.Context, id int) (*models.Library, error)

	// CreateLibrary creates a library without folders.
	CreateLibrary(ctx context.Context, name, mediaType string, enabled bool, sortOrder int, tags []string) (*models.Library, error)

	// UpdateLibrary updates library fields (not folders).
	UpdateLibrary(ctx context.Context, id int, fields map[string]any) (*models.Library, error)

	// DeleteLibrary removes a library.
	DeleteLibrary(ctx context.Context, id int) error

	// CreateFolder appends a folder to a library.
	CreateFolder(ctx context.Context, libraryID int, folder models.LibraryFolder) (*models.LibraryFolder, error)

	// UpdateFolder updates one folder.
	UpdateFolder(ctx context.Context, libraryID, folderID int, folder models.LibraryFolder) (*models.LibraryFolder, error)

	// DeleteFolder removes one folder.
	DeleteFolder(ctx context.Context, libraryID, folderID int) error

	// FolderUsage reports disk usage per folder of a library.
	FolderUsage(ctx context.Context, libraryID int) ([]models.FolderUsage, error)

	// Settings fetches global settings.
	Settings(ctx context.Context) (*models.Settings, error)

	// UpdateSettings patches global settings.
	UpdateSettings(ctx context.Context, updates map[string]any) (*models.Settings, error)

	// Search queries the metadata provider through the backend.
	Search(ctx context.Context, query, mediaType string) ([]models.CandidateMatch, error)

	// Browse lists a directory on the backend host.
	Browse(ctx context.Context, path string) (*models.DirectoryListing, error)

	// Roots lists suggested starting points for the path picker.
	Roots(ctx context.Context) ([]models.FilesystemRoot, error)
}
