package tasks

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/kylejschultz/caddyy-sub000/internal/models"
	"github.com/kylejschultz/caddyy-sub000/internal/services"
	"github.com/kylejschultz/caddyy-sub000/internal/shared"
	"golang.org/x/time/rate"
)

// FolderOpKind labels one sub-operation of a folder sync.
type FolderOpKind string

const (
	FolderCreate FolderOpKind = "create"
	FolderUpdate FolderOpKind = "update"
	FolderDelete FolderOpKind = "delete"
)

// FolderOpResult records the outcome of one folder sub-operation so callers
// can retry exactly the ones that failed.
type FolderOpResult struct {
	Kind     FolderOpKind
	FolderID int
	Name     string
	Path     string
	Priority int
	Err      error
}

// FolderSyncResult accumulates every sub-operation of a folder sync. Nothing
// is rolled back on partial failure; Failed lists what to retry.
type FolderSyncResult struct {
	Ops []FolderOpResult
}

// Failed returns the sub-operations that errored.
func (r *FolderSyncResult) Failed() []FolderOpResult {
	var failed []FolderOpResult
	for _, op := range r.Ops {
		if op.Err != nil {
			failed = append(failed, op)
		}
	}
	return failed
}

// Err returns an aggregate error when any sub-operation failed, nil otherwise.
func (r *FolderSyncResult) Err() error {
	failed := r.Failed()
	if len(failed) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %d of %d folder operations failed", shared.ErrAPIRequest, len(failed), len(r.Ops))
}

// LibrarySyncer creates libraries and synchronizes their folder lists against
// the backend, pacing sequential calls with a rate limiter.
type LibrarySyncer struct {
	client  services.Client
	limiter *rate.Limiter
	logger  *log.Logger
}

// NewLibrarySyncer creates a syncer. ratePerSecond <= 0 disables pacing.
func NewLibrarySyncer(client services.Client, ratePerSecond float64, logger *log.Logger) *LibrarySyncer {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	var limiter *rate.Limiter
	if ratePerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(ratePerSecond), 1)
	}
	return &LibrarySyncer{client: client, limiter: limiter, logger: logger}
}

func (s *LibrarySyncer) wait(ctx context.Context) error {
	if s.limiter == nil {
		return nil
	}
	return s.limiter.Wait(ctx)
}

// CreateLibraryWithFolders creates a library and then its folders
// sequentially in display order, each carrying priority equal to its
// position; index 0 is implicitly the primary folder.
func (s *LibrarySyncer) CreateLibraryWithFolders(ctx context.Context, name, mediaType string, folders []models.LibraryFolder, progress chan<- ProgressUpdate) (*models.Library, *FolderSyncResult, error) {
	lib, err := s.client.CreateLibrary(ctx, name, mediaType, true, 0, nil)
	if err != nil {
		return nil, nil, err
	}

	result := &FolderSyncResult{}
	for i, folder := range folders {
		folder.Priority = i
		op := FolderOpResult{Kind: FolderCreate, Name: folder.Name, Path: folder.Path, Priority: i}
		if err := s.wait(ctx); err != nil {
			op.Err = err
			result.Ops = append(result.Ops, op)
			break
		}
		created, err := s.client.CreateFolder(ctx, lib.ID, folder)
		if err != nil {
			op.Err = err
			s.logger.Warn("folder create failed", "library_id", lib.ID, "path", folder.Path, "error", err)
		} else {
			op.FolderID = created.ID
		}
		result.Ops = append(result.Ops, op)
		sendSyncProgress(progress, len(result.Ops), len(folders), op)
	}

	return lib, result, nil
}

// SyncLibraryFolders performs a three-way diff between the library's previous
// folder list and the edited one: folders with a known id are updated with
// their new fields and positional priority, folders without a recognized id
// are created, and previous ids absent from the edited list are deleted.
// Sub-operations run sequentially; a failure does not stop later operations.
func (s *LibrarySyncer) SyncLibraryFolders(ctx context.Context, libraryID int, previous, edited []models.LibraryFolder, progress chan<- ProgressUpdate) *FolderSyncResult {
	known := make(map[int]bool, len(previous))
	for _, f := range previous {
		known[f.ID] = true
	}
	edit := make(map[int]bool, len(edited))

	result := &FolderSyncResult{}
	total := len(edited)
	for _, f := range previous {
		if !folderListed(edited, f.ID) {
			total++
		}
	}

	for i, folder := range edited {
		folder.Priority = i
		var op FolderOpResult
		if folder.ID != 0 && known[folder.ID] {
			edit[folder.ID] = true
			op = FolderOpResult{Kind: FolderUpdate, FolderID: folder.ID, Name: folder.Name, Path: folder.Path, Priority: i}
			if err := s.wait(ctx); err == nil {
				if _, err := s.client.UpdateFolder(ctx, libraryID, folder.ID, folder); err != nil {
					op.Err = err
				}
			} else {
				op.Err = err
			}
		} else {
			op = FolderOpResult{Kind: FolderCreate, Name: folder.Name, Path: folder.Path, Priority: i}
			if err := s.wait(ctx); err == nil {
				if created, err := s.client.CreateFolder(ctx, libraryID, folder); err != nil {
					op.Err = err
				} else {
					op.FolderID = created.ID
				}
			} else {
				op.Err = err
			}
		}
		if op.Err != nil {
			s.logger.Warn("folder sync operation failed", "library_id", libraryID, "kind", op.Kind, "path", op.Path, "error", op.Err)
		}
		result.Ops = append(result.Ops, op)
		sendSyncProgress(progress, len(result.Ops), total, op)
	}

	for _, f := range previous {
		if edit[f.ID] {
			continue
		}
		op := FolderOpResult{Kind: FolderDelete, FolderID: f.ID, Name: f.Name, Path: f.Path}
		if err := s.wait(ctx); err == nil {
			if err := s.client.DeleteFolder(ctx, libraryID, f.ID); err != nil {
				op.Err = err
				s.logger.Warn("folder delete failed", "library_id", libraryID, "folder_id", f.ID, "error", err)
			}
		} else {
			op.Err = err
		}
		result.Ops = append(result.Ops, op)
		sendSyncProgress(progress, len(result.Ops), total, op)
	}

	return result
}

func folderListed(folders []models.LibraryFolder, id int) bool {
	for _, f := range folders {
		if f.ID == id {
			return true
		}
	}
	return false
}

func sendSyncProgress(progress chan<- ProgressUpdate, step, total int, op FolderOpResult) {
	if progress == nil {
		return
	}
	select {
	case progress <- syncFolderUpdate(step, total, op):
	default:
	}
}
