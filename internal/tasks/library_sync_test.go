package tasks

import (
	"context"
	"errors"
	"testing"

	"github.com/kylejschultz/caddyy-sub000/internal/models"
	tu "github.com/kylejschultz/caddyy-sub000/internal/testing"
)

func folder(id int, name, path string) models.LibraryFolder {
	return models.LibraryFolder{ID: id, Name: name, Path: path}
}

func TestLibrarySyncer_CreateLibraryWithFolders(t *testing.T) {
	var created []models.LibraryFolder
	nextID := 10
	client := &tu.MockClient{
		CreateLibraryFunc: func(ctx context.Context, name, mediaType string, enabled bool, sortOrder int, tags []string) (*models.Library, error) {
			return &models.Library{ID: 7, Name: name, MediaType: mediaType}, nil
		},
		CreateFolderFunc: func(ctx context.Context, libraryID int, f models.LibraryFolder) (*models.LibraryFolder, error) {
			if libraryID != 7 {
				t.Errorf("libraryID = %d, want 7", libraryID)
			}
			created = append(created, f)
			nextID++
			out := f
			out.ID = nextID
			return &out, nil
		},
	}

	s := NewLibrarySyncer(client, 0, nil)
	lib, result, err := s.CreateLibraryWithFolders(context.Background(), "TV", "tv", []models.LibraryFolder{
		folder(0, "Main", "/media/tv"),
		folder(0, "Overflow", "/mnt/tv2"),
	}, nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if lib.ID != 7 {
		t.Errorf("library id = %d, want 7", lib.ID)
	}
	if err := result.Err(); err != nil {
		t.Fatalf("result err = %v", err)
	}

	// Priority follows display order; index 0 is the primary folder.
	if len(created) != 2 {
		t.Fatalf("created %d folders, want 2", len(created))
	}
	for i, f := range created {
		if f.Priority != i {
			t.Errorf("folder %q priority = %d, want %d", f.Name, f.Priority, i)
		}
	}
	if result.Ops[0].FolderID == 0 || result.Ops[1].FolderID == 0 {
		t.Error("expected created folder ids recorded in the result")
	}
}

func TestLibrarySyncer_SyncLibraryFolders(t *testing.T) {
	previous := []models.LibraryFolder{
		folder(1, "Main", "/media/tv"),
		folder(2, "Old", "/mnt/old"),
	}
	edited := []models.LibraryFolder{
		folder(1, "Main", "/media/tv-renamed"),
		folder(0, "New", "/mnt/new"),
	}

	var updated, deleted []int
	var createdPaths []string
	client := &tu.MockClient{
		UpdateFolderFunc: func(ctx context.Context, libraryID, folderID int, f models.LibraryFolder) (*models.LibraryFolder, error) {
			updated = append(updated, folderID)
			if f.Priority != 0 {
				t.Errorf("updated folder priority = %d, want 0", f.Priority)
			}
			return &f, nil
		},
		CreateFolderFunc: func(ctx context.Context, libraryID int, f models.LibraryFolder) (*models.LibraryFolder, error) {
			createdPaths = append(createdPaths, f.Path)
			if f.Priority != 1 {
				t.Errorf("created folder priority = %d, want 1", f.Priority)
			}
			out := f
			out.ID = 99
			return &out, nil
		},
		DeleteFolderFunc: func(ctx context.Context, libraryID, folderID int) error {
			deleted = append(deleted, folderID)
			return nil
		},
	}

	s := NewLibrarySyncer(client, 0, nil)
	result := s.SyncLibraryFolders(context.Background(), 7, previous, edited, nil)

	if err := result.Err(); err != nil {
		t.Fatalf("result err = %v", err)
	}
	if len(updated) != 1 || updated[0] != 1 {
		t.Errorf("updated = %v, want [1]", updated)
	}
	if len(createdPaths) != 1 || createdPaths[0] != "/mnt/new" {
		t.Errorf("created = %v, want [/mnt/new]", createdPaths)
	}
	if len(deleted) != 1 || deleted[0] != 2 {
		t.Errorf("deleted = %v, want [2]", deleted)
	}
	if len(result.Ops) != 3 {
		t.Errorf("ops = %d, want 3", len(result.Ops))
	}
}

func TestLibrarySyncer_SyncLibraryFolders_PartialFailure(t *testing.T) {
	previous := []models.LibraryFolder{folder(1, "Main", "/media/tv")}
	edited := []models.LibraryFolder{
		folder(1, "Main", "/media/tv"),
		folder(0, "New", "/mnt/new"),
	}

	deleteCalled := false
	client := &tu.MockClient{
		UpdateFolderFunc: func(ctx context.Context, libraryID, folderID int, f models.LibraryFolder) (*models.LibraryFolder, error) {
			return nil, errors.New("update rejected")
		},
		CreateFolderFunc: func(ctx context.Context, libraryID int, f models.LibraryFolder) (*models.LibraryFolder, error) {
			out := f
			out.ID = 50
			return &out, nil
		},
		DeleteFolderFunc: func(ctx context.Context, libraryID, folderID int) error {
			deleteCalled = true
			return nil
		},
	}

	s := NewLibrarySyncer(client, 0, nil)
	result := s.SyncLibraryFolders(context.Background(), 7, previous, edited, nil)

	// One failure does not stop the remaining operations and nothing rolls back.
	if len(result.Ops) != 2 {
		t.Fatalf("ops = %d, want 2", len(result.Ops))
	}
	if deleteCalled {
		t.Error("folder 1 is still listed, it must not be deleted")
	}

	failed := result.Failed()
	if len(failed) != 1 {
		t.Fatalf("failed = %d, want 1", len(failed))
	}
	if failed[0].Kind != FolderUpdate || failed[0].FolderID != 1 {
		t.Errorf("failed op = %+v, want the update of folder 1", failed[0])
	}
	if result.Err() == nil {
		t.Error("expected aggregate error for partial failure")
	}
}

func TestCollectionExporter_Export(t *testing.T) {
	client := &tu.MockClient{
		LibrariesFunc: func(ctx context.Context) ([]models.Library, error) {
			return nil, errors.New("libraries unavailable")
		},
		CollectionFunc: func(ctx context.Context) ([]models.CollectionShow, error) {
			return []models.CollectionShow{{ID: 1, Title: "Andor", TMDBID: 100}}, nil
		},
	}

	e := NewCollectionExporter(client, 0, nil)
	progress := make(chan ProgressUpdate, 10)
	result, err := e.Export(context.Background(), progress)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	if result.Collection == nil {
		t.Error("expected collection captured")
	}
	if result.Libraries != nil {
		t.Error("expected libraries left empty after fetch failure")
	}
	if len(result.Errors) != 1 || result.Errors[0].Endpoint != "libraries" {
		t.Errorf("errors = %v, want one libraries entry", result.Errors)
	}
	if len(progress) == 0 {
		t.Error("expected progress updates emitted")
	}
}
