// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"testing"

	"github.com/kylejschultz/caddyy-sub000/internal/models"
)

// MockClient is a configurable test double for [services.Client]. Any nil
// function field returns the zero value without error.
type MockClient struct {
	HealthFunc            func(ctx context.Context) error
	LibraryPathsFunc      func(ctx context.Context, mediaType string) ([]models.MediaDirectory, error)
	AddLibraryPathFunc    func(ctx context.Context, mediaType string, dir models.MediaDirectory) (*models.MediaDirectory, error)
	UpdateLibraryPathFunc func(ctx context.Context, mediaType string, index int, dir models.MediaDirectory) (*models.MediaDirectory, error)
	DeleteLibraryPathFunc func(ctx context.Context, mediaType string, index int) error
	StartSessionFunc      func(ctx context.Context, mediaType string, libraryPaths []string) (*models.SessionStatus, error)
	SessionStatusFunc     func(ctx context.Context, sessionID string) (*models.SessionStatus, error)
	SessionPreviewFunc    func(ctx context.Context, sessionID string) (*models.ImportPreview, error)
	ManualMatchFunc       func(ctx context.Context, sessionID string, itemIndex, tmdbID int) error
	CustomSearchFunc      func(ctx context.Context, sessionID string, itemIndex int, query string) error
	SkipItemFunc          func(ctx context.Context, sessionID string, itemIndex int) error
	ExecuteImportFunc     func(ctx context.Context, sessionID string) error
	CancelSessionFunc     func(ctx context.Context, sessionID string) error
	SessionsFunc          func(ctx context.Context) ([]models.SessionInfo, error)
	RenameOperationsFunc  func(ctx context.Context, sessionID string) ([]models.RenameOperation, error)
	CollectionFunc        func(ctx context.Context) ([]models.CollectionShow, error)
	CollectionShowFunc    func(ctx context.Context, id int) (*models.CollectionShow, error)
	RemoveCollectionFunc  func(ctx context.Context, id int, deleteFromDisk bool) error
	SetMonitoringFunc     func(ctx context.Context, id int, monitored bool) error
	LibrariesFunc         func(ctx context.Context) ([]models.Library, error)
	LibraryFunc           func(ctx context.Context, id int) (*models.Library, error)
	CreateLibraryFunc     func(ctx context.Context, name, mediaType string, enabled bool, sortOrder int, tags []string) (*models.Library, error)
	UpdateLibraryFunc     func(ctx context.Context, id int, fields map[string]any) (*models.Library, error)
	DeleteLibraryFunc     func(ctx context.Context, id int) error
	CreateFolderFunc      func(ctx context.Context, libraryID int, folder models.LibraryFolder) (*models.LibraryFolder, error)
	UpdateFolderFunc      func(ctx context.Context, libraryID, folderID int, folder models.LibraryFolder) (*models.LibraryFolder, error)
	DeleteFolderFunc      func(ctx context.Context, libraryID, folderID int) error
	FolderUsageFunc       func(ctx context.Context, libraryID int) ([]models.FolderUsage, error)
	SettingsFunc          func(ctx context.Context) (*models.Settings, error)
	UpdateSettingsFunc    func(ctx context.Context, updates map[string]any) (*models.Settings, error)
	SearchFunc            func(ctx context.Context, query, mediaType string) ([]models.CandidateMatch, error)
	BrowseFunc            func(ctx context.Context, path string) (*models.DirectoryListing, error)
	RootsFunc             func(ctx context.Context) ([]models.FilesystemRoot, error)
}

func (m *MockClient) Health(ctx context.Context) error {
	if m.HealthFunc != nil {
		return m.HealthFunc(ctx)
	}
	return nil
}

func (m *MockClient) LibraryPaths(ctx context.Context, mediaType string) ([]models.MediaDirectory, error) {
	if m.LibraryPathsFunc != nil {
		return m.LibraryPathsFunc(ctx, mediaType)
	}
	return nil, nil
}

func (m *MockClient) AddLibraryPath(ctx context.Context, mediaType string, dir models.MediaDirectory) (*models.MediaDirectory, error) {
	if m.AddLibraryPathFunc != nil {
		return m.AddLibraryPathFunc(ctx, mediaType, dir)
	}
	return &dir, nil
}

func (m *MockClient) UpdateLibraryPath(ctx context.Context, mediaType string, index int, dir models.MediaDirectory) (*models.MediaDirectory, error) {
	if m.UpdateLibraryPathFunc != nil {
		return m.UpdateLibraryPathFunc(ctx, mediaType, index, dir)
	}
	return &dir, nil
}

func (m *MockClient) DeleteLibraryPath(ctx context.Context, mediaType string, index int) error {
	if m.DeleteLibraryPathFunc != nil {
		return m.DeleteLibraryPathFunc(ctx, mediaType, index)
	}
	return nil
}

func (m *MockClient) StartSession(ctx context.Context, mediaType string, libraryPaths []string) (*models.SessionStatus, error) {
	if m.StartSessionFunc != nil {
		return m.StartSessionFunc(ctx, mediaType, libraryPaths)
	}
	return &models.SessionStatus{SessionID: "mock-session", Status: models.SessionScanning}, nil
}

func (m *MockClient) SessionStatus(ctx context.Context, sessionID string) (*models.SessionStatus, error) {
	if m.SessionStatusFunc != nil {
		return m.SessionStatusFunc(ctx, sessionID)
	}
	return &models.SessionStatus{SessionID: sessionID, Status: models.SessionPreview}, nil
}

func (m *MockClient) SessionPreview(ctx context.Context, sessionID string) (*models.ImportPreview, error) {
	if m.SessionPreviewFunc != nil {
		return m.SessionPreviewFunc(ctx, sessionID)
	}
	return &models.ImportPreview{}, nil
}

func (m *MockClient) ManualMatch(ctx context.Context, sessionID string, itemIndex, tmdbID int) error {
	if m.ManualMatchFunc != nil {
		return m.ManualMatchFunc(ctx, sessionID, itemIndex, tmdbID)
	}
	return nil
}

func (m *MockClient) CustomSearch(ctx context.Context, sessionID string, itemIndex int, query string) error {
	if m.CustomSearchFunc != nil {
		return m.CustomSearchFunc(ctx, sessionID, itemIndex, query)
	}
	return nil
}

func (m *MockClient) SkipItem(ctx context.Context, sessionID string, itemIndex int) error {
	if m.SkipItemFunc != nil {
		return m.SkipItemFunc(ctx, sessionID, itemIndex)
	}
	return nil
}

func (m *MockClient) ExecuteImport(ctx context.Context, sessionID string) error {
	if m.ExecuteImportFunc != nil {
		return m.ExecuteImportFunc(ctx, sessionID)
	}
	return nil
}

func (m *MockClient) CancelSession(ctx context.Context, sessionID string) error {
	if m.CancelSessionFunc != nil {
		return m.CancelSessionFunc(ctx, sessionID)
	}
	return nil
}

func (m *MockClient) Sessions(ctx context.Context) ([]models.SessionInfo, error) {
	if m.SessionsFunc != nil {
		return m.SessionsFunc(ctx)
	}
	return nil, nil
}

func (m *MockClient) RenameOperations(ctx context.Context, sessionID string) ([]models.RenameOperation, error) {
	if m.RenameOperationsFunc != nil {
		return m.RenameOperationsFunc(ctx, sessionID)
	}
	return nil, nil
}

func (m *MockClient) Collection(ctx context.Context) ([]models.CollectionShow, error) {
	if m.CollectionFunc != nil {
		return m.CollectionFunc(ctx)
	}
	return nil, nil
}

func (m *MockClient) CollectionShow(ctx context.Context, id int) (*models.CollectionShow, error) {
	if m.CollectionShowFunc != nil {
		return m.CollectionShowFunc(ctx, id)
	}
	return &models.CollectionShow{ID: id}, nil
}

func (m *MockClient) RemoveCollectionItem(ctx context.Context, id int, deleteFromDisk bool) error {
	if m.RemoveCollectionFunc != nil {
		return m.RemoveCollectionFunc(ctx, id, deleteFromDisk)
	}
	return nil
}

func (m *MockClient) SetMonitoring(ctx context.Context, id int, monitored bool) error {
	if m.SetMonitoringFunc != nil {
		return m.SetMonitoringFunc(ctx, id, monitored)
	}
	return nil
}

func (m *MockClient) Libraries(ctx context.Context) ([]models.Library, error) {
	if m.LibrariesFunc != nil {
		return m.LibrariesFunc(ctx)
	}
	return nil, nil
}

func (m *MockClient) Library(ctx context.Context, id int) (*models.Library, error) {
	if m.LibraryFunc != nil {
		return m.LibraryFunc(ctx, id)
	}
	return &models.Library{ID: id}, nil
}

func (m *MockClient) CreateLibrary(ctx context.Context, name, mediaType string, enabled bool, sortOrder int, tags []string) (*models.Library, error) {
	if m.CreateLibraryFunc != nil {
		return m.CreateLibraryFunc(ctx, name, mediaType, enabled, sortOrder, tags)
	}
	return &models.Library{ID: 1, Name: name, MediaType: mediaType, Enabled: enabled, SortOrder: sortOrder, Tags: tags}, nil
}

func (m *MockClient) UpdateLibrary(ctx context.Context, id int, fields map[string]any) (*models.Library, error) {
	if m.UpdateLibraryFunc != nil {
		return m.UpdateLibraryFunc(ctx, id, fields)
	}
	return &models.Library{ID: id}, nil
}

func (m *MockClient) DeleteLibrary(ctx context.Context, id int) error {
	if m.DeleteLibraryFunc != nil {
		return m.DeleteLibraryFunc(ctx, id)
	}
	return nil
}

func (m *MockClient) CreateFolder(ctx context.Context, libraryID int, folder models.LibraryFolder) (*models.LibraryFolder, error) {
	if m.CreateFolderFunc != nil {
		return m.CreateFolderFunc(ctx, libraryID, folder)
	}
	return &folder, nil
}

func (m *MockClient) UpdateFolder(ctx context.Context, libraryID, folderID int, folder models.LibraryFolder) (*models.LibraryFolder, error) {
	if m.UpdateFolderFunc != nil {
		return m.UpdateFolderFunc(ctx, libraryID, folderID, folder)
	}
	return &folder, nil
}

func (m *MockClient) DeleteFolder(ctx context.Context, libraryID, folderID int) error {
	if m.DeleteFolderFunc != nil {
		return m.DeleteFolderFunc(ctx, libraryID, folderID)
	}
	return nil
}

func (m *MockClient) FolderUsage(ctx context.Context, libraryID int) ([]models.FolderUsage, error) {
	if m.FolderUsageFunc != nil {
		return m.FolderUsageFunc(ctx, libraryID)
	}
	return nil, nil
}

func (m *MockClient) Settings(ctx context.Context) (*models.Settings, error) {
	if m.SettingsFunc != nil {
		return m.SettingsFunc(ctx)
	}
	return &models.Settings{AutoMatchThreshold: 0.8}, nil
}

func (m *MockClient) UpdateSettings(ctx context.Context, updates map[string]any) (*models.Settings, error) {
	if m.UpdateSettingsFunc != nil {
		return m.UpdateSettingsFunc(ctx, updates)
	}
	return &models.Settings{AutoMatchThreshold: 0.8}, nil
}

func (m *MockClient) Search(ctx context.Context, query, mediaType string) ([]models.CandidateMatch, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query, mediaType)
	}
	return nil, nil
}

func (m *MockClient) Browse(ctx context.Context, path string) (*models.DirectoryListing, error) {
	if m.BrowseFunc != nil {
		return m.BrowseFunc(ctx, path)
	}
	return &models.DirectoryListing{Path: path}, nil
}

func (m *MockClient) Roots(ctx context.Context) ([]models.FilesystemRoot, error) {
	if m.RootsFunc != nil {
		return m.RootsFunc(ctx)
	}
	return nil, nil
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FCloser simulates a failure when reading response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}

func MustGetwd(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	return wd
}

func MustChdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory to %s: %v", dir, err)
	}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
