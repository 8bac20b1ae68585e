package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/kylejschultz/caddyy-sub000/internal/models"
	"github.com/kylejschultz/caddyy-sub000/internal/shared"
)

// CaddyyService implements [Client] against a live Caddyy backend.
type CaddyyService struct {
	api *APIService
}

// NewCaddyyService creates a backend client for the given base URL.
func NewCaddyyService(baseURL string, client *http.Client) *CaddyyService {
	return &CaddyyService{api: NewAPIService(baseURL, client)}
}

// API exposes the raw request layer for passthrough commands.
func (c *CaddyyService) API() *APIService { return c.api }

// decode unwraps a response into out, translating transport and status
// failures into wrapped sentinel errors.
func decode(resp *APIResponse, err error, out any) error {
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	if !resp.OK() {
		if resp.StatusCode == http.StatusNotFound {
			return fmt.Errorf("%w: status %d, body: %s", shared.ErrItemNotFound, resp.StatusCode, string(resp.Body))
		}
		return fmt.Errorf("%w: status %d, body: %s", shared.ErrAPIRequest, resp.StatusCode, string(resp.Body))
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body, out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", shared.ErrAPIRequest, err)
	}
	return nil
}

func (c *CaddyyService) Health(ctx context.Context) error {
	resp, err := c.api.Get(ctx, "/api/health")
	return decode(resp, err, nil)
}

func mediaTypePath(mediaType string) string {
	if strings.EqualFold(mediaType, "movies") {
		return "movies"
	}
	return "tv"
}

func (c *CaddyyService) LibraryPaths(ctx context.Context, mediaType string) ([]models.MediaDirectory, error) {
	var dirs []models.MediaDirectory
	resp, err := c.api.Get(ctx, fmt.Sprintf("/api/config/%s/library-paths", mediaTypePath(mediaType)))
	if err := decode(resp, err, &dirs); err != nil {
		return nil, err
	}
	return dirs, nil
}

func (c *CaddyyService) AddLibraryPath(ctx context.Context, mediaType string, dir models.MediaDirectory) (*models.MediaDirectory, error) {
	body, err := json.Marshal(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to encode library path: %w", err)
	}
	var created models.MediaDirectory
	resp, reqErr := c.api.Post(ctx, fmt.Sprintf("/api/config/%s/library-paths", mediaTypePath(mediaType)), body)
	if err := decode(resp, reqErr, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *CaddyyService) UpdateLibraryPath(ctx context.Context, mediaType string, index int, dir models.MediaDirectory) (*models.MediaDirectory, error) {
	body, err := json.Marshal(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to encode library path: %w", err)
	}
	var updated models.MediaDirectory
	resp, reqErr := c.api.Put(ctx, fmt.Sprintf("/api/config/%s/library-paths/%d", mediaTypePath(mediaType), index), body)
	if err := decode(resp, reqErr, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *CaddyyService) DeleteLibraryPath(ctx context.Context, mediaType string, index int) error {
	resp, err := c.api.Delete(ctx, fmt.Sprintf("/api/config/%s/library-paths/%d", mediaTypePath(mediaType), index))
	return decode(resp, err, nil)
}

func (c *CaddyyService) StartSession(ctx context.Context, mediaType string, libraryPaths []string) (*models.SessionStatus, error) {
	if len(libraryPaths) == 0 {
		return nil, shared.ErrNoLibraryPaths
	}
	body, err := json.Marshal(map[string]any{
		"media_type":    mediaType,
		"library_paths": libraryPaths,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode session request: %w", err)
	}
	var status models.SessionStatus
	resp, reqErr := c.api.Post(ctx, "/api/import/start-session", body)
	if err := decode(resp, reqErr, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (c *CaddyyService) SessionStatus(ctx context.Context, sessionID string) (*models.SessionStatus, error) {
	var status models.SessionStatus
	resp, err := c.api.Get(ctx, fmt.Sprintf("/api/import/session/%s/status", sessionID))
	if err := decode(resp, err, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// previewEnvelope matches the backend preview response shape.
type previewEnvelope struct {
	SessionID string               `json:"session_id"`
	Preview   models.ImportPreview `json:"preview"`
	Status    models.SessionState  `json:"status"`
}

func (c *CaddyyService) SessionPreview(ctx context.Context, sessionID string) (*models.ImportPreview, error) {
	var envelope previewEnvelope
	resp, err := c.api.Get(ctx, fmt.Sprintf("/api/import/session/%s/preview", sessionID))
	if err := decode(resp, err, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Preview, nil
}

func (c *CaddyyService) manualMatch(ctx context.Context, sessionID string, payload map[string]any) error {
	payload["session_id"] = sessionID
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode manual match request: %w", err)
	}
	resp, reqErr := c.api.Post(ctx, fmt.Sprintf("/api/import/session/%s/manual-match", sessionID), body)
	return decode(resp, reqErr, nil)
}

func (c *CaddyyService) ManualMatch(ctx context.Context, sessionID string, itemIndex int, tmdbID int) error {
	return c.manualMatch(ctx, sessionID, map[string]any{
		"item_index":       itemIndex,
		"selected_tmdb_id": tmdbID,
	})
}

func (c *CaddyyService) CustomSearch(ctx context.Context, sessionID string, itemIndex int, query string) error {
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("%w: search query is empty", shared.ErrInvalidInput)
	}
	return c.manualMatch(ctx, sessionID, map[string]any{
		"item_index":    itemIndex,
		"custom_search": query,
	})
}

func (c *CaddyyService) SkipItem(ctx context.Context, sessionID string, itemIndex int) error {
	return c.manualMatch(ctx, sessionID, map[string]any{
		"item_index": itemIndex,
	})
}

func (c *CaddyyService) ExecuteImport(ctx context.Context, sessionID string) error {
	resp, err := c.api.Post(ctx, fmt.Sprintf("/api/import/session/%s/execute", sessionID), []byte("{}"))
	return decode(resp, err, nil)
}

func (c *CaddyyService) CancelSession(ctx context.Context, sessionID string) error {
	resp, err := c.api.Delete(ctx, fmt.Sprintf("/api/import/session/%s", sessionID))
	return decode(resp, err, nil)
}

func (c *CaddyyService) Sessions(ctx context.Context) ([]models.SessionInfo, error) {
	var envelope struct {
		Sessions []models.SessionInfo `json:"sessions"`
	}
	resp, err := c.api.Get(ctx, "/api/import/sessions")
	if err := decode(resp, err, &envelope); err != nil {
		return nil, err
	}
	return envelope.Sessions, nil
}

func (c *CaddyyService) RenameOperations(ctx context.Context, sessionID string) ([]models.RenameOperation, error) {
	var envelope struct {
		Operations []models.RenameOperation `json:"operations"`
	}
	resp, err := c.api.Get(ctx, fmt.Sprintf("/api/import/session/%s/rename-operations", sessionID))
	if err := decode(resp, err, &envelope); err != nil {
		return nil, err
	}
	return envelope.Operations, nil
}

func (c *CaddyyService) Collection(ctx context.Context) ([]models.CollectionShow, error) {
	var shows []models.CollectionShow
	resp, err := c.api.Get(ctx, "/api/collection/tv")
	if err := decode(resp, err, &shows); err != nil {
		return nil, err
	}
	return shows, nil
}

func (c *CaddyyService) CollectionShow(ctx context.Context, id int) (*models.CollectionShow, error) {
	var show models.CollectionShow
	resp, err := c.api.Get(ctx, fmt.Sprintf("/api/collection/tv/%d", id))
	if err := decode(resp, err, &show); err != nil {
		return nil, err
	}
	return &show, nil
}

func (c *CaddyyService) RemoveCollectionItem(ctx context.Context, id int, deleteFromDisk bool) error {
	resp, err := c.api.Delete(ctx, fmt.Sprintf("/api/collection/tv/%d?delete_from_disk=%t", id, deleteFromDisk))
	return decode(resp, err, nil)
}

func (c *CaddyyService) SetMonitoring(ctx context.Context, id int, monitored bool) error {
	body, err := json.Marshal(map[string]any{"monitored": monitored})
	if err != nil {
		return fmt.Errorf("failed to encode monitoring request: %w", err)
	}
	resp, reqErr := c.api.Patch(ctx, fmt.Sprintf("/api/collection/tv/%d/monitoring", id), body)
	return decode(resp, reqErr, nil)
}

func (c *CaddyyService) Libraries(ctx context.Context) ([]models.Library, error) {
	var libs []models.Library
	resp, err := c.api.Get(ctx, "/api/libraries")
	if err := decode(resp, err, &libs); err != nil {
		return nil, err
	}
	return libs, nil
}

func (c *CaddyyService) Library(ctx context.Context, id int) (*models.Library, error) {
	var lib models.Library
	resp, err := c.api.Get(ctx, fmt.Sprintf("/api/libraries/%d", id))
	if err := decode(resp, err, &lib); err != nil {
		return nil, err
	}
	return &lib, nil
}

func (c *CaddyyService) CreateLibrary(ctx context.Context, name, mediaType string, enabled bool, sortOrder int, tags []string) (*models.Library, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: library name is empty", shared.ErrInvalidInput)
	}
	if tags == nil {
		tags = []string{}
	}
	body, err := json.Marshal(map[string]any{
		"name":       name,
		"media_type": mediaType,
		"enabled":    enabled,
		"sort_order": sortOrder,
		"tags":       tags,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode library: %w", err)
	}
	var lib models.Library
	resp, reqErr := c.api.Post(ctx, "/api/libraries", body)
	if err := decode(resp, reqErr, &lib); err != nil {
		return nil, err
	}
	return &lib, nil
}

func (c *CaddyyService) UpdateLibrary(ctx context.Context, id int, fields map[string]any) (*models.Library, error) {
	body, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to encode library update: %w", err)
	}
	var lib models.Library
	resp, reqErr := c.api.Put(ctx, fmt.Sprintf("/api/libraries/%d", id), body)
	if err := decode(resp, reqErr, &lib); err != nil {
		return nil, err
	}
	return &lib, nil
}

func (c *CaddyyService) DeleteLibrary(ctx context.Context, id int) error {
	resp, err := c.api.Delete(ctx, fmt.Sprintf("/api/libraries/%d", id))
	return decode(resp, err, nil)
}

func (c *CaddyyService) CreateFolder(ctx context.Context, libraryID int, folder models.LibraryFolder) (*models.LibraryFolder, error) {
	if strings.TrimSpace(folder.Path) == "" {
		return nil, fmt.Errorf("%w: folder path is empty", shared.ErrInvalidInput)
	}
	body, err := json.Marshal(map[string]any{
		"name":     folder.Name,
		"path":     folder.Path,
		"enabled":  folder.Enabled,
		"priority": folder.Priority,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode folder: %w", err)
	}
	var created models.LibraryFolder
	resp, reqErr := c.api.Post(ctx, fmt.Sprintf("/api/libraries/%d/folders", libraryID), body)
	if err := decode(resp, reqErr, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *CaddyyService) UpdateFolder(ctx context.Context, libraryID, folderID int, folder models.LibraryFolder) (*models.LibraryFolder, error) {
	body, err := json.Marshal(map[string]any{
		"name":     folder.Name,
		"path":     folder.Path,
		"enabled":  folder.Enabled,
		"priority": folder.Priority,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode folder update: %w", err)
	}
	var updated models.LibraryFolder
	resp, reqErr := c.api.Put(ctx, fmt.Sprintf("/api/libraries/%d/folders/%d", libraryID, folderID), body)
	if err := decode(resp, reqErr, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *CaddyyService) DeleteFolder(ctx context.Context, libraryID, folderID int) error {
	resp, err := c.api.Delete(ctx, fmt.Sprintf("/api/libraries/%d/folders/%d", libraryID, folderID))
	return decode(resp, err, nil)
}

func (c *CaddyyService) FolderUsage(ctx context.Context, libraryID int) ([]models.FolderUsage, error) {
	var usage []models.FolderUsage
	resp, err := c.api.Get(ctx, fmt.Sprintf("/api/libraries/%d/folders/usage", libraryID))
	if err := decode(resp, err, &usage); err != nil {
		return nil, err
	}
	return usage, nil
}

func (c *CaddyyService) Settings(ctx context.Context) (*models.Settings, error) {
	var settings models.Settings
	resp, err := c.api.Get(ctx, "/api/settings/")
	if err := decode(resp, err, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

func (c *CaddyyService) UpdateSettings(ctx context.Context, updates map[string]any) (*models.Settings, error) {
	body, err := json.Marshal(updates)
	if err != nil {
		return nil, fmt.Errorf("failed to encode settings update: %w", err)
	}
	var settings models.Settings
	resp, reqErr := c.api.Put(ctx, "/api/settings/", body)
	if err := decode(resp, reqErr, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

func (c *CaddyyService) Search(ctx context.Context, query, mediaType string) ([]models.CandidateMatch, error) {
	if strings.TrimSpace(query) == "" {
		return []models.CandidateMatch{}, nil
	}
	path := "/api/search/"
	switch strings.ToLower(mediaType) {
	case "movies", "movie":
		path = "/api/search/movies"
	case "tv":
		path = "/api/search/tv"
	}
	var results []models.CandidateMatch
	resp, err := c.api.Get(ctx, path+"?q="+url.QueryEscape(query))
	if err := decode(resp, err, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (c *CaddyyService) Browse(ctx context.Context, path string) (*models.DirectoryListing, error) {
	if path == "" {
		path = "/"
	}
	var listing models.DirectoryListing
	resp, err := c.api.Get(ctx, "/api/filesystem/browse?path="+url.QueryEscape(path))
	if err := decode(resp, err, &listing); err != nil {
		return nil, err
	}
	return &listing, nil
}

func (c *CaddyyService) Roots(ctx context.Context) ([]models.FilesystemRoot, error) {
	var payload struct {
		Roots []models.FilesystemRoot `json:"roots"`
	}
	resp, err := c.api.Get(ctx, "/api/filesystem/roots")
	if err := decode(resp, err, &payload); err != nil {
		return nil, err
	}
	return payload.Roots, nil
}
