package models

// MatchStatus labels where an [ImportMatch] sits in the reconciliation flow.
type MatchStatus string

const (
	StatusPending             MatchStatus = "pending"
	StatusMatched             MatchStatus = "matched"
	StatusManual              MatchStatus = "manual"
	StatusSkipped             MatchStatus = "skipped"
	StatusAlreadyInCollection MatchStatus = "already_in_collection"
)

// Canonical maps the loose status labels the backend emits onto the canonical
// enum. "needs_review" collapses to manual; "duplicate" and "existing" are
// treated as already-in-collection; anything unknown is pending.
func (s MatchStatus) Canonical() MatchStatus {
	switch s {
	case StatusPending, StatusMatched, StatusManual, StatusSkipped, StatusAlreadyInCollection:
		return s
	case "needs_review":
		return StatusManual
	case "duplicate", "existing":
		return StatusAlreadyInCollection
	default:
		return StatusPending
	}
}

// Selectable reports whether an item with this status may enter the
// selection set at all. The raw wire label is checked, not the canonical
// form, so the backend's duplicate/existing variants stay excluded.
func (s MatchStatus) Selectable() bool {
	switch s {
	case StatusAlreadyInCollection, StatusSkipped, "duplicate", "existing":
		return false
	default:
		return true
	}
}

// ScannedSeason summarizes one season folder inside a scanned show directory.
type ScannedSeason struct {
	SeasonNumber int    `json:"season_number"`
	EpisodeCount int    `json:"episode_count"`
	FolderPath   string `json:"folder_path,omitempty"`
}

// ScannedShow is a directory discovered during a filesystem scan. Created by
// the backend; immutable from the client's perspective.
type ScannedShow struct {
	ShowName      string          `json:"show_name"`
	ShowYear      *int            `json:"show_year,omitempty"`
	FolderPath    string          `json:"folder_path"`
	TotalEpisodes int             `json:"total_episodes"`
	Seasons       []ScannedSeason `json:"seasons"`
}

// CandidateMatch is a TMDB search hit associated with a scanned item.
type CandidateMatch struct {
	ID        int     `json:"id"`
	Title     string  `json:"title"`
	Year      *int    `json:"year,omitempty"`
	PosterURL string  `json:"poster_url,omitempty"`
	Overview  string  `json:"overview,omitempty"`
	Rating    float64 `json:"rating,omitempty"`
	MediaType string  `json:"media_type,omitempty"`
}

// ImportMatch pairs one scanned item with its candidate matches.
type ImportMatch struct {
	ScannedItem     ScannedShow      `json:"scanned_item"`
	TMDBMatches     []CandidateMatch `json:"tmdb_matches"`
	SelectedMatch   *CandidateMatch  `json:"selected_match,omitempty"`
	ConfidenceScore float64          `json:"confidence_score"`
	MatchStatus     MatchStatus      `json:"match_status"`
}

// PreviewSummary aggregates match counts for an import preview.
type PreviewSummary struct {
	TotalScanned        int `json:"total_scanned"`
	TotalMatched        int `json:"total_matched"`
	TotalManual         int `json:"total_manual"`
	TotalSkipped        int `json:"total_skipped"`
	AlreadyInCollection int `json:"already_in_collection"`
}

// ImportPreview is the authoritative reconciliation payload for a session.
type ImportPreview struct {
	Matches []ImportMatch  `json:"matches"`
	Summary PreviewSummary `json:"summary"`
}

// SessionState enumerates the import session lifecycle.
type SessionState string

const (
	SessionScanning  SessionState = "scanning"
	SessionMatching  SessionState = "matching"
	SessionPreview   SessionState = "preview"
	SessionImporting SessionState = "importing"
	SessionComplete  SessionState = "complete"
	SessionError     SessionState = "error"
)

// Terminal reports whether the session has finished, successfully or not.
func (s SessionState) Terminal() bool {
	return s == SessionComplete || s == SessionError
}

// SessionStatus is the poll payload for an import session. Owned by the
// backend; the client holds only the session id.
type SessionStatus struct {
	SessionID    string       `json:"session_id"`
	Status       SessionState `json:"status"`
	Progress     float64      `json:"progress"`
	Message      string       `json:"message"`
	ScannedCount int          `json:"scanned_count"`
	MatchedCount int          `json:"matched_count"`
	ErrorMessage string       `json:"error_message,omitempty"`
}

// SessionInfo is a row from the session listing endpoint.
type SessionInfo struct {
	SessionID string       `json:"session_id"`
	MediaType string       `json:"media_type"`
	Status    SessionState `json:"status"`
	Progress  float64      `json:"progress"`
	CreatedAt string       `json:"created_at"`
}

// MediaDirectory is a configured library path for a media type.
type MediaDirectory struct {
	Name    string `json:"name"`
	Path    string `json:"path"`
	Enabled bool   `json:"enabled"`
}

// LibraryFolder is one ordered disk inside a [Library]. Priority 0 marks the
// primary location for new items.
type LibraryFolder struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Path     string `json:"path"`
	Enabled  bool   `json:"enabled"`
	Priority int    `json:"priority"`
}

// Library is a named container of ordered folders.
type Library struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	MediaType string          `json:"media_type"`
	Enabled   bool            `json:"enabled"`
	SortOrder int             `json:"sort_order"`
	Tags      []string        `json:"tags"`
	Folders   []LibraryFolder `json:"folders"`
}

// PrimaryFolder returns the enabled folder with the lowest priority, or nil
// when the library has no enabled folders.
func (l Library) PrimaryFolder() *LibraryFolder {
	var primary *LibraryFolder
	for i := range l.Folders {
		f := &l.Folders[i]
		if !f.Enabled {
			continue
		}
		if primary == nil || f.Priority < primary.Priority {
			primary = f
		}
	}
	return primary
}

// FolderUsage reports disk usage for one library folder.
type FolderUsage struct {
	FolderID   int   `json:"folder_id"`
	FreeBytes  int64 `json:"free_bytes"`
	TotalBytes int64 `json:"total_bytes"`
}

// CollectionShow is a TV show record from the collection endpoints.
type CollectionShow struct {
	ID         int     `json:"id"`
	TMDBID     int     `json:"tmdb_id"`
	Title      string  `json:"title"`
	Overview   string  `json:"overview,omitempty"`
	PosterURL  string  `json:"poster_url,omitempty"`
	Rating     float64 `json:"rating,omitempty"`
	Year       *int    `json:"year,omitempty"`
	Monitored  bool    `json:"monitored"`
	FolderPath string  `json:"folder_path,omitempty"`
	TotalSize  int64   `json:"total_size,omitempty"`
}

// Settings holds global application settings served by the backend.
type Settings struct {
	AppName            string  `json:"app_name,omitempty"`
	AppDescription     string  `json:"app_description,omitempty"`
	DebugMode          bool    `json:"debug_mode,omitempty"`
	AutoMatchThreshold float64 `json:"auto_match_threshold"`
}

// DirectoryEntry is one row from the filesystem browse endpoint.
type DirectoryEntry struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	IsDirectory bool   `json:"is_directory"`
}

// DirectoryListing is the filesystem browse payload.
type DirectoryListing struct {
	Path    string           `json:"path"`
	Parent  string           `json:"parent,omitempty"`
	Entries []DirectoryEntry `json:"entries"`
}

// FilesystemRoot is a suggested starting point for the path picker, such as
// the filesystem root, the home directory or a mounted volume.
type FilesystemRoot struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// RenameOperation is a suggested file reorganization for a scanned item.
type RenameOperation struct {
	CurrentPath       string `json:"current_path"`
	SuggestedPath     string `json:"suggested_path"`
	CurrentName       string `json:"current_name"`
	SuggestedName     string `json:"suggested_name"`
	OperationType     string `json:"operation_type"`
	ShowName          string `json:"show_name,omitempty"`
	SeasonNumber      *int   `json:"season_number,omitempty"`
	EpisodeNumber     *int   `json:"episode_number,omitempty"`
	NeedsConfirmation bool   `json:"needs_confirmation"`
}

// MonitorOption is the per-item monitoring preference carried into execute.
type MonitorOption string

const (
	MonitorNone   MonitorOption = "none"
	MonitorAll    MonitorOption = "all"
	MonitorFuture MonitorOption = "future"
)
