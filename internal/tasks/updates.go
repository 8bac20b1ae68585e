package tasks

import (
	"fmt"

	"github.com/kylejschultz/caddyy-sub000/internal/models"
)

// ProgressUpdate represents a progress event during a long-running operation.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase   // Operation phase
	Step    int     // Current step number within phase
	Total   int     // Total steps in this phase
	Percent float64 // Fractional progress reported by the backend (0..1)
	Message string  // Human-readable message for display
	Data    any     // Optional phase-specific data for advanced UIs
}

// Operation phase enumeration
type Phase int

const (
	StartSession Phase = iota
	Scanning
	Matching
	PreviewReady
	Importing
	Complete
	SyncFolders
	ExportData
)

func (p Phase) String() string {
	switch p {
	case StartSession:
		return "start_session"
	case Scanning:
		return "scanning"
	case Matching:
		return "matching"
	case PreviewReady:
		return "preview"
	case Importing:
		return "importing"
	case Complete:
		return "complete"
	case SyncFolders:
		return "sync_folders"
	case ExportData:
		return "export_data"
	default:
		return ""
	}
}

// statusPhase maps a backend session state onto a progress phase.
func statusPhase(s models.SessionState) Phase {
	switch s {
	case models.SessionScanning:
		return Scanning
	case models.SessionMatching:
		return Matching
	case models.SessionPreview:
		return PreviewReady
	case models.SessionImporting:
		return Importing
	default:
		return Complete
	}
}

func statusUpdate(st *models.SessionStatus) ProgressUpdate {
	return ProgressUpdate{
		Phase:   statusPhase(st.Status),
		Percent: st.Progress,
		Message: st.Message,
		Data:    st,
	}
}

func previewUpdate(p *models.ImportPreview) ProgressUpdate {
	return ProgressUpdate{
		Phase:   PreviewReady,
		Percent: 1.0,
		Message: fmt.Sprintf("Preview ready: %d scanned, %d matched", p.Summary.TotalScanned, p.Summary.TotalMatched),
		Data:    p,
	}
}

func syncFolderUpdate(step, total int, op FolderOpResult) ProgressUpdate {
	return ProgressUpdate{
		Phase:   SyncFolders,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] %s folder %s", step, total, op.Kind, op.Path),
		Data:    op,
	}
}

func exportUpdate(step, total int, endpoint string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ExportData,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] Fetching %s...", step, total, endpoint),
	}
}
