package tasks

import (
	"context"

	"github.com/kylejschultz/caddyy-sub000/internal/models"
	"github.com/kylejschultz/caddyy-sub000/internal/shared"
)

// ImportSummary is the point-in-time snapshot taken when execute is invoked.
// It reflects the selection at commit time, not what the backend ultimately
// persisted.
type ImportSummary struct {
	ImportedCount int                             `json:"imported_count"`
	TotalSelected int                             `json:"total_selected"`
	ImportedShows []string                        `json:"imported_shows"`
	Monitoring    map[string]models.MonitorOption `json:"monitoring,omitempty"`
}

// Summarize computes the commit summary from the current selection:
// TotalSelected is the selection-set size, ImportedCount counts selected items
// not already in the collection, and ImportedShows lists their names keyed to
// the chosen monitoring preference. ImportedCount never exceeds TotalSelected.
func (r *Reconciler) Summarize() ImportSummary {
	summary := ImportSummary{
		TotalSelected: len(r.selected),
		Monitoring:    make(map[string]models.MonitorOption),
	}
	for _, i := range r.Selected() {
		m := r.matches[i]
		if m.MatchStatus == models.StatusAlreadyInCollection {
			continue
		}
		summary.ImportedCount++
		summary.ImportedShows = append(summary.ImportedShows, m.ScannedItem.ShowName)
		summary.Monitoring[m.ScannedItem.ShowName] = r.Monitor(i)
	}
	return summary
}

// Execute triggers the server-side import. Allowed only while the session is
// in preview with a non-empty selection; the returned summary is the snapshot
// taken at the moment of the call. The caller resumes Watch to follow the
// importing -> complete transition.
func (c *SessionController) Execute(ctx context.Context, rec *Reconciler) (*ImportSummary, error) {
	status := c.Status()
	if status == nil || status.Status != models.SessionPreview {
		return nil, shared.ErrSessionNotReady
	}
	if rec.SelectedCount() == 0 {
		return nil, shared.ErrNothingSelected
	}

	summary := rec.Summarize()

	c.mu.Lock()
	id := c.sessionID
	c.mu.Unlock()
	if err := c.client.ExecuteImport(ctx, id); err != nil {
		return nil, err
	}

	c.logger.Info("import execution started",
		"session_id", id,
		"selected", summary.TotalSelected,
		"to_import", summary.ImportedCount)
	return &summary, nil
}
