package tasks

import (
	"sort"
	"strings"

	"github.com/kylejschultz/caddyy-sub000/internal/models"
)

// DefaultAutoMatchThreshold is used when global settings are unavailable.
const DefaultAutoMatchThreshold = 0.8

// FilterMode selects which matches a view shows. Modes are mutually exclusive.
type FilterMode string

const (
	FilterAll                 FilterMode = "all"
	FilterMatched             FilterMode = "matched"
	FilterNeedsReview         FilterMode = "needs_review"
	FilterAlreadyInCollection FilterMode = "already_in_collection"
	FilterReadyForImport      FilterMode = "ready_for_import"
)

// SortKey orders a view.
type SortKey string

const (
	SortName       SortKey = "name"
	SortConfidence SortKey = "confidence"
	SortStatus     SortKey = "status"
	SortEpisodes   SortKey = "episodes"
)

// IndexedMatch tags a match with its original preview index so selection-set
// membership stays valid after filtering and sorting.
type IndexedMatch struct {
	Index int
	Match models.ImportMatch
}

// Reconciler is the client-side projection of one import preview: the match
// list, the selection set keyed by original index, and per-item monitoring
// preferences. Filtering and sorting never mutate the underlying match slice.
//
// The auto-match threshold is an explicit argument captured when the first
// preview is applied; later settings changes affect only the next session.
type Reconciler struct {
	matches   []models.ImportMatch
	selected  map[int]bool
	monitor   map[int]models.MonitorOption
	threshold float64
	loaded    bool
}

// NewReconciler creates an empty reconciler.
func NewReconciler() *Reconciler {
	return &Reconciler{
		selected: make(map[int]bool),
		monitor:  make(map[int]models.MonitorOption),
	}
}

// Matches returns the current match list. Callers must not mutate it.
func (r *Reconciler) Matches() []models.ImportMatch { return r.matches }

// Threshold returns the captured auto-match threshold.
func (r *Reconciler) Threshold() float64 { return r.threshold }

// ApplyPreview is the single reducer through which remote truth enters the
// reconciler, invoked for the initial preview, optimistic refetches, and
// poll-driven refreshes alike. The first application seeds the selection set
// and monitoring defaults; later applications keep the user's selections,
// pruning indices that fell out of range or became ineligible.
func (r *Reconciler) ApplyPreview(preview *models.ImportPreview, threshold float64) {
	if preview == nil {
		return
	}
	first := !r.loaded
	r.matches = preview.Matches

	if first {
		r.threshold = threshold
		r.loaded = true
		for i := range r.matches {
			r.monitor[i] = models.MonitorNone
		}
		r.AutoSelect()
		return
	}

	for i := range r.matches {
		if _, ok := r.monitor[i]; !ok {
			r.monitor[i] = models.MonitorNone
		}
	}
	for i := range r.selected {
		if i < 0 || i >= len(r.matches) || !r.matches[i].MatchStatus.Selectable() {
			delete(r.selected, i)
		}
	}
}

// AutoSelect rebuilds the selection set from the auto-selection rule: an item
// is selected iff its status is selectable and either its confidence meets the
// threshold or a match is already committed.
func (r *Reconciler) AutoSelect() {
	r.selected = make(map[int]bool)
	for i, m := range r.matches {
		if !m.MatchStatus.Selectable() {
			continue
		}
		if m.ConfidenceScore >= r.threshold || m.SelectedMatch != nil {
			r.selected[i] = true
		}
	}
}

// Eligible reports whether index i may be toggled: the item must have a
// committed match or status matched, and must not already be in the collection.
func (r *Reconciler) Eligible(i int) bool {
	if i < 0 || i >= len(r.matches) {
		return false
	}
	m := r.matches[i]
	if !m.MatchStatus.Selectable() {
		return false
	}
	return m.SelectedMatch != nil || m.MatchStatus == models.StatusMatched
}

// Toggle flips selection membership for an eligible index. Returns true when
// the set changed; toggling an ineligible index is a no-op.
func (r *Reconciler) Toggle(i int) bool {
	if !r.Eligible(i) {
		return false
	}
	if r.selected[i] {
		delete(r.selected, i)
	} else {
		r.selected[i] = true
	}
	return true
}

// Select adds an eligible index to the selection set, leaving other
// selections untouched. Used after a successful manual match.
func (r *Reconciler) Select(i int) bool {
	if !r.Eligible(i) {
		return false
	}
	r.selected[i] = true
	return true
}

// IsSelected reports selection membership by original index.
func (r *Reconciler) IsSelected(i int) bool { return r.selected[i] }

// Selected returns the selection set as sorted original indices.
func (r *Reconciler) Selected() []int {
	out := make([]int, 0, len(r.selected))
	for i := range r.selected {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// SelectedCount returns the selection-set size.
func (r *Reconciler) SelectedCount() int { return len(r.selected) }

// SetMonitor records the per-item monitoring preference.
func (r *Reconciler) SetMonitor(i int, opt models.MonitorOption) {
	if i < 0 || i >= len(r.matches) {
		return
	}
	r.monitor[i] = opt
}

// Monitor returns the monitoring preference for an item, defaulting to none.
func (r *Reconciler) Monitor(i int) models.MonitorOption {
	if opt, ok := r.monitor[i]; ok {
		return opt
	}
	return models.MonitorNone
}

// MarkManual optimistically applies a manual match locally: the candidate
// becomes the committed match, status flips to manual, and the item joins the
// selection set. The authoritative preview refetch flows through ApplyPreview.
func (r *Reconciler) MarkManual(i int, candidate models.CandidateMatch) bool {
	if i < 0 || i >= len(r.matches) {
		return false
	}
	c := candidate
	r.matches[i].SelectedMatch = &c
	r.matches[i].MatchStatus = models.StatusManual
	r.selected[i] = true
	return true
}

// ApplyRemoval patches the in-memory preview after a collection item is
// removed: any match committed to the removed id flips back to matched (the
// committed match is kept) or pending, and leaves the selection set. The
// reducer is idempotent; a second application with the same id is a no-op.
func (r *Reconciler) ApplyRemoval(removedTMDBID int) {
	for i := range r.matches {
		m := &r.matches[i]
		if m.SelectedMatch == nil || m.SelectedMatch.ID != removedTMDBID {
			continue
		}
		m.MatchStatus = models.StatusMatched
		delete(r.selected, i)
	}
}

// matchesFilter implements the mutually exclusive filter predicate.
func (r *Reconciler) matchesFilter(i int, mode FilterMode) bool {
	m := r.matches[i]
	status := m.MatchStatus.Canonical()
	switch mode {
	case FilterMatched:
		return m.MatchStatus == models.StatusMatched
	case FilterNeedsReview:
		if status == models.StatusManual || m.MatchStatus == models.StatusPending {
			return true
		}
		return m.SelectedMatch == nil &&
			m.MatchStatus != models.StatusMatched &&
			m.MatchStatus != models.StatusAlreadyInCollection
	case FilterAlreadyInCollection:
		return m.MatchStatus == models.StatusAlreadyInCollection
	case FilterReadyForImport:
		return r.selected[i]
	default:
		return true
	}
}

// statusRank gives the fixed priority order for status sorting.
func statusRank(s models.MatchStatus) int {
	switch s {
	case models.StatusMatched:
		return 0
	case models.StatusManual:
		return 1
	case models.StatusAlreadyInCollection:
		return 2
	case models.StatusSkipped:
		return 3
	default:
		return 4
	}
}

// View returns the filtered, sorted projection of the preview as index-tagged
// copies. Filter and sort commute: for a fixed input the displayed index set
// is the same regardless of application order.
func (r *Reconciler) View(mode FilterMode, key SortKey) []IndexedMatch {
	view := make([]IndexedMatch, 0, len(r.matches))
	for i := range r.matches {
		if r.matchesFilter(i, mode) {
			view = append(view, IndexedMatch{Index: i, Match: r.matches[i]})
		}
	}

	switch key {
	case SortName:
		sort.SliceStable(view, func(a, b int) bool {
			return strings.ToLower(view[a].Match.ScannedItem.ShowName) < strings.ToLower(view[b].Match.ScannedItem.ShowName)
		})
	case SortConfidence:
		sort.SliceStable(view, func(a, b int) bool {
			return view[a].Match.ConfidenceScore > view[b].Match.ConfidenceScore
		})
	case SortStatus:
		sort.SliceStable(view, func(a, b int) bool {
			return statusRank(view[a].Match.MatchStatus) < statusRank(view[b].Match.MatchStatus)
		})
	case SortEpisodes:
		sort.SliceStable(view, func(a, b int) bool {
			return view[a].Match.ScannedItem.TotalEpisodes > view[b].Match.ScannedItem.TotalEpisodes
		})
	}

	return view
}
