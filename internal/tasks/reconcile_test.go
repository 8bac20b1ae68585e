package tasks

import (
	"testing"

	"github.com/kylejschultz/caddyy-sub000/internal/models"
)

func candidate(id int, title string) *models.CandidateMatch {
	return &models.CandidateMatch{ID: id, Title: title}
}

func match(name string, confidence float64, status models.MatchStatus, selected *models.CandidateMatch, episodes int) models.ImportMatch {
	return models.ImportMatch{
		ScannedItem:     models.ScannedShow{ShowName: name, TotalEpisodes: episodes},
		SelectedMatch:   selected,
		ConfidenceScore: confidence,
		MatchStatus:     status,
	}
}

func previewOf(matches ...models.ImportMatch) *models.ImportPreview {
	return &models.ImportPreview{Matches: matches}
}

func TestReconciler_AutoSelect(t *testing.T) {
	tests := []struct {
		name       string
		match      models.ImportMatch
		wantChosen bool
	}{
		{"high confidence matched", match("a", 0.95, models.StatusMatched, nil, 10), true},
		{"at threshold", match("b", 0.8, models.StatusPending, nil, 5), true},
		{"below threshold no match", match("c", 0.6, models.StatusPending, nil, 5), false},
		{"below threshold with committed match", match("d", 0.3, models.StatusManual, candidate(7, "D"), 5), true},
		{"already in collection high confidence", match("e", 0.99, models.StatusAlreadyInCollection, candidate(8, "E"), 5), false},
		{"skipped high confidence", match("f", 0.99, models.StatusSkipped, nil, 5), false},
		{"wire duplicate status", match("g", 0.99, "duplicate", nil, 5), false},
		{"wire existing status", match("h", 0.99, "existing", nil, 5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := NewReconciler()
			rec.ApplyPreview(previewOf(tt.match), 0.8)
			if got := rec.IsSelected(0); got != tt.wantChosen {
				t.Errorf("IsSelected(0) = %v, want %v", got, tt.wantChosen)
			}
		})
	}
}

func TestReconciler_Toggle(t *testing.T) {
	rec := NewReconciler()
	rec.ApplyPreview(previewOf(
		match("matched", 0.9, models.StatusMatched, candidate(1, "A"), 10),
		match("pending no match", 0.5, models.StatusPending, nil, 3),
		match("already", 0.95, models.StatusAlreadyInCollection, candidate(2, "C"), 8),
	), 0.8)

	t.Run("eligible item toggles off and back on", func(t *testing.T) {
		if !rec.IsSelected(0) {
			t.Fatal("expected index 0 auto-selected")
		}
		if !rec.Toggle(0) {
			t.Error("expected toggle to succeed")
		}
		if rec.IsSelected(0) {
			t.Error("expected index 0 deselected after toggle")
		}
		if !rec.Toggle(0) {
			t.Error("expected second toggle to succeed")
		}
		if !rec.IsSelected(0) {
			t.Error("expected double toggle to restore the original set")
		}
	})

	t.Run("item without committed match is a no-op", func(t *testing.T) {
		if rec.Toggle(1) {
			t.Error("expected toggle of unmatched pending item to be a no-op")
		}
		if rec.IsSelected(1) {
			t.Error("expected index 1 to stay unselected")
		}
	})

	t.Run("already in collection is a no-op", func(t *testing.T) {
		if rec.Toggle(2) {
			t.Error("expected toggle of already-in-collection item to be a no-op")
		}
	})

	t.Run("out of range is a no-op", func(t *testing.T) {
		if rec.Toggle(-1) || rec.Toggle(99) {
			t.Error("expected out-of-range toggles to be no-ops")
		}
	})
}

func TestReconciler_ApplyPreview_Reapply(t *testing.T) {
	rec := NewReconciler()
	rec.ApplyPreview(previewOf(
		match("a", 0.9, models.StatusMatched, candidate(1, "A"), 10),
		match("b", 0.9, models.StatusMatched, candidate(2, "B"), 5),
	), 0.8)

	if rec.SelectedCount() != 2 {
		t.Fatalf("SelectedCount = %d, want 2", rec.SelectedCount())
	}
	rec.Toggle(1)

	t.Run("keeps user selection across refetch", func(t *testing.T) {
		rec.ApplyPreview(previewOf(
			match("a", 0.9, models.StatusMatched, candidate(1, "A"), 10),
			match("b", 0.9, models.StatusMatched, candidate(2, "B"), 5),
		), 0.8)
		if !rec.IsSelected(0) || rec.IsSelected(1) {
			t.Error("expected refetch to preserve the user's selection")
		}
	})

	t.Run("prunes selections that became ineligible", func(t *testing.T) {
		rec.ApplyPreview(previewOf(
			match("a", 0.9, models.StatusAlreadyInCollection, candidate(1, "A"), 10),
			match("b", 0.9, models.StatusMatched, candidate(2, "B"), 5),
		), 0.8)
		if rec.IsSelected(0) {
			t.Error("expected index 0 pruned after flipping to already_in_collection")
		}
	})

	t.Run("prunes selections that fell out of range", func(t *testing.T) {
		rec.Select(1)
		rec.ApplyPreview(previewOf(
			match("a", 0.9, models.StatusMatched, candidate(1, "A"), 10),
		), 0.8)
		if rec.IsSelected(1) {
			t.Error("expected out-of-range index pruned")
		}
	})

	t.Run("threshold captured on first apply only", func(t *testing.T) {
		rec.ApplyPreview(previewOf(match("a", 0.9, models.StatusMatched, nil, 1)), 0.2)
		if rec.Threshold() != 0.8 {
			t.Errorf("Threshold = %v, want the originally captured 0.8", rec.Threshold())
		}
	})
}

func TestReconciler_View(t *testing.T) {
	rec := NewReconciler()
	rec.ApplyPreview(previewOf(
		match("zebra", 0.95, models.StatusMatched, candidate(1, "Z"), 24),
		match("alpha", 0.60, models.StatusPending, nil, 8),
		match("beta", 0.99, models.StatusAlreadyInCollection, candidate(3, "B"), 12),
		match("gamma", 0.40, models.StatusSkipped, nil, 2),
		match("delta", 0.85, models.StatusManual, candidate(5, "D"), 30),
	), 0.8)

	t.Run("filter matched", func(t *testing.T) {
		view := rec.View(FilterMatched, SortName)
		if len(view) != 1 || view[0].Index != 0 {
			t.Errorf("FilterMatched view = %v, want only index 0", view)
		}
	})

	t.Run("filter needs_review includes manual and pending", func(t *testing.T) {
		view := rec.View(FilterNeedsReview, SortName)
		got := indexSet(view)
		for _, want := range []int{1, 4} {
			if !got[want] {
				t.Errorf("FilterNeedsReview missing index %d (got %v)", want, got)
			}
		}
		if got[0] || got[2] {
			t.Errorf("FilterNeedsReview should exclude matched and already_in_collection, got %v", got)
		}
	})

	t.Run("filter already_in_collection", func(t *testing.T) {
		view := rec.View(FilterAlreadyInCollection, SortName)
		if len(view) != 1 || view[0].Index != 2 {
			t.Errorf("FilterAlreadyInCollection view = %v, want only index 2", view)
		}
	})

	t.Run("filter ready_for_import mirrors selection set", func(t *testing.T) {
		view := rec.View(FilterReadyForImport, SortName)
		got := indexSet(view)
		for _, i := range rec.Selected() {
			if !got[i] {
				t.Errorf("ready_for_import missing selected index %d", i)
			}
		}
		if len(view) != rec.SelectedCount() {
			t.Errorf("ready_for_import size = %d, want %d", len(view), rec.SelectedCount())
		}
	})

	t.Run("sort name is case-insensitive", func(t *testing.T) {
		view := rec.View(FilterAll, SortName)
		for i := 1; i < len(view); i++ {
			if view[i-1].Match.ScannedItem.ShowName > view[i].Match.ScannedItem.ShowName {
				t.Errorf("names out of order: %q before %q", view[i-1].Match.ScannedItem.ShowName, view[i].Match.ScannedItem.ShowName)
			}
		}
	})

	t.Run("sort confidence descending", func(t *testing.T) {
		view := rec.View(FilterAll, SortConfidence)
		for i := 1; i < len(view); i++ {
			if view[i-1].Match.ConfidenceScore < view[i].Match.ConfidenceScore {
				t.Error("confidence not descending")
			}
		}
	})

	t.Run("sort status rank order", func(t *testing.T) {
		view := rec.View(FilterAll, SortStatus)
		want := []models.MatchStatus{models.StatusMatched, models.StatusManual, models.StatusAlreadyInCollection, models.StatusSkipped, models.StatusPending}
		for i, im := range view {
			if im.Match.MatchStatus != want[i] {
				t.Errorf("position %d: status %s, want %s", i, im.Match.MatchStatus, want[i])
			}
		}
	})

	t.Run("sort episodes descending", func(t *testing.T) {
		view := rec.View(FilterAll, SortEpisodes)
		for i := 1; i < len(view); i++ {
			if view[i-1].Match.ScannedItem.TotalEpisodes < view[i].Match.ScannedItem.TotalEpisodes {
				t.Error("episodes not descending")
			}
		}
	})

	t.Run("filter and sort commute on the index set", func(t *testing.T) {
		for _, mode := range []FilterMode{FilterAll, FilterMatched, FilterNeedsReview, FilterAlreadyInCollection, FilterReadyForImport} {
			base := indexSet(rec.View(mode, SortName))
			for _, key := range []SortKey{SortConfidence, SortStatus, SortEpisodes} {
				got := indexSet(rec.View(mode, key))
				if len(got) != len(base) {
					t.Errorf("filter %s: sort %s changed the index set", mode, key)
					continue
				}
				for i := range base {
					if !got[i] {
						t.Errorf("filter %s sort %s: missing index %d", mode, key, i)
					}
				}
			}
		}
	})

	t.Run("view does not mutate the match list", func(t *testing.T) {
		rec.View(FilterAll, SortName)
		if rec.Matches()[0].ScannedItem.ShowName != "zebra" {
			t.Error("expected original match order untouched")
		}
	})
}

func indexSet(view []IndexedMatch) map[int]bool {
	out := make(map[int]bool, len(view))
	for _, im := range view {
		out[im.Index] = true
	}
	return out
}

func TestReconciler_ApplyRemoval(t *testing.T) {
	rec := NewReconciler()
	rec.ApplyPreview(previewOf(
		match("a", 0.9, models.StatusAlreadyInCollection, candidate(42, "A"), 10),
		match("b", 0.9, models.StatusMatched, candidate(7, "B"), 5),
	), 0.8)
	rec.Select(1)

	rec.ApplyRemoval(42)

	if got := rec.Matches()[0].MatchStatus; got != models.StatusMatched {
		t.Errorf("status after removal = %s, want matched", got)
	}
	if rec.Matches()[0].SelectedMatch == nil {
		t.Error("expected committed match retained after removal")
	}
	if rec.IsSelected(0) {
		t.Error("expected removed item out of the selection set")
	}
	if !rec.IsSelected(1) {
		t.Error("expected unrelated selection untouched")
	}

	before := rec.Matches()[0].MatchStatus
	rec.ApplyRemoval(42)
	if rec.Matches()[0].MatchStatus != before {
		t.Error("expected second removal application to be a no-op")
	}
}

func TestReconciler_MarkManual(t *testing.T) {
	rec := NewReconciler()
	rec.ApplyPreview(previewOf(match("a", 0.4, models.StatusPending, nil, 3)), 0.8)

	if rec.IsSelected(0) {
		t.Fatal("expected low-confidence pending item unselected")
	}
	if !rec.MarkManual(0, models.CandidateMatch{ID: 9, Title: "A"}) {
		t.Fatal("expected MarkManual to succeed")
	}
	m := rec.Matches()[0]
	if m.MatchStatus != models.StatusManual || m.SelectedMatch == nil || m.SelectedMatch.ID != 9 {
		t.Errorf("unexpected match after MarkManual: %+v", m)
	}
	if !rec.IsSelected(0) {
		t.Error("expected manually matched item selected")
	}
}

func TestReconciler_Monitor(t *testing.T) {
	rec := NewReconciler()
	rec.ApplyPreview(previewOf(match("a", 0.9, models.StatusMatched, nil, 3)), 0.8)

	if got := rec.Monitor(0); got != models.MonitorNone {
		t.Errorf("default monitor = %s, want none", got)
	}
	rec.SetMonitor(0, models.MonitorAll)
	if got := rec.Monitor(0); got != models.MonitorAll {
		t.Errorf("monitor = %s, want all", got)
	}
	rec.SetMonitor(99, models.MonitorFuture)
	if got := rec.Monitor(99); got != models.MonitorNone {
		t.Errorf("out-of-range monitor = %s, want none", got)
	}
}

// Exercises a full review pass: auto-selection, manual intervention and the
// removal reducer against a three-item preview.
func TestReconciler_ReviewScenario(t *testing.T) {
	rec := NewReconciler()
	rec.ApplyPreview(previewOf(
		match("Andor", 0.95, models.StatusMatched, candidate(100, "Andor"), 24),
		match("Barry", 0.60, models.StatusPending, nil, 8),
		match("Cheers", 0.92, models.StatusAlreadyInCollection, candidate(300, "Cheers"), 270),
	), 0.8)

	if !rec.IsSelected(0) || rec.IsSelected(1) || rec.IsSelected(2) {
		t.Fatalf("auto-selection wrong: selected=%v", rec.Selected())
	}

	rec.MarkManual(1, models.CandidateMatch{ID: 200, Title: "Barry"})
	if !rec.IsSelected(1) {
		t.Fatal("expected manual match to select index 1")
	}

	rec.ApplyRemoval(300)
	if rec.Matches()[2].MatchStatus != models.StatusMatched {
		t.Error("expected removed collection item to become matched")
	}
	if !rec.Eligible(2) {
		t.Error("expected removed item to become toggleable")
	}
	rec.Toggle(2)

	summary := rec.Summarize()
	if summary.TotalSelected != 3 || summary.ImportedCount != 3 {
		t.Errorf("summary = %+v, want 3 selected / 3 imported", summary)
	}
}
