package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/kylejschultz/caddyy-sub000/internal/models"
	"github.com/kylejschultz/caddyy-sub000/internal/tasks"
)

var (
	_ list.Item = matchItem{}
	_ list.Item = candidateItem{}
)

// matchItem wraps [tasks.IndexedMatch] to implement [list.Item]. The original
// preview index rides along so toggling keys the selection set correctly after
// filtering and sorting.
type matchItem struct {
	im       tasks.IndexedMatch
	selected bool
	monitor  models.MonitorOption
}

func (i matchItem) FilterValue() string { return i.im.Match.ScannedItem.ShowName }

func (i matchItem) Title() string {
	mark := "[ ]"
	if i.selected {
		mark = "[x]"
	}
	return fmt.Sprintf("%s %s", mark, i.im.Match.ScannedItem.ShowName)
}

func (i matchItem) Description() string {
	m := i.im.Match
	desc := fmt.Sprintf("%s • %.2f • %d episodes", m.MatchStatus.Canonical(), m.ConfidenceScore, m.ScannedItem.TotalEpisodes)
	if m.SelectedMatch != nil {
		desc = fmt.Sprintf("%s • → %s", desc, m.SelectedMatch.Title)
	}
	if i.monitor != models.MonitorNone {
		desc = fmt.Sprintf("%s • monitor: %s", desc, i.monitor)
	}
	return desc
}

// candidateItem wraps [models.CandidateMatch] to implement [list.Item].
type candidateItem struct {
	candidate models.CandidateMatch
}

func (i candidateItem) FilterValue() string { return i.candidate.Title }

func (i candidateItem) Title() string {
	if i.candidate.Year != nil {
		return fmt.Sprintf("%s (%d)", i.candidate.Title, *i.candidate.Year)
	}
	return i.candidate.Title
}

func (i candidateItem) Description() string {
	desc := fmt.Sprintf("tmdb %d • %.1f", i.candidate.ID, i.candidate.Rating)
	if i.candidate.Overview != "" {
		overview := i.candidate.Overview
		if len(overview) > 80 {
			overview = overview[:77] + "..."
		}
		desc = fmt.Sprintf("%s • %s", desc, overview)
	}
	return desc
}
