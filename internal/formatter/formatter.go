// package formatter renders backend payloads as tables and plain text for the CLI
package formatter

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/kylejschultz/caddyy-sub000/internal/models"
	"github.com/kylejschultz/caddyy-sub000/internal/shared"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

// FormatBytes renders a byte count as a human-readable size.
func FormatBytes(b int64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(b)/float64(div), "KMGTPE"[exp])
}

func yearString(year *int) string {
	if year == nil {
		return "-"
	}
	return strconv.Itoa(*year)
}

// CollectionTable renders the collection listing as a table.
func CollectionTable(shows []models.CollectionShow) string {
	rows := make([][]string, 0, len(shows))
	for _, s := range shows {
		monitored := "no"
		if s.Monitored {
			monitored = "yes"
		}
		size := "-"
		if s.TotalSize > 0 {
			size = FormatBytes(s.TotalSize)
		}
		rows = append(rows, []string{
			strconv.Itoa(s.ID), s.Title, yearString(s.Year), monitored, size,
		})
	}
	return renderTable(
		[]string{"ID", "Title", "Year", "Monitored", "Size"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignRight, alignLeft, alignRight},
	)
}

// CollectionText renders the collection listing as numbered plain text.
func CollectionText(shows []models.CollectionShow) []byte {
	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("Shows: %d\n\n", len(shows)))
	for i, s := range shows {
		buf.WriteString(fmt.Sprintf("%d. %s (%s) [id %d]\n", i+1, s.Title, yearString(s.Year), s.ID))
	}
	return buf.Bytes()
}

// LibrariesTable renders configured libraries with their primary folder.
func LibrariesTable(libraries []models.Library) string {
	rows := make([][]string, 0, len(libraries))
	for _, l := range libraries {
		enabled := "no"
		if l.Enabled {
			enabled = "yes"
		}
		primary := "-"
		if p := l.PrimaryFolder(); p != nil {
			primary = p.Path
		}
		rows = append(rows, []string{
			strconv.Itoa(l.ID), l.Name, l.MediaType, enabled,
			strconv.Itoa(len(l.Folders)), primary,
		})
	}
	return renderTable(
		[]string{"ID", "Name", "Type", "Enabled", "Folders", "Primary Path"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignRight, alignLeft},
	)
}

// FoldersTable renders a library's folders in priority order.
func FoldersTable(folders []models.LibraryFolder, usage []models.FolderUsage) string {
	free := make(map[int]int64, len(usage))
	for _, u := range usage {
		free[u.FolderID] = u.FreeBytes
	}
	rows := make([][]string, 0, len(folders))
	for _, f := range folders {
		enabled := "no"
		if f.Enabled {
			enabled = "yes"
		}
		freeCol := "-"
		if v, ok := free[f.ID]; ok {
			freeCol = FormatBytes(v)
		}
		rows = append(rows, []string{
			strconv.Itoa(f.ID), strconv.Itoa(f.Priority), f.Name, f.Path, enabled, freeCol,
		})
	}
	return renderTable(
		[]string{"ID", "Priority", "Name", "Path", "Enabled", "Free"},
		rows,
		[]columnAlignment{alignRight, alignRight, alignLeft, alignLeft, alignLeft, alignRight},
	)
}

// SessionsTable renders the active session listing.
func SessionsTable(sessions []models.SessionInfo) string {
	rows := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		rows = append(rows, []string{
			s.SessionID, s.MediaType, string(s.Status),
			fmt.Sprintf("%.0f%%", s.Progress), s.CreatedAt,
		})
	}
	return renderTable(
		[]string{"Session", "Type", "Status", "Progress", "Created"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignLeft},
	)
}

// PreviewTable renders reconciliation matches. indices carries the stable item
// index from the preview payload for each row; selected is keyed by those same
// indices, so the printed "#" column is what manual-match expects.
func PreviewTable(matches []models.ImportMatch, indices []int, selected map[int]bool) string {
	rows := make([][]string, 0, len(matches))
	for i, m := range matches {
		idx := i
		if i < len(indices) {
			idx = indices[i]
		}
		mark := " "
		if selected[idx] {
			mark = "x"
		}
		match := "-"
		if m.SelectedMatch != nil {
			match = fmt.Sprintf("%s (%s)", m.SelectedMatch.Title, yearString(m.SelectedMatch.Year))
		}
		rows = append(rows, []string{
			mark, strconv.Itoa(idx), m.ScannedItem.ShowName,
			strconv.Itoa(m.ScannedItem.TotalEpisodes),
			fmt.Sprintf("%.2f", m.ConfidenceScore),
			string(m.MatchStatus.Canonical()), match,
		})
	}
	return renderTable(
		[]string{"Sel", "#", "Scanned", "Eps", "Conf", "Status", "Match"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignLeft, alignRight, alignRight, alignLeft, alignLeft},
	)
}

// PreviewSummaryText renders the preview summary counters.
func PreviewSummaryText(summary models.PreviewSummary) []byte {
	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("Scanned: %d\n", summary.TotalScanned))
	buf.WriteString(fmt.Sprintf("Matched: %d\n", summary.TotalMatched))
	buf.WriteString(fmt.Sprintf("Needs review: %d\n", summary.TotalManual))
	buf.WriteString(fmt.Sprintf("Skipped: %d\n", summary.TotalSkipped))
	buf.WriteString(fmt.Sprintf("Already in collection: %d\n", summary.AlreadyInCollection))
	return buf.Bytes()
}

// CandidatesTable renders TMDB search candidates for one scanned item.
func CandidatesTable(candidates []models.CandidateMatch) string {
	rows := make([][]string, 0, len(candidates))
	for i, c := range candidates {
		overview := c.Overview
		if len(overview) > 60 {
			overview = overview[:57] + "..."
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1), strconv.Itoa(c.ID), c.Title,
			yearString(c.Year), fmt.Sprintf("%.1f", c.Rating), overview,
		})
	}
	return renderTable(
		[]string{"#", "TMDB", "Title", "Year", "Rating", "Overview"},
		rows,
		[]columnAlignment{alignRight, alignRight, alignLeft, alignRight, alignRight, alignLeft},
	)
}

// RenameOperationsTable renders suggested file reorganizations.
func RenameOperationsTable(ops []models.RenameOperation) string {
	rows := make([][]string, 0, len(ops))
	for _, op := range ops {
		confirm := ""
		if op.NeedsConfirmation {
			confirm = "!"
		}
		rows = append(rows, []string{
			op.OperationType, op.CurrentName, op.SuggestedName, confirm,
		})
	}
	return renderTable(
		[]string{"Op", "Current", "Suggested", ""},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft},
	)
}

// DirectoryListingText renders a filesystem browse payload, directories first.
func DirectoryListingText(listing *models.DirectoryListing) []byte {
	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("Path: %s\n", listing.Path))
	if listing.Parent != "" {
		buf.WriteString(fmt.Sprintf("Parent: %s\n", listing.Parent))
	}
	buf.WriteString("\n")
	for _, e := range listing.Entries {
		if e.IsDirectory {
			buf.WriteString(fmt.Sprintf("  %s/\n", e.Name))
		}
	}
	for _, e := range listing.Entries {
		if !e.IsDirectory {
			buf.WriteString(fmt.Sprintf("  %s\n", e.Name))
		}
	}
	return buf.Bytes()
}

// PathsTable renders configured scan roots for a media type.
func PathsTable(dirs []models.MediaDirectory) string {
	rows := make([][]string, 0, len(dirs))
	for i, d := range dirs {
		enabled := "no"
		if d.Enabled {
			enabled = "yes"
		}
		rows = append(rows, []string{strconv.Itoa(i), d.Name, d.Path, enabled})
	}
	return renderTable(
		[]string{"#", "Name", "Path", "Enabled"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft},
	)
}

// SummaryText renders an import commit summary.
func SummaryText(imported, totalSelected int, shows []string) []byte {
	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("Imported %d of %d selected\n", imported, totalSelected))
	if len(shows) > 0 {
		buf.WriteString("\n")
		for i, name := range shows {
			buf.WriteString(fmt.Sprintf("%d. %s\n", i+1, name))
		}
	}
	return buf.Bytes()
}

// ToJSON marshals any payload with indentation.
func ToJSON(v any) ([]byte, error) {
	return shared.MarshalJSON(v, true)
}

// WriteJSONExport writes a payload snapshot to disk as indented JSON.
// Defaults to the given base name with a .json suffix.
func WriteJSONExport(v any, filepath string) (string, error) {
	if filepath == "" {
		return "", fmt.Errorf("empty export path")
	}
	if !strings.HasSuffix(filepath, ".json") {
		filepath += ".json"
	}
	data, err := ToJSON(v)
	if err != nil {
		return "", fmt.Errorf("failed to generate JSON: %w", err)
	}
	if err := os.WriteFile(filepath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}
	return filepath, nil
}
