// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a multi-view workflow for import reconciliation:
//  1. [PathPickerView] : Choose which configured library paths to scan
//  2. [ScanView] : Monitor scan/match progress via the session poller
//  3. [ReviewView] : Toggle, filter and sort matches before committing
//  4. [CandidateView] : Pick a TMDB candidate for a manual match
//  5. [SearchView] : Re-search candidates from a free-text query
//  6. [RemoveConfirmView] : Remove an existing collection item (keep or delete files)
//  7. [ConfirmView] : Confirm the import
//  8. [ImportingView] : Monitor the server-side import
//  9. [ResultView] : Display the commit summary
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern.
// Progress updates flow through a channel from the SessionController, providing
// non-blocking status reporting while the backend scans and imports.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, y/n, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
