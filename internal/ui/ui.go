package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kylejschultz/caddyy-sub000/internal/models"
	"github.com/kylejschultz/caddyy-sub000/internal/services"
	"github.com/kylejschultz/caddyy-sub000/internal/shared"
	"github.com/kylejschultz/caddyy-sub000/internal/tasks"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	PathPickerView ViewState = iota
	ScanView
	ReviewView
	CandidateView
	SearchView
	RemoveConfirmView
	ConfirmView
	ImportingView
	ResultView
)

// Model represents the TUI application state.
type Model struct {
	ctx        context.Context
	view       ViewState
	client     services.Client
	controller *tasks.SessionController
	rec        *tasks.Reconciler
	mediaType  string
	threshold  float64
	width      int
	height     int

	dirs         []models.MediaDirectory
	pathCursor   int
	pathSelected map[int]bool

	matchList      list.Model
	matchListReady bool
	filter         tasks.FilterMode
	sortKey        tasks.SortKey

	candList     list.Model
	candidateFor int

	searchInput textinput.Model
	searchFor   int

	removeFor  int
	removeID   int
	removeName string

	progressChan chan tasks.ProgressUpdate
	progress     tasks.ProgressUpdate
	scanErr      error
	summary      *tasks.ImportSummary

	spin   spinner.Model
	help   help.Model
	keys   keyMap
	notice string
	err    error
}

type setupMsg struct {
	dirs      []models.MediaDirectory
	threshold float64
	err       error
}

type progressUpdateMsg tasks.ProgressUpdate

type sessionDoneMsg struct {
	status *models.SessionStatus
	err    error
}

type matchAppliedMsg struct {
	index int
	err   error
}

type searchAppliedMsg struct {
	index int
	err   error
}

type skipDoneMsg struct {
	err error
}

type removeDoneMsg struct {
	tmdbID int
	err    error
}

type executeStartedMsg struct {
	summary *tasks.ImportSummary
	err     error
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(ctx context.Context, client services.Client, controller *tasks.SessionController, mediaType string) *Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return &Model{
		ctx:          ctx,
		view:         PathPickerView,
		client:       client,
		controller:   controller,
		rec:          tasks.NewReconciler(),
		mediaType:    mediaType,
		threshold:    tasks.DefaultAutoMatchThreshold,
		pathSelected: make(map[int]bool),
		filter:       tasks.FilterAll,
		sortKey:      tasks.SortName,
		spin:         sp,
		help:         help.New(),
		keys:         newKeyMap(),
	}
}

// Init fetches the configured library paths and the auto-match threshold.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.fetchSetup(), m.spin.Tick)
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.matchListReady {
			m.matchList.SetSize(msg.Width-4, msg.Height-8)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case PathPickerView:
			return m.handlePathPickerKeys(msg)
		case ReviewView:
			return m.handleReviewKeys(msg)
		case CandidateView:
			return m.handleCandidateKeys(msg)
		case SearchView:
			return m.handleSearchKeys(msg)
		case RemoveConfirmView:
			return m.handleRemoveConfirmKeys(msg)
		case ConfirmView:
			return m.handleConfirmKeys(msg)
		case ResultView:
			return m.handleResultKeys(msg)
		default:
			if msg.String() == "q" || msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case setupMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.dirs = msg.dirs
		if msg.threshold > 0 {
			m.threshold = msg.threshold
		}
		return m, nil

	case progressUpdateMsg:
		m.progress = tasks.ProgressUpdate(msg)
		if preview, ok := m.progress.Data.(*models.ImportPreview); ok {
			m.rec.ApplyPreview(preview, m.threshold)
			if m.view == ScanView {
				m.view = ReviewView
			}
			if m.view == ReviewView {
				m.rebuildMatchList()
			}
		}
		return m, m.waitForProgress()

	case sessionDoneMsg:
		m.progressChan = nil
		if msg.err != nil && msg.err != context.Canceled {
			m.err = msg.err
		}
		if msg.status != nil && msg.status.Status == models.SessionError {
			m.err = fmt.Errorf("%w: %s", shared.ErrAPIRequest, msg.status.ErrorMessage)
		}
		m.view = ResultView
		return m, nil

	case matchAppliedMsg:
		if msg.err != nil {
			m.notice = fmt.Sprintf("manual match failed: %v", msg.err)
		} else {
			m.rec.ApplyPreview(m.controller.Preview(), m.threshold)
			m.rec.Select(msg.index)
			m.notice = ""
		}
		m.view = ReviewView
		m.rebuildMatchList()
		return m, nil

	case searchAppliedMsg:
		if msg.err != nil {
			m.notice = fmt.Sprintf("search failed: %v", msg.err)
			m.view = ReviewView
			m.rebuildMatchList()
			return m, nil
		}
		m.rec.ApplyPreview(m.controller.Preview(), m.threshold)
		m.notice = ""
		m.openCandidates(msg.index)
		return m, nil

	case skipDoneMsg:
		if msg.err != nil {
			m.notice = fmt.Sprintf("skip failed: %v", msg.err)
		} else {
			m.rec.ApplyPreview(m.controller.Preview(), m.threshold)
			m.notice = ""
		}
		m.rebuildMatchList()
		return m, nil

	case removeDoneMsg:
		if msg.err != nil {
			m.notice = fmt.Sprintf("remove failed: %v", msg.err)
		} else {
			m.rec.ApplyRemoval(msg.tmdbID)
			m.rec.ApplyPreview(m.controller.Preview(), m.threshold)
			m.notice = ""
		}
		m.view = ReviewView
		m.rebuildMatchList()
		return m, nil

	case executeStartedMsg:
		if msg.err != nil {
			m.notice = fmt.Sprintf("execute failed: %v", msg.err)
			m.view = ReviewView
			return m, nil
		}
		m.summary = msg.summary
		m.view = ImportingView
		return m, m.spin.Tick
	}

	return m.updateLists(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil && m.view != ResultView {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}

	switch m.view {
	case PathPickerView:
		return m.renderPathPicker()
	case ScanView:
		return m.renderScan()
	case ReviewView:
		return m.renderReview()
	case CandidateView:
		return m.renderCandidates()
	case SearchView:
		return m.renderSearch()
	case RemoveConfirmView:
		return m.renderRemoveConfirm()
	case ConfirmView:
		return m.renderConfirm()
	case ImportingView:
		return m.renderImporting()
	case ResultView:
		return m.renderResult()
	default:
		return ""
	}
}

func (m *Model) handlePathPickerKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.up):
		if m.pathCursor > 0 {
			m.pathCursor--
		}
	case key.Matches(msg, m.keys.down):
		if m.pathCursor < len(m.dirs)-1 {
			m.pathCursor++
		}
	case key.Matches(msg, m.keys.toggle):
		m.pathSelected[m.pathCursor] = !m.pathSelected[m.pathCursor]
	case key.Matches(msg, m.keys.enter):
		paths := m.chosenPaths()
		if len(paths) == 0 {
			m.notice = "select at least one path"
			return m, nil
		}
		m.notice = ""
		m.view = ScanView
		return m, m.startScan(paths)
	}
	return m, nil
}

func (m *Model) handleReviewKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.toggle):
		if i, ok := m.currentMatchIndex(); ok {
			if !m.rec.Toggle(i) {
				m.notice = "item cannot be selected"
			} else {
				m.notice = ""
			}
			m.rebuildMatchList()
		}
		return m, nil
	case key.Matches(msg, m.keys.filter):
		m.filter = nextFilter(m.filter)
		m.rebuildMatchList()
		return m, nil
	case key.Matches(msg, m.keys.order):
		m.sortKey = nextSort(m.sortKey)
		m.rebuildMatchList()
		return m, nil
	case key.Matches(msg, m.keys.manual):
		if i, ok := m.currentMatchIndex(); ok {
			m.openCandidates(i)
		}
		return m, nil
	case key.Matches(msg, m.keys.search):
		if i, ok := m.currentMatchIndex(); ok {
			m.searchFor = i
			ti := textinput.New()
			ti.Placeholder = "title to search for"
			ti.Focus()
			m.searchInput = ti
			m.view = SearchView
		}
		return m, nil
	case key.Matches(msg, m.keys.skip):
		if i, ok := m.currentMatchIndex(); ok {
			return m, m.skipItem(i)
		}
		return m, nil
	case key.Matches(msg, m.keys.remove):
		if i, ok := m.currentMatchIndex(); ok {
			match := m.rec.Matches()[i]
			if match.MatchStatus.Canonical() == models.StatusAlreadyInCollection && match.SelectedMatch != nil {
				m.removeFor = i
				m.removeID = match.SelectedMatch.ID
				m.removeName = match.ScannedItem.ShowName
				m.view = RemoveConfirmView
			} else {
				m.notice = "item is not in the collection"
			}
		}
		return m, nil
	case key.Matches(msg, m.keys.monitor):
		if i, ok := m.currentMatchIndex(); ok {
			m.rec.SetMonitor(i, nextMonitor(m.rec.Monitor(i)))
			m.rebuildMatchList()
		}
		return m, nil
	case key.Matches(msg, m.keys.enter):
		if m.rec.SelectedCount() == 0 {
			m.notice = "nothing selected"
			return m, nil
		}
		m.view = ConfirmView
		return m, nil
	}

	var cmd tea.Cmd
	m.matchList, cmd = m.matchList.Update(msg)
	return m, cmd
}

func (m *Model) handleCandidateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.back):
		m.view = ReviewView
		return m, nil
	case key.Matches(msg, m.keys.enter):
		if it, ok := m.candList.SelectedItem().(candidateItem); ok {
			m.rec.MarkManual(m.candidateFor, it.candidate)
			return m, m.commitManualMatch(m.candidateFor, it.candidate.ID)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.candList, cmd = m.candList.Update(msg)
	return m, cmd
}

func (m *Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = ReviewView
		return m, nil
	case "enter":
		query := m.searchInput.Value()
		if query == "" {
			m.notice = "search query cannot be empty"
			m.view = ReviewView
			return m, nil
		}
		return m, m.customSearch(m.searchFor, query)
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m *Model) handleRemoveConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = ReviewView
		return m, nil
	case "r":
		return m, m.removeFromCollection(m.removeID, false)
	case "d":
		return m, m.removeFromCollection(m.removeID, true)
	}
	return m, nil
}

func (m *Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "n", "esc":
		m.view = ReviewView
		return m, nil
	case "y":
		return m, m.startExecute()
	}
	return m, nil
}

func (m *Model) handleResultKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "r":
		m.view = PathPickerView
		m.rec = tasks.NewReconciler()
		m.summary = nil
		m.err = nil
		m.notice = ""
		m.matchListReady = false
		return m, nil
	}
	return m, nil
}

func (m *Model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case ReviewView:
		if m.matchListReady {
			m.matchList, cmd = m.matchList.Update(msg)
		}
	case CandidateView:
		m.candList, cmd = m.candList.Update(msg)
	case SearchView:
		m.searchInput, cmd = m.searchInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) chosenPaths() []string {
	var paths []string
	for i, d := range m.dirs {
		if m.pathSelected[i] && d.Enabled {
			paths = append(paths, d.Path)
		}
	}
	return paths
}

func (m *Model) currentMatchIndex() (int, bool) {
	if it, ok := m.matchList.SelectedItem().(matchItem); ok {
		return it.im.Index, true
	}
	return 0, false
}

func (m *Model) openCandidates(index int) {
	matches := m.rec.Matches()
	if index < 0 || index >= len(matches) {
		return
	}
	m.candidateFor = index
	candidates := matches[index].TMDBMatches
	items := make([]list.Item, len(candidates))
	for i, c := range candidates {
		items[i] = candidateItem{candidate: c}
	}
	m.candList = list.New(items, list.NewDefaultDelegate(), m.width-4, m.height-8)
	m.candList.Title = fmt.Sprintf("Candidates for '%s'", matches[index].ScannedItem.ShowName)
	m.candList.SetFilteringEnabled(false)
	m.view = CandidateView
}

func (m *Model) rebuildMatchList() {
	view := m.rec.View(m.filter, m.sortKey)
	items := make([]list.Item, len(view))
	for i, im := range view {
		items[i] = matchItem{
			im:       im,
			selected: m.rec.IsSelected(im.Index),
			monitor:  m.rec.Monitor(im.Index),
		}
	}
	if !m.matchListReady {
		m.matchList = list.New(items, list.NewDefaultDelegate(), m.width-4, m.height-8)
		m.matchList.SetFilteringEnabled(false)
		m.matchList.SetShowHelp(false)
		m.matchListReady = true
	} else {
		m.matchList.SetItems(items)
	}
	m.matchList.Title = fmt.Sprintf("Import Review · %s / %s · %d selected", m.filter, m.sortKey, m.rec.SelectedCount())
}

func nextFilter(f tasks.FilterMode) tasks.FilterMode {
	switch f {
	case tasks.FilterAll:
		return tasks.FilterMatched
	case tasks.FilterMatched:
		return tasks.FilterNeedsReview
	case tasks.FilterNeedsReview:
		return tasks.FilterAlreadyInCollection
	case tasks.FilterAlreadyInCollection:
		return tasks.FilterReadyForImport
	default:
		return tasks.FilterAll
	}
}

func nextSort(s tasks.SortKey) tasks.SortKey {
	switch s {
	case tasks.SortName:
		return tasks.SortConfidence
	case tasks.SortConfidence:
		return tasks.SortStatus
	case tasks.SortStatus:
		return tasks.SortEpisodes
	default:
		return tasks.SortName
	}
}

func nextMonitor(opt models.MonitorOption) models.MonitorOption {
	switch opt {
	case models.MonitorNone:
		return models.MonitorAll
	case models.MonitorAll:
		return models.MonitorFuture
	default:
		return models.MonitorNone
	}
}

func (m *Model) fetchSetup() tea.Cmd {
	return func() tea.Msg {
		dirs, err := m.client.LibraryPaths(m.ctx, m.mediaType)
		if err != nil {
			return setupMsg{err: err}
		}
		threshold := 0.0
		if settings, err := m.client.Settings(m.ctx); err == nil {
			threshold = settings.AutoMatchThreshold
		}
		return setupMsg{dirs: dirs, threshold: threshold}
	}
}

func (m *Model) startScan(paths []string) tea.Cmd {
	m.progressChan = make(chan tasks.ProgressUpdate, 50)
	ch := m.progressChan

	go func() {
		if _, err := m.controller.Start(m.ctx, m.mediaType, paths); err != nil {
			m.scanErr = err
			close(ch)
			return
		}
		_, err := m.controller.Watch(m.ctx, ch)
		m.scanErr = err
		close(ch)
	}()

	return tea.Batch(m.spin.Tick, m.waitForProgress())
}

func (m *Model) waitForProgress() tea.Cmd {
	ch := m.progressChan
	return func() tea.Msg {
		if ch == nil {
			return sessionDoneMsg{status: m.controller.Status(), err: m.scanErr}
		}
		update, ok := <-ch
		if !ok {
			return sessionDoneMsg{status: m.controller.Status(), err: m.scanErr}
		}
		return progressUpdateMsg(update)
	}
}

func (m *Model) commitManualMatch(index, tmdbID int) tea.Cmd {
	return func() tea.Msg {
		err := m.controller.ManualMatch(m.ctx, index, tmdbID)
		return matchAppliedMsg{index: index, err: err}
	}
}

func (m *Model) customSearch(index int, query string) tea.Cmd {
	return func() tea.Msg {
		err := m.controller.CustomSearch(m.ctx, index, query)
		return searchAppliedMsg{index: index, err: err}
	}
}

func (m *Model) skipItem(index int) tea.Cmd {
	return func() tea.Msg {
		if err := m.client.SkipItem(m.ctx, m.controller.SessionID(), index); err != nil {
			return skipDoneMsg{err: err}
		}
		if _, err := m.controller.RefetchPreview(m.ctx); err != nil && err != shared.ErrStaleResponse {
			return skipDoneMsg{err: err}
		}
		return skipDoneMsg{}
	}
}

func (m *Model) removeFromCollection(tmdbID int, deleteFiles bool) tea.Cmd {
	return func() tea.Msg {
		shows, err := m.client.Collection(m.ctx)
		if err != nil {
			return removeDoneMsg{err: err}
		}
		collectionID := 0
		for _, s := range shows {
			if s.TMDBID == tmdbID {
				collectionID = s.ID
				break
			}
		}
		if collectionID == 0 {
			return removeDoneMsg{err: shared.ErrItemNotFound}
		}
		if err := m.client.RemoveCollectionItem(m.ctx, collectionID, deleteFiles); err != nil {
			return removeDoneMsg{err: err}
		}
		if _, err := m.controller.RefetchPreview(m.ctx); err != nil && err != shared.ErrStaleResponse {
			return removeDoneMsg{err: err}
		}
		return removeDoneMsg{tmdbID: tmdbID}
	}
}

func (m *Model) startExecute() tea.Cmd {
	return func() tea.Msg {
		summary, err := m.controller.Execute(m.ctx, m.rec)
		return executeStartedMsg{summary: summary, err: err}
	}
}

func (m *Model) renderPathPicker() string {
	title := styles.title.Render(fmt.Sprintf("Select %s library paths to scan", m.mediaType))

	body := ""
	if len(m.dirs) == 0 {
		body = styles.warn.Render("No library paths configured. Add one with 'caddyy config paths add'.")
	}
	for i, d := range m.dirs {
		cursor := "  "
		if i == m.pathCursor {
			cursor = "> "
		}
		mark := "[ ]"
		if m.pathSelected[i] {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s%s %s (%s)", cursor, mark, d.Name, d.Path)
		if !d.Enabled {
			line = styles.help.Render(line + " (disabled)")
		}
		body += line + "\n"
	}

	footer := ""
	if m.notice != "" {
		footer = styles.warn.Render(m.notice) + "\n"
	}
	helpView := m.help.ShortHelpView([]key.Binding{m.keys.toggle, m.keys.enter, m.keys.quit})
	return fmt.Sprintf("%s\n%s\n%s%s", title, body, footer, helpView)
}

func (m *Model) renderScan() string {
	title := styles.title.Render("Scanning Library")

	var phase string
	switch m.progress.Phase {
	case tasks.Scanning:
		phase = fmt.Sprintf("Scanning directories... %.0f%%", m.progress.Percent*100)
	case tasks.Matching:
		phase = fmt.Sprintf("Matching against TMDB... %.0f%%", m.progress.Percent*100)
	default:
		phase = "Starting session..."
	}

	return fmt.Sprintf("%s\n\n%s %s\n%s", title, m.spin.View(), phase, m.progress.Message)
}

func (m *Model) renderReview() string {
	if !m.matchListReady {
		return styles.help.Render("Waiting for preview...")
	}
	footer := ""
	if m.notice != "" {
		footer = styles.warn.Render(m.notice) + "\n"
	}
	helpView := m.help.ShortHelpView([]key.Binding{
		m.keys.toggle, m.keys.filter, m.keys.order, m.keys.manual,
		m.keys.search, m.keys.skip, m.keys.remove, m.keys.monitor,
		m.keys.enter, m.keys.quit,
	})
	return fmt.Sprintf("%s\n%s%s", m.matchList.View(), footer, helpView)
}

func (m *Model) renderCandidates() string {
	helpView := m.help.ShortHelpView([]key.Binding{m.keys.enter, m.keys.back, m.keys.quit})
	return fmt.Sprintf("%s\n\n%s", m.candList.View(), helpView)
}

func (m *Model) renderSearch() string {
	title := styles.title.Render("Custom Search")
	helpView := m.help.ShortHelpView([]key.Binding{m.keys.enter, m.keys.back})
	return fmt.Sprintf("%s\n%s\n\n%s", title, m.searchInput.View(), helpView)
}

func (m *Model) renderRemoveConfirm() string {
	title := styles.title.Render(fmt.Sprintf("Remove '%s' from collection?", m.removeName))
	choices := "  [r] Remove from collection only\n  [d] Remove and delete files from disk\n  [esc] Cancel"
	warn := styles.warn.Render("Deleting files cannot be undone.")
	return fmt.Sprintf("%s\n%s\n\n%s\n", title, choices, warn)
}

func (m *Model) renderConfirm() string {
	summary := m.rec.Summarize()
	title := styles.title.Render(fmt.Sprintf("Import %d selected items?", summary.TotalSelected))
	info := fmt.Sprintf("\nTo import: %d\nAlready in collection: %d\n", summary.ImportedCount, summary.TotalSelected-summary.ImportedCount)
	helpView := m.help.ShortHelpView([]key.Binding{m.keys.yes, m.keys.no, m.keys.quit})
	return fmt.Sprintf("%s\n%s\n%s", title, info, helpView)
}

func (m *Model) renderImporting() string {
	title := styles.title.Render("Importing")
	return fmt.Sprintf("%s\n\n%s Importing... %.0f%%\n%s", title, m.spin.View(), m.progress.Percent*100, m.progress.Message)
}

func (m *Model) renderResult() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Import failed: %v\n\nPress r to restart, q to quit", m.err))
	}

	if m.summary == nil {
		return styles.warn.Render("Session ended without an import.\n\nPress r to restart, q to quit")
	}

	title := styles.ok.Render("✓ Import Complete!")
	info := fmt.Sprintf("\nImported %d of %d selected shows:", m.summary.ImportedCount, m.summary.TotalSelected)
	for i, name := range m.summary.ImportedShows {
		info += fmt.Sprintf("\n  %d. %s", i+1, name)
		if opt := m.summary.Monitoring[name]; opt != models.MonitorNone {
			info += styles.help.Render(fmt.Sprintf(" (monitor: %s)", opt))
		}
	}

	helpView := m.help.ShortHelpView([]key.Binding{m.keys.restart, m.keys.quit})
	return fmt.Sprintf("%s\n%s\n\n%s", title, info, helpView)
}
