package ui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/linkshelf/internal/archive"
	"github.com/five82/linkshelf/internal/catalog"
	"github.com/five82/linkshelf/internal/config"
	"github.com/five82/linkshelf/internal/logging"
	"github.com/five82/linkshelf/internal/prefs"
	"github.com/five82/linkshelf/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewCatalog View = iota
	ViewLogs
)

// Alert texts shown on the status line.
const (
	msgEmptySelection = "Select at least one item"
	msgExportFailed   = "Failed to create the archive"
	msgExportBusy     = "An export is already running"
	msgNoMatches      = "No records match your search"
)

type alertLevel int

const (
	alertInfo alertLevel = iota
	alertSuccess
	alertWarn
	alertDanger
)

type alert struct {
	text  string
	level alertLevel
}

// Options configures the UI.
type Options struct {
	Context   context.Context
	Session   *state.Session
	Config    *config.Config
	Saver     archive.Saver
	Logger    *logging.Logger
	Prefs     prefs.Prefs
	PrefsPath string
	Now       func() time.Time
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	session   *state.Session
	cfg       config.Config
	saver     archive.Saver
	exporter  *archive.Exporter
	log       *logging.Logger
	prefs     prefs.Prefs
	prefsPath string
	now       func() time.Time
	keys      keyMap

	// UI state
	theme       Theme
	currentView View
	width       int
	height      int
	ready       bool

	// Data state
	snapshot    state.Snapshot
	lastUpdated time.Time

	// Table state
	cursor int
	offset int

	// Filter input
	filtering   bool
	filterInput textinput.Model

	// Status line
	alert alert

	// Overlays
	showHelp bool
	modal    Modal

	// Export state
	progress progress.Model
	exportCh <-chan tea.Msg

	// Log state
	logViewport viewport.Model
	logLines    []string
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := config.Default()
	if opts.Config != nil {
		cfg = *opts.Config
	}

	log := opts.Logger
	if log == nil {
		log = logging.Nop()
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	saver := opts.Saver
	if saver == nil {
		saver = &archive.DirSaver{Dir: cfg.ExportDir}
	}

	theme := GetTheme(opts.Prefs.Theme)

	fi := textinput.New()
	fi.Prompt = "/"
	fi.Placeholder = "region or quadkey"
	fi.CharLimit = 64

	m := Model{
		ctx:         ctx,
		session:     opts.Session,
		cfg:         cfg,
		saver:       saver,
		exporter:    archive.NewExporter(cfg.ArchiveFolder),
		log:         log,
		prefs:       opts.Prefs,
		prefsPath:   prefsPath,
		now:         now,
		keys:        DefaultKeyMap(),
		theme:       theme,
		currentView: ViewCatalog,
		filterInput: fi,
		progress:    newProgressBar(theme),
	}
	m.prefs.Theme = theme.Name
	if m.session != nil {
		m.snapshot = m.session.Snapshot()
	}
	return m
}

func newProgressBar(theme Theme) progress.Model {
	return progress.New(
		progress.WithSolidFill(theme.Accent),
		progress.WithoutPercentage(),
		progress.WithWidth(20),
	)
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(DefaultUIInterval)}
	if m.session != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.session))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.initLogViewport()
		}
		m.ready = true
		m.ensureCursorVisible()
		m.updateLogViewport()
		return m, nil

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		m.applySnapshot(state.Snapshot(msg))
		return m, nil

	case exportRequestMsg:
		cmd, err := m.startExport(msg.records, msg.keepSelection)
		if err != nil {
			m.forwardToModal(exportDoneMsg{err: err})
		}
		return m, cmd

	case exportProgressMsg:
		m.snapshot.Busy = true
		m.snapshot.Progress = catalog.Progress(msg)
		m.forwardToModal(msg)
		return m, waitForExport(m.exportCh)

	case exportDoneMsg:
		return m.handleExportDone(msg)

	case logLinesMsg:
		m.logLines = msg
		m.updateLogViewport()
		return m, nil

	case logErrorMsg:
		m.setAlert("Log unavailable: "+msg.err.Error(), alertWarn)
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if m.modal != nil {
		return m.modal.View(m.theme, m.width, m.height)
	}

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	// Any key closes help
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.modal != nil {
		modal, cmd, closed := m.modal.Update(msg, m.keys)
		if closed {
			m.modal = nil
		} else {
			m.modal = modal
		}
		return m, cmd
	}

	if m.filtering {
		return m.handleFilterKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.progress = newProgressBar(m.theme)
		m.prefs.Theme = m.theme.Name
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.ViewLogs):
		if m.currentView == ViewLogs {
			m.currentView = ViewCatalog
			return m, nil
		}
		m.currentView = ViewLogs
		return m, m.refreshLogs()
	}

	switch m.currentView {
	case ViewLogs:
		return m.handleLogsKey(msg)
	default:
		return m.handleCatalogKey(msg)
	}
}

// handleCatalogKey processes keyboard input for the catalog table.
func (m Model) handleCatalogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		switch {
		case m.alert.text != "":
			m.clearAlert()
		case m.snapshot.Query != "":
			m.setQuery("")
			m.filterInput.SetValue("")
		}
		return m, nil

	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		m.filterInput.SetValue(m.snapshot.Query)
		m.filterInput.CursorEnd()
		return m, m.filterInput.Focus()

	case key.Matches(msg, m.keys.Toggle):
		if rec, ok := m.currentRecord(); ok {
			m.session.Toggle(rec.Quadkey)
			m.syncSnapshot()
		}
		return m, nil

	case key.Matches(msg, m.keys.ToggleAll):
		m.session.ToggleAllVisible()
		m.syncSnapshot()
		return m, nil

	case key.Matches(msg, m.keys.SortRegion):
		m.requestSort(catalog.FieldRegion)
		return m, nil
	case key.Matches(msg, m.keys.SortQuad):
		m.requestSort(catalog.FieldQuadkey)
		return m, nil
	case key.Matches(msg, m.keys.SortSize):
		m.requestSort(catalog.FieldSize)
		return m, nil
	case key.Matches(msg, m.keys.SortDate):
		m.requestSort(catalog.FieldUpdated)
		return m, nil

	case key.Matches(msg, m.keys.Export):
		cmd, err := m.startExport(m.session.SelectedVisible(), false)
		if err != nil {
			m.setAlert(alertText(err), alertWarn)
		}
		return m, cmd

	case key.Matches(msg, m.keys.ExportMore):
		if len(m.snapshot.Visible) == 0 {
			m.setAlert(msgNoMatches, alertWarn)
			return m, nil
		}
		m.modal = newExportDialog(m.snapshot.Visible, m.theme)
		return m, nil

	case key.Matches(msg, m.keys.ShowURL):
		if rec, ok := m.currentRecord(); ok {
			m.modal = newDetailModal(rec)
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Top):
		m.moveCursor(-len(m.snapshot.Visible))
	case key.Matches(msg, m.keys.Bottom):
		m.moveCursor(len(m.snapshot.Visible))
	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(m.tableRows())
	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(-m.tableRows())
	case key.Matches(msg, m.keys.HalfPageDown):
		m.moveCursor(max(m.tableRows()/2, 1))
	case key.Matches(msg, m.keys.HalfPageUp):
		m.moveCursor(-max(m.tableRows()/2, 1))
	}

	return m, nil
}

// handleFilterKey feeds the filter input. The view re-filters on every edit.
func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.filtering = false
		m.filterInput.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.filtering = false
		m.filterInput.Blur()
		m.filterInput.SetValue("")
		m.setQuery("")
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	if q := m.filterInput.Value(); q != m.snapshot.Query {
		m.setQuery(q)
	}
	return m, cmd
}

// handleTick processes the refresh tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if m.session != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.session))
	}

	if m.currentView == ViewLogs {
		cmds = append(cmds, m.refreshLogs())
	}

	interval := DefaultUIInterval
	if m.snapshot.Busy {
		interval = BusyUIInterval
	}
	cmds = append(cmds, tickCmd(interval))

	return m, tea.Batch(cmds...)
}

func (m Model) handleExportDone(msg exportDoneMsg) (tea.Model, tea.Cmd) {
	m.exportCh = nil
	m.syncSnapshot()
	m.forwardToModal(msg)

	if msg.err != nil {
		level := alertWarn
		if !errors.Is(msg.err, state.ErrEmptySelection) && !errors.Is(msg.err, state.ErrBusy) {
			level = alertDanger
		}
		m.setAlert(alertText(msg.err), level)
	} else {
		m.setAlert("Saved "+msg.saved, alertSuccess)
	}

	if m.currentView == ViewLogs {
		return m, m.refreshLogs()
	}
	return m, nil
}

// alertText maps an export error to the message shown to the user. The
// underlying cause goes to the log.
func alertText(err error) string {
	switch {
	case errors.Is(err, state.ErrEmptySelection):
		return msgEmptySelection
	case errors.Is(err, state.ErrBusy):
		return msgExportBusy
	default:
		return msgExportFailed
	}
}

// startExport launches an export in the background. Progress and the final
// result arrive as messages on the returned command's channel. keepSelection
// leaves the table selection alone after a successful export.
func (m *Model) startExport(records []catalog.Record, keepSelection bool) (tea.Cmd, error) {
	if len(records) == 0 {
		return nil, state.ErrEmptySelection
	}
	if m.exportCh != nil || m.snapshot.Busy {
		return nil, state.ErrBusy
	}

	// One slot per progress step plus the result; sends never block.
	ch := make(chan tea.Msg, len(records)+1)
	m.exportCh = ch
	m.snapshot.Busy = true
	m.snapshot.Progress = catalog.Progress{Total: len(records)}
	m.clearAlert()

	job := state.ExportJob{
		Records:       records,
		Exporter:      m.exporter,
		Saver:         m.saver,
		Prefix:        m.cfg.ArchivePrefix,
		Now:           m.now(),
		KeepSelection: keepSelection,
		OnProgress: func(processed, total, skipped int) {
			ch <- exportProgressMsg{Processed: processed, Total: total, Skipped: skipped}
		},
	}
	ctx, session := m.ctx, m.session
	go func() {
		saved, err := session.Export(ctx, job)
		ch <- exportDoneMsg{saved: saved, err: err}
		close(ch)
	}()

	return waitForExport(ch), nil
}

func (m *Model) forwardToModal(msg tea.Msg) {
	if m.modal == nil {
		return
	}
	modal, _, closed := m.modal.Update(msg, m.keys)
	if closed {
		m.modal = nil
		return
	}
	m.modal = modal
}

func (m *Model) requestSort(field catalog.SortField) {
	st := m.session.RequestSort(field)
	m.syncSnapshot()
	m.prefs.SortField = st.Field.String()
	m.prefs.SortDir = st.Direction.String()
	m.savePrefs()
}

func (m *Model) setQuery(q string) {
	m.session.SetQuery(q)
	m.cursor = 0
	m.offset = 0
	m.syncSnapshot()
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		m.log.Warn().Err(err).Str("path", m.prefsPath).Msg("save preferences")
	}
}

// syncSnapshot reads the session directly so key handling sees its own effect.
func (m *Model) syncSnapshot() {
	if m.session == nil {
		return
	}
	m.applySnapshot(m.session.Snapshot())
}

func (m *Model) applySnapshot(snap state.Snapshot) {
	m.snapshot = snap
	m.lastUpdated = time.Now()
	m.ensureCursorVisible()
}

func (m *Model) setAlert(text string, level alertLevel) {
	m.alert = alert{text: text, level: level}
}

func (m *Model) clearAlert() {
	m.alert = alert{}
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")

	switch m.currentView {
	case ViewLogs:
		b.WriteString(m.renderLogs())
	default:
		b.WriteString(m.renderCatalog())
	}
	b.WriteString("\n")

	b.WriteString(m.renderStatusLine())

	return b.String()
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

// exportRequestMsg comes from the export dialog, which keeps its own
// selection, so keepSelection is set there.
type exportRequestMsg struct {
	records       []catalog.Record
	keepSelection bool
}

type exportProgressMsg catalog.Progress

type exportDoneMsg struct {
	saved string
	err   error
}

type logLinesMsg []string

type logErrorMsg struct {
	err error
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(session *state.Session) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(session.Snapshot())
	}
}

func waitForExport(ch <-chan tea.Msg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return nil
		}
		return msg
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Context != nil {
		programOpts = append(programOpts, tea.WithContext(opts.Context))
	}
	p := tea.NewProgram(m, programOpts...)
	_, err := p.Run()
	return err
}
