package state

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/five82/linkshelf/internal/archive"
	"github.com/five82/linkshelf/internal/catalog"
	"github.com/five82/linkshelf/internal/logging"
	"github.com/five82/linkshelf/internal/selection"
)

// Errors returned when an export cannot start.
var (
	ErrBusy           = errors.New("an export is already running")
	ErrEmptySelection = errors.New("select at least one item")
)

// Snapshot is a copy of the session state for rendering.
type Snapshot struct {
	Total       int
	Query       string
	Sort        catalog.SortState
	Visible     []catalog.Record
	Selected    map[string]bool
	AllSelected bool
	Busy        bool
	Progress    catalog.Progress
	LastSaved   string
	LastError   error
	LastUpdated time.Time
}

// IsSelected reports whether id is in the snapshot's selection.
func (s Snapshot) IsSelected(id string) bool {
	return s.Selected[id]
}

// Session owns the query, sort, selection and export state for one catalog.
// Derived rows are recomputed from it on every read. Export progress arrives
// from a worker goroutine, hence the lock.
type Session struct {
	mu       sync.RWMutex
	records  []catalog.Record
	query    string
	sort     catalog.SortState
	selected *selection.Set
	busy     bool
	progress catalog.Progress
	saved    string
	lastErr  error
	updated  time.Time
	log      *logging.Logger
}

// NewSession wraps the loaded records. log may be nil.
func NewSession(records []catalog.Record, log *logging.Logger) *Session {
	if log == nil {
		log = logging.Nop()
	}
	dup := make([]catalog.Record, len(records))
	copy(dup, records)
	return &Session{
		records:  dup,
		sort:     catalog.DefaultSort(),
		selected: &selection.Set{},
		updated:  time.Now(),
		log:      log,
	}
}

// ReplaceRecords swaps in a reloaded catalog. Selected ids that no longer
// exist are dropped; the query and sort are kept.
func (s *Session) ReplaceRecords(records []catalog.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	dup := make([]catalog.Record, len(records))
	copy(dup, records)
	s.records = dup

	kept := &selection.Set{}
	present := make(map[string]bool, len(dup))
	for _, r := range dup {
		present[r.Quadkey] = true
	}
	for _, id := range s.selected.IDs() {
		if present[id] {
			kept.Toggle(id)
		}
	}
	s.selected = kept
	s.touch()
}

// SetQuery replaces the filter text.
func (s *Session) SetQuery(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = q
	s.touch()
}

// SetSort replaces the sort state outright (used when restoring prefs).
func (s *Session) SetSort(state catalog.SortState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sort = state
	s.touch()
}

// RequestSort advances the sort cycle for field and returns the new state.
func (s *Session) RequestSort(field catalog.SortField) catalog.SortState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sort = s.sort.Request(field)
	s.touch()
	return s.sort
}

// Toggle flips one row's selection.
func (s *Session) Toggle(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected.Toggle(id)
	s.touch()
}

// ToggleAllVisible applies select-all to the rows currently shown.
func (s *Session) ToggleAllVisible() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected.ToggleAll(catalog.Quadkeys(s.visibleLocked()))
	s.touch()
}

// Visible returns the filtered and sorted rows.
func (s *Session) Visible() []catalog.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.visibleLocked()
}

// SelectedVisible returns the selected rows among those shown, in view order.
func (s *Session) SelectedVisible() []catalog.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []catalog.Record
	for _, r := range s.visibleLocked() {
		if s.selected.IsSelected(r.Quadkey) {
			out = append(out, r)
		}
	}
	return out
}

func (s *Session) visibleLocked() []catalog.Record {
	return catalog.View(s.records, s.query, s.sort)
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	visible := s.visibleLocked()
	ids := s.selected.IDs()
	selected := make(map[string]bool, len(ids))
	for _, id := range ids {
		selected[id] = true
	}
	snap := Snapshot{
		Total:       len(s.records),
		Query:       s.query,
		Sort:        s.sort,
		Visible:     visible,
		Selected:    selected,
		AllSelected: s.selected.AllSelected(catalog.Quadkeys(visible)),
		Busy:        s.busy,
		Progress:    s.progress,
		LastSaved:   s.saved,
		LastError:   s.lastErr,
		LastUpdated: s.updated,
	}
	return snap
}

// BeginExport enters the busy state for n items.
func (s *Session) BeginExport(n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return ErrBusy
	}
	if n == 0 {
		s.lastErr = ErrEmptySelection
		s.touch()
		return ErrEmptySelection
	}
	s.busy = true
	s.progress = catalog.Progress{Total: n}
	s.lastErr = nil
	s.touch()
	return nil
}

// ReportProgress records exporter progress.
func (s *Session) ReportProgress(processed, total, skipped int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.progress = catalog.Progress{Processed: processed, Total: total, Skipped: skipped}
	s.touch()
}

// FinishExport leaves the busy state. A nil err clears the selection.
func (s *Session) FinishExport(saved string, err error) {
	s.finishExport(saved, err, true)
}

func (s *Session) finishExport(saved string, err error, clearSelection bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy = false
	if err != nil {
		s.lastErr = err
	} else {
		s.lastErr = nil
		s.saved = saved
		if clearSelection {
			s.selected.Clear()
		}
	}
	s.touch()
}

// ExportJob describes one export run. OnProgress, when set, is called after
// the session records each progress step. KeepSelection leaves the session's
// selection untouched on success; exports picked outside the table set it.
type ExportJob struct {
	Records       []catalog.Record
	Exporter      *archive.Exporter
	Saver         archive.Saver
	Prefix        string
	Now           time.Time
	OnProgress    archive.ProgressFunc
	KeepSelection bool
}

// Export runs the whole pipeline for job: enter busy, build the archive,
// save it under a dated name, leave busy. Busy is cleared on every path.
func (s *Session) Export(ctx context.Context, job ExportJob) (saved string, err error) {
	if err := s.BeginExport(len(job.Records)); err != nil {
		return "", err
	}

	log := s.log.With(map[string]any{"export_id": uuid.NewString()})
	log.Info().Int("items", len(job.Records)).Msg("export started")
	defer func() {
		s.finishExport(saved, err, !job.KeepSelection)
		if err != nil {
			log.Error().Err(err).Msg("export failed")
			return
		}
		log.Info().Str("path", saved).Msg("export finished")
	}()

	report := func(processed, total, skipped int) {
		s.ReportProgress(processed, total, skipped)
		if job.OnProgress != nil {
			job.OnProgress(processed, total, skipped)
		}
	}
	data, err := job.Exporter.Export(job.Records, report)
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	saved, err = job.Saver.Save(ctx, archive.FileName(job.Prefix, job.Now), data)
	if err != nil {
		return "", err
	}
	log.Debug().Int("bytes", len(data)).Msg("archive saved")
	return saved, nil
}

func (s *Session) touch() {
	s.updated = time.Now()
}
