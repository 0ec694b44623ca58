package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/five82/linkshelf/internal/catalog"
	"github.com/five82/linkshelf/internal/logging"
	"github.com/five82/linkshelf/internal/state"
)

const (
	defaultWatchInterval = 2 * time.Second
	maxBackoff           = 30 * time.Second
)

// StartWatcher launches a background goroutine that reloads the catalog file
// into session whenever its modification time or size changes. Failed reloads
// keep the current records and back off. It returns immediately.
func StartWatcher(ctx context.Context, session *state.Session, path string, interval time.Duration, log *logging.Logger) {
	if interval <= 0 {
		interval = defaultWatchInterval
	}
	w := newWatcher(session, path, log)
	go func() {
		failures := 0
		for {
			select {
			case <-ctx.Done():
				return
			case <-time.After(calculateBackoff(failures, interval)):
			}
			if _, err := w.poll(); err != nil {
				failures++
				w.log.Warn().Err(err).Int("failures", failures).Msg("catalog reload failed")
				continue
			}
			failures = 0
		}
	}()
}

type watcher struct {
	session *state.Session
	path    string
	log     *logging.Logger
	modTime time.Time
	size    int64
}

func newWatcher(session *state.Session, path string, log *logging.Logger) *watcher {
	if log == nil {
		log = logging.Nop()
	}
	w := &watcher{session: session, path: path, log: log}
	if info, err := os.Stat(path); err == nil {
		w.modTime, w.size = info.ModTime(), info.Size()
	}
	return w
}

// poll reloads the file if it changed since the last successful load.
func (w *watcher) poll() (bool, error) {
	info, err := os.Stat(w.path)
	if err != nil {
		return false, fmt.Errorf("stat catalog: %w", err)
	}
	if info.ModTime().Equal(w.modTime) && info.Size() == w.size {
		return false, nil
	}
	records, err := catalog.Load(w.path)
	if err != nil {
		return false, err
	}
	w.session.ReplaceRecords(records)
	w.modTime, w.size = info.ModTime(), info.Size()
	w.log.Info().Str("catalog", w.path).Int("records", len(records)).Msg("catalog reloaded")
	return true, nil
}

// calculateBackoff doubles interval per consecutive failure, capped at maxBackoff.
func calculateBackoff(failures int, interval time.Duration) time.Duration {
	if failures <= 0 {
		return interval
	}
	if failures > 16 {
		return maxBackoff
	}
	backoff := interval << failures
	if backoff > maxBackoff {
		return maxBackoff
	}
	return backoff
}
