package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/five82/linkshelf/internal/archive"
	"github.com/five82/linkshelf/internal/catalog"
	"github.com/five82/linkshelf/internal/config"
	"github.com/five82/linkshelf/internal/logging"
	"github.com/five82/linkshelf/internal/prefs"
	"github.com/five82/linkshelf/internal/state"
	"github.com/five82/linkshelf/internal/ui"
)

// Options configure a linkshelf run.
type Options struct {
	ConfigPath  string
	PrefsPath   string // empty uses default ~/.config/linkshelf/prefs.toml
	CatalogPath string // overrides catalog_path from the config
	Verbose     bool
	WatchEvery  time.Duration // zero uses default; negative disables the watcher
}

// Env is everything loaded before a session starts.
type Env struct {
	Config    config.Config
	Prefs     prefs.Prefs
	PrefsPath string
	Records   []catalog.Record
}

// Load reads config, prefs and the catalog.
func Load(opts Options) (*Env, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if p := strings.TrimSpace(opts.CatalogPath); p != "" {
		cfg.CatalogPath = p
	}

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	records, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	return &Env{
		Config:    cfg,
		Prefs:     userPrefs,
		PrefsPath: opts.PrefsPath,
		Records:   records,
	}, nil
}

// NewSession wraps the loaded records and restores the saved sort order.
func (e *Env) NewSession(log *logging.Logger) *state.Session {
	session := state.NewSession(e.Records, log)
	if st, ok := e.savedSort(); ok {
		session.SetSort(st)
	}
	return session
}

func (e *Env) savedSort() (catalog.SortState, bool) {
	dir := catalog.ParseDirection(e.Prefs.SortDir)
	if dir == catalog.DirectionNone {
		return catalog.SortState{}, false
	}
	field, ok := catalog.ParseField(e.Prefs.SortField)
	if !ok {
		return catalog.SortState{}, false
	}
	return catalog.SortState{Field: field, Direction: dir}, true
}

// Run boots the linkshelf TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	env, err := Load(opts)
	if err != nil {
		return err
	}

	log, err := logging.NewFileLogger(env.Config.LogPath, opts.Verbose)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer func() { _ = log.Close() }()

	source := env.Config.CatalogPath
	if source == "" {
		source = "embedded"
	}
	log.Info().Str("catalog", source).Int("records", len(env.Records)).Msg("catalog loaded")

	saver, err := archive.NewSaver(ctx, env.Config.ExportDir, env.Config.S3Region)
	if err != nil {
		return fmt.Errorf("init export destination: %w", err)
	}
	log.Debug().Str("dest", env.Config.ExportDir).Bool("s3", env.Config.ExportsToS3()).Msg("export destination")

	session := env.NewSession(log)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	if env.Config.CatalogPath != "" && opts.WatchEvery >= 0 {
		StartWatcher(ctx, session, env.Config.CatalogPath, opts.WatchEvery, log)
	}

	cfg := env.Config
	return ui.Run(ui.Options{
		Context:   ctx,
		Session:   session,
		Config:    &cfg,
		Saver:     saver,
		Logger:    log,
		Prefs:     env.Prefs,
		PrefsPath: env.PrefsPath,
	})
}
