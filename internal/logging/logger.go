// Package logging provides structured logging for the TUI and CLI modes.
//
// The TUI owns the terminal, so it logs JSON lines to a file that the activity
// view tails. CLI subcommands log to stderr through a console writer.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// TimeFormat is used by the console writer and the activity view.
const TimeFormat = "15:04:05"

// Logger wraps zerolog with the output it owns.
type Logger struct {
	zlog   zerolog.Logger
	closer io.Closer
}

// NewFileLogger appends JSON log lines to path, creating parent directories.
func NewFileLogger(path string, verbose bool) (*Logger, error) {
	file, err := openLogFile(path)
	if err != nil {
		return nil, err
	}
	return &Logger{zlog: build(file, verbose), closer: file}, nil
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return file, nil
}

// NewTeeLogger appends JSON lines to path and mirrors them to console in
// human-readable form. CLI exports use it so the TUI activity view sees them.
func NewTeeLogger(path string, console io.Writer, verbose bool) (*Logger, error) {
	file, err := openLogFile(path)
	if err != nil {
		return nil, err
	}
	out := zerolog.MultiLevelWriter(file, zerolog.ConsoleWriter{Out: console, TimeFormat: TimeFormat})
	return &Logger{zlog: build(out, verbose), closer: file}, nil
}

// NewConsoleLogger writes human-readable lines to w.
func NewConsoleLogger(w io.Writer, verbose bool) *Logger {
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: TimeFormat}
	return &Logger{zlog: build(out, verbose)}
}

// NewWriterLogger writes JSON lines to w. Mostly useful in tests.
func NewWriterLogger(w io.Writer, verbose bool) *Logger {
	return &Logger{zlog: build(w, verbose)}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{zlog: zerolog.Nop()}
}

func build(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// Info returns an info level event.
func (l *Logger) Info() *zerolog.Event {
	return l.zlog.Info()
}

// Error returns an error level event.
func (l *Logger) Error() *zerolog.Event {
	return l.zlog.Error()
}

// Debug returns a debug level event.
func (l *Logger) Debug() *zerolog.Event {
	return l.zlog.Debug()
}

// Warn returns a warn level event.
func (l *Logger) Warn() *zerolog.Event {
	return l.zlog.Warn()
}

// With returns a child logger carrying extra fields.
func (l *Logger) With(fields map[string]any) *Logger {
	return &Logger{zlog: l.zlog.With().Fields(fields).Logger()}
}

// Close releases the underlying file, if any.
func (l *Logger) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}
	return l.closer.Close()
}
