// Package ui provides the terminal user interface for linkshelf.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. Model holds the view state (cursor, filter
// input, overlays) and renders from a state.Snapshot taken from the shared
// state.Session. Mutations go straight to the session and the model
// re-snapshots, so the table always shows the session's own derived rows.
//
// # Package Structure
//
//   - app.go: Model, Update/View, messages, commands and Run
//   - table.go: record table, cursor window and the titled box frame
//   - header.go: status bar, command bar and alert line
//   - export_dialog.go: the export dialog with its own selection and search
//   - modal.go: Modal interface and the record detail popup
//   - logs.go: activity view over the log file
//   - theme.go, style_helpers.go: palettes and background-safe rendering
//
// # Views
//
//   - Catalog: checkbox, region, quadkey, size and updated columns with sort
//     arrows. Sizes whose label number exceeds 10 are drawn in the danger color.
//   - Activity: the tail of the JSON log, formatted by logtail.
//
// # Exports
//
// An export runs on its own goroutine. Progress and the result travel over a
// buffered channel and are fed back to Update one message at a time, so the
// header bar and the dialog's progress bar advance as entries are written.
// An empty selection never reaches the exporter; the user sees
// "Select at least one item" instead.
//
// # Preferences
//
// Theme (T) and the table sort are saved to the prefs file whenever they change.
package ui
