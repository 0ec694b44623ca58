// Package app is the composition root for the linkshelf TUI.
//
// Run loads the config and preferences, reads the catalog (embedded or from
// catalog_path), opens the JSON log file, picks the export destination
// (local directory or S3) and hands a state.Session to the ui package.
//
//	Run()
//	  ├─> Load()            config, prefs, catalog records
//	  ├─> NewFileLogger()   activity log the TUI tails
//	  ├─> archive.NewSaver  DirSaver or S3Saver
//	  ├─> Env.NewSession()  restores the saved sort
//	  ├─> StartWatcher()    only for a catalog file on disk
//	  └─> ui.Run()          blocks until quit
//
// # Catalog watcher
//
// When the catalog comes from a file, a background goroutine stats it every
// two seconds and reloads it when the modification time or size changes.
// Selected rows that survive the reload stay selected. A failed reload keeps
// the previous records, logs a warning and doubles the wait, up to 30 seconds.
package app
