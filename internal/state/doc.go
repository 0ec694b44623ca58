// Package state owns the session state behind the catalog table.
//
// # Overview
//
// A Session is the single container for everything the user can change: the
// filter query, the sort state, the selection and the export status. The rows
// on screen are never stored; they are derived on every read:
//
//	records ──> catalog.Filter(query) ──> catalog.Sort(sort) ──> Visible()
//
// # Concurrency Model
//
// Key handling mutates the session from the Bubble Tea update loop. An export
// runs inside a tea.Cmd goroutine and reports progress back through
// ReportProgress, so the session guards its fields with a readers-writer lock.
// The UI reads Snapshot() on a tick, the same way it would poll any other
// store.
//
// # Export lifecycle
//
//	BeginExport(n)     n == 0 → ErrEmptySelection, busy → ErrBusy
//	ReportProgress()   once per packaged record
//	FinishExport()     always runs; clears busy, clears selection on success
//	                   unless the job sets KeepSelection
//
// Export wires these around archive.Exporter and an archive.Saver and logs the
// outcome with a per-export id. Only one export can be in flight.
//
// # Snapshots
//
// Snapshot copies the selection so the caller can keep it across later
// mutations without sharing internal state.
package state
