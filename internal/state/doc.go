// Package state holds the record list shared between the root UI model and
// anything that reads it.
//
// # Overview
//
// Store is the single place records change. The grid never edits a record;
// it emits a commit effect and the UI model calls Store.Apply, which routes
// the update through sheet.ApplyUpdate:
//
//	grid.Step ──FieldCommitted──> ui.Model ──Apply──> Store
//	                                  ^                 │
//	                                  └──Records()──────┘
//
// # Update Semantics
//
// Apply swaps in a new slice in which only the edited record is a new
// pointer. Unknown ids are ignored and the version counter is not bumped, so
// callers can compare Version values to tell whether anything changed.
//
// # Concurrency Model
//
// Access is guarded by a sync.RWMutex. Records and Columns hand back slice
// copies; the records they point at are immutable.
package state
