// Package ui implements the jobsheet terminal interface with Bubble Tea.
//
// # Overview
//
// Model is the root composer. It owns the record store and the grid state,
// feeds key and mouse input into grid.Step, applies the resulting commits
// through state.Store.Apply and reports every user action to a Notifier.
//
// # Screen Layout
//
//	row 0   header       title, breadcrumbs, search, notifications, user
//	row 1   toolbar      Hide fields, Sort, Filter, Cell view ... New Action
//	row 2   tab bar      sheet tabs with close marks, fixed chips
//	row 3   formula bar  A1 reference, fx, mirrored cell value
//	row 4   grid header
//	...     grid body    gutter (checkbox, row number) and cells
//	        bottom tabs
//	        progress line
//	        key hints
//
// Mouse hit testing reuses the same band layout functions as rendering, so
// the clickable spans always match what was drawn.
//
// # Focus
//
// Keyboard focus sits on the grid unless the formula bar (ctrl+l) or the
// header search box (ctrl+f) takes it. Moving focus off the grid, or the
// terminal reporting focus loss, sends grid.Blur, which commits a pending
// edit.
//
// # Events
//
// ToolbarAction, TabChanged, TabClosed, BottomTabChanged, RowSelected,
// FieldCommitted and FormulaSubmitted are delivered to Options.Notifier. The
// default notifier logs them through slog.
package ui
