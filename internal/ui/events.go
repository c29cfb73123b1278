package ui

import (
	"log/slog"

	"github.com/five82/jobsheet/internal/sheet"
)

// Event is an action reported upward by the shell or the grid.
type Event interface {
	Name() string
	attrs() []any
}

// ToolbarAction is a toolbar button press.
type ToolbarAction struct{ ID string }

// TabChanged is a click on a sheet tab.
type TabChanged struct{ ID string }

// TabClosed is a click on a sheet tab's close mark.
type TabClosed struct{ ID string }

// BottomTabChanged is a change of the highlighted bottom tab.
type BottomTabChanged struct{ ID string }

// RowSelected is a row checkbox toggle.
type RowSelected struct{ RecordID string }

// FieldCommitted is a committed cell edit, after it was applied to the store.
type FieldCommitted struct {
	RecordID string
	ColumnID string
	Value    sheet.Value
	Applied  bool
}

// FormulaSubmitted is Enter in the formula bar.
type FormulaSubmitted struct{ Value string }

func (ToolbarAction) Name() string    { return "toolbar action" }
func (TabChanged) Name() string       { return "tab changed" }
func (TabClosed) Name() string        { return "tab closed" }
func (BottomTabChanged) Name() string { return "bottom tab changed" }
func (RowSelected) Name() string      { return "row selected" }
func (FieldCommitted) Name() string   { return "cell changed" }
func (FormulaSubmitted) Name() string { return "formula bar value" }

func (e ToolbarAction) attrs() []any    { return []any{"action", e.ID} }
func (e TabChanged) attrs() []any       { return []any{"tab", e.ID} }
func (e TabClosed) attrs() []any        { return []any{"tab", e.ID} }
func (e BottomTabChanged) attrs() []any { return []any{"tab", e.ID} }
func (e RowSelected) attrs() []any      { return []any{"row", e.RecordID} }
func (e FormulaSubmitted) attrs() []any { return []any{"value", e.Value} }
func (e FieldCommitted) attrs() []any {
	return []any{"row", e.RecordID, "column", e.ColumnID, "value", e.Value.String(), "applied", e.Applied}
}

// Notifier receives every Event the UI produces.
type Notifier interface {
	Notify(Event)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Event)

// Notify calls f(e).
func (f NotifierFunc) Notify(e Event) { f(e) }

// LogNotifier writes each event to a structured logger.
type LogNotifier struct {
	Logger *slog.Logger
}

// Notify logs e at info level.
func (n LogNotifier) Notify(e Event) {
	if n.Logger == nil {
		return
	}
	n.Logger.Info(e.Name(), e.attrs()...)
}
