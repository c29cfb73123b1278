package grid

import "github.com/five82/jobsheet/internal/sheet"

// Event is an input to Step.
type Event interface {
	event()
}

// Key identifies a keyboard key the grid reacts to.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyEdit // explicit edit, F2
	KeyBackspace
	KeyRune
)

// Click is a single pointer press on a cell.
type Click struct{ Pos Pos }

// DoubleClick is a second press on the same cell in quick succession.
type DoubleClick struct{ Pos Pos }

// KeyPress is a key press. Rune is set when Key is KeyRune.
type KeyPress struct {
	Key  Key
	Rune rune
}

// Input replaces the edit buffer with the contents of an external text widget.
type Input struct{ Text string }

// Blur is focus leaving the grid.
type Blur struct{}

// ToggleRow flips the row checkbox for a record.
type ToggleRow struct{ RecordID string }

func (Click) event()       {}
func (DoubleClick) event() {}
func (KeyPress) event()    {}
func (Input) event()       {}
func (Blur) event()        {}
func (ToggleRow) event()   {}

// Effect is an upward notification produced by Step.
type Effect interface {
	effect()
}

// FieldCommitted carries one committed, coerced edit.
type FieldCommitted struct {
	RecordID string
	ColumnID string
	Value    sheet.Value
}

// RowToggled reports a row checkbox interaction.
type RowToggled struct {
	RecordID string
}

func (FieldCommitted) effect() {}
func (RowToggled) effect()     {}
