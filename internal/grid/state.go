package grid

import "github.com/five82/jobsheet/internal/sheet"

// Mode is the grid's interaction state.
type Mode int

const (
	Idle Mode = iota
	Selected
	Editing
)

func (m Mode) String() string {
	switch m {
	case Selected:
		return "selected"
	case Editing:
		return "editing"
	default:
		return "idle"
	}
}

// Pos addresses a cell by row index into the record list and column index
// into the column registry.
type Pos struct {
	Row int
	Col int
}

// State is the grid's selection and edit state. Editing always targets
// Cursor, so the edited cell is the selected cell by construction. Buffer
// is only meaningful while Editing.
type State struct {
	Mode    Mode
	Cursor  Pos
	Buffer  string
	Checked map[string]bool
}

// Selection returns the selected position, if any.
func (s State) Selection() (Pos, bool) {
	if s.Mode == Idle {
		return Pos{}, false
	}
	return s.Cursor, true
}

// IsChecked reports whether the row for recordID is marked.
func (s State) IsChecked(recordID string) bool {
	return s.Checked[recordID]
}

// Sheet is the read-only data the machine navigates and edits.
type Sheet struct {
	Records []*sheet.Record
	Columns sheet.Columns
}

func (sh Sheet) inRange(p Pos) bool {
	return p.Row >= 0 && p.Row < len(sh.Records) && p.Col >= 0 && p.Col < len(sh.Columns)
}

// Cell returns the record and column at p.
func (sh Sheet) Cell(p Pos) (*sheet.Record, sheet.Column, bool) {
	if !sh.inRange(p) {
		return nil, sheet.Column{}, false
	}
	return sh.Records[p.Row], sh.Columns[p.Col], true
}

// RawValue returns the unformatted text at p, or "" when out of range.
func (sh Sheet) RawValue(p Pos) string {
	rec, col, ok := sh.Cell(p)
	if !ok {
		return ""
	}
	return rec.Text(col.Accessor)
}
