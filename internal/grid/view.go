package grid

import (
	"strconv"

	"github.com/five82/jobsheet/internal/sheet"
)

// DefaultBlankRows is the number of placeholder rows drawn after the data.
const DefaultBlankRows = 20

// CellKind selects how a cell is drawn.
type CellKind int

const (
	CellPlain CellKind = iota
	CellBadge
	CellLink
	CellMoney
	CellEmpty
)

// RenderOptions tune Render.
type RenderOptions struct {
	BlankRows int
}

// View is a frame-independent description of the grid.
type View struct {
	Headers []HeaderCell
	Rows    []RowView
}

// HeaderCell is one column header.
type HeaderCell struct {
	Label    string
	Width    int
	Sortable bool
}

// RowView is one grid line. Placeholder rows have no record.
type RowView struct {
	Number      int
	RecordID    string
	Checked     bool
	Placeholder bool
	Cells       []CellView
}

// CellView is one drawn cell.
type CellView struct {
	Text     string
	Kind     CellKind
	Tone     sheet.Tone
	Width    int
	Selected bool
	Editing  bool
}

// Render projects state and data into a View.
func Render(s State, sh Sheet, opts RenderOptions) View {
	blank := opts.BlankRows
	if blank < 0 {
		blank = 0
	}

	v := View{
		Headers: make([]HeaderCell, len(sh.Columns)),
		Rows:    make([]RowView, 0, len(sh.Records)+blank),
	}
	for i, col := range sh.Columns {
		v.Headers[i] = HeaderCell{Label: col.Header, Width: col.Width, Sortable: col.Sortable}
	}

	sel, hasSel := s.Selection()
	for r, rec := range sh.Records {
		row := RowView{
			Number:   r + 1,
			RecordID: rec.ID,
			Checked:  s.IsChecked(rec.ID),
			Cells:    make([]CellView, len(sh.Columns)),
		}
		for c, col := range sh.Columns {
			cell := renderCell(rec, col)
			if hasSel && sel.Row == r && sel.Col == c {
				cell.Selected = true
				if s.Mode == Editing {
					cell.Editing = true
					cell.Kind = CellPlain
					cell.Text = s.Buffer
				}
			}
			row.Cells[c] = cell
		}
		v.Rows = append(v.Rows, row)
	}

	for i := 0; i < blank; i++ {
		row := RowView{
			Number:      len(sh.Records) + i + 1,
			Placeholder: true,
			Cells:       make([]CellView, len(sh.Columns)),
		}
		for c, col := range sh.Columns {
			row.Cells[c] = CellView{Kind: CellEmpty, Width: col.Width}
		}
		v.Rows = append(v.Rows, row)
	}
	return v
}

func renderCell(rec *sheet.Record, col sheet.Column) CellView {
	cell := CellView{Width: col.Width, Text: rec.Display(col.Accessor)}
	switch {
	case col.Accessor.Badge():
		cell.Kind = CellBadge
		cell.Tone = sheet.BadgeTone(rec, col.Accessor)
	case col.Accessor == sheet.FieldURL:
		cell.Kind = CellLink
	case col.Accessor.Numeric():
		cell.Kind = CellMoney
	default:
		cell.Kind = CellPlain
	}
	return cell
}

// CellRef returns the A1-style reference for p, e.g. {Row: 2, Col: 27} -> "AB3".
func CellRef(p Pos) string {
	return ColumnLetters(p.Col) + strconv.Itoa(p.Row+1)
}

// ColumnLetters converts a zero-based column index to spreadsheet letters.
func ColumnLetters(col int) string {
	if col < 0 {
		return ""
	}
	var out []byte
	for n := col + 1; n > 0; n = (n - 1) / 26 {
		out = append([]byte{byte('A' + (n-1)%26)}, out...)
	}
	return string(out)
}
