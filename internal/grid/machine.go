package grid

import (
	"unicode/utf8"

	"github.com/five82/jobsheet/internal/sheet"
)

// Step applies ev to s and returns the next state plus any effects. It is
// pure: s is never modified, and sh is only read.
func Step(s State, ev Event, sh Sheet) (State, []Effect) {
	switch ev := ev.(type) {
	case Click:
		return click(s, ev.Pos, sh)
	case DoubleClick:
		return doubleClick(s, ev.Pos, sh)
	case KeyPress:
		return keyPress(s, ev, sh)
	case Input:
		if s.Mode == Editing {
			s.Buffer = ev.Text
		}
		return s, nil
	case Blur:
		if s.Mode == Editing {
			return commit(s, sh)
		}
		return s, nil
	case ToggleRow:
		return toggleRow(s, ev.RecordID)
	}
	return s, nil
}

func click(s State, p Pos, sh Sheet) (State, []Effect) {
	var effects []Effect
	if s.Mode == Editing {
		s, effects = commit(s, sh)
	}
	if !sh.inRange(p) {
		return s, effects
	}
	s.Mode = Selected
	s.Cursor = p
	return s, effects
}

func doubleClick(s State, p Pos, sh Sheet) (State, []Effect) {
	if !editable(p, sh) {
		return s, nil
	}
	if s.Mode == Editing && s.Cursor == p {
		return s, nil
	}
	var effects []Effect
	if s.Mode == Editing {
		s, effects = commit(s, sh)
	}
	return startEdit(s, p, sh.RawValue(p)), effects
}

func keyPress(s State, ev KeyPress, sh Sheet) (State, []Effect) {
	switch s.Mode {
	case Idle:
		return s, nil
	case Editing:
		return editingKey(s, ev, sh)
	}

	// Selected.
	switch ev.Key {
	case KeyUp:
		s.Cursor.Row = clamp(s.Cursor.Row-1, len(sh.Records))
	case KeyDown:
		s.Cursor.Row = clamp(s.Cursor.Row+1, len(sh.Records))
	case KeyLeft:
		s.Cursor.Col = clamp(s.Cursor.Col-1, len(sh.Columns))
	case KeyRight:
		s.Cursor.Col = clamp(s.Cursor.Col+1, len(sh.Columns))
	case KeyEnter, KeyEdit:
		if editable(s.Cursor, sh) {
			s = startEdit(s, s.Cursor, sh.RawValue(s.Cursor))
		}
	case KeyRune:
		if sheet.Printable(ev.Rune) && editable(s.Cursor, sh) {
			s = startEdit(s, s.Cursor, string(ev.Rune))
		}
	}
	return s, nil
}

func editingKey(s State, ev KeyPress, sh Sheet) (State, []Effect) {
	switch ev.Key {
	case KeyEnter:
		return commit(s, sh)
	case KeyEscape:
		return cancel(s), nil
	case KeyRune:
		if sheet.Printable(ev.Rune) {
			s.Buffer += string(ev.Rune)
		}
	case KeyBackspace:
		if _, size := utf8.DecodeLastRuneInString(s.Buffer); size > 0 {
			s.Buffer = s.Buffer[:len(s.Buffer)-size]
		}
	}
	return s, nil
}

func startEdit(s State, p Pos, initial string) State {
	s.Mode = Editing
	s.Cursor = p
	s.Buffer = initial
	return s
}

// commit coerces the buffer and leaves the cell selected. Without an active
// edit it only clears edit state.
func commit(s State, sh Sheet) (State, []Effect) {
	if s.Mode != Editing {
		s.Buffer = ""
		return s, nil
	}
	buffer := s.Buffer
	s = cancel(s)

	rec, col, ok := sh.Cell(s.Cursor)
	if !ok {
		return s, nil
	}
	return s, []Effect{FieldCommitted{
		RecordID: rec.ID,
		ColumnID: col.ID,
		Value:    Coerce(col, buffer),
	}}
}

func cancel(s State) State {
	s.Mode = Selected
	s.Buffer = ""
	return s
}

func toggleRow(s State, recordID string) (State, []Effect) {
	checked := make(map[string]bool, len(s.Checked)+1)
	for id := range s.Checked {
		checked[id] = true
	}
	if checked[recordID] {
		delete(checked, recordID)
	} else {
		checked[recordID] = true
	}
	s.Checked = checked
	return s, []Effect{RowToggled{RecordID: recordID}}
}

func editable(p Pos, sh Sheet) bool {
	_, col, ok := sh.Cell(p)
	return ok && col.Editable()
}

// clamp bounds v to [0, n). With n == 0 it returns 0.
func clamp(v, n int) int {
	if v >= n {
		v = n - 1
	}
	if v < 0 {
		v = 0
	}
	return v
}

// Coerce converts an edit buffer to the column's value type. Numeric columns
// keep only digits and default to zero; everything else is verbatim.
func Coerce(col sheet.Column, buffer string) sheet.Value {
	if col.Accessor.Numeric() {
		return sheet.Number(sheet.ParseAmount(buffer))
	}
	return sheet.Text(buffer)
}
