package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/jobsheet/internal/grid"
)

const formulaRefWidth = 7

func (m Model) formulaBand() (string, []hit) {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Background)

	ref := "A1"
	if p, ok := m.grid.Selection(); ok {
		ref = grid.CellRef(p)
	}

	inputStyle := styles.Text
	if m.focus == focusFormula {
		inputStyle = styles.Editing
	}
	inputWidth := m.width - formulaRefWidth - 7
	if inputWidth < 1 {
		inputWidth = 1
	}

	segs := []segment{
		{text: " " + fit(ref, formulaRefWidth-2, false) + " ", style: styles.GridHeader},
		{text: " │", style: styles.GridLine},
		{text: " fx ", style: styles.AccentText.Italic(true)},
		{text: fit(m.formula.View(), inputWidth, false), style: inputStyle, kind: zoneFormula},
	}
	return bg.Layout(segs, m.width)
}

// syncFormula mirrors the selected cell, or the live edit buffer, into the
// formula bar.
func (m *Model) syncFormula() {
	if m.focus == focusFormula {
		return
	}
	value := ""
	switch m.grid.Mode {
	case grid.Editing:
		value = m.grid.Buffer
	case grid.Selected:
		value = m.sheet().RawValue(m.grid.Cursor)
	}
	m.formula.SetValue(value)
	m.formula.CursorEnd()
}

func (m Model) handleFormulaKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.notify(FormulaSubmitted{Value: m.formula.Value()})
		return m, m.setFocus(focusGrid)
	case key.Matches(msg, m.keys.Escape):
		// Refocusing the grid restores the mirrored value.
		return m, m.setFocus(focusGrid)
	}

	var cmd tea.Cmd
	m.formula, cmd = m.formula.Update(msg)
	return m, cmd
}
