package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/five82/jobsheet/internal/grid"
)

// bodyHeight is the number of grid rows that fit between the fixed bands.
func (m Model) bodyHeight() int {
	h := m.height - rowGridBody - bottomBands
	if h < 0 {
		return 0
	}
	return h
}

// visibleColumns returns the column indices that fit from colOffset on.
// At least one column is always returned when any exist.
func (m Model) visibleColumns() []int {
	cols := m.store.Columns()
	avail := m.width - gutterWidth
	var out []int
	used := 0
	for c := m.colOffset; c < len(cols); c++ {
		if len(out) > 0 && used+cols[c].Width > avail {
			break
		}
		out = append(out, c)
		used += cols[c].Width
	}
	return out
}

// columnAt maps a screen x coordinate to a column index.
func (m Model) columnAt(x int) (int, bool) {
	cols := m.store.Columns()
	x0 := gutterWidth
	for _, c := range m.visibleColumns() {
		if x >= x0 && x < x0+cols[c].Width {
			return c, true
		}
		x0 += cols[c].Width
	}
	return 0, false
}

// totalRows counts records plus placeholder rows.
func (m Model) totalRows() int {
	return len(m.store.Records()) + m.cfg.BlankRows
}

// ensureVisible scrolls so the cursor cell is on screen.
func (m *Model) ensureVisible() {
	p, ok := m.grid.Selection()
	if !ok {
		return
	}
	if h := m.bodyHeight(); h > 0 {
		if p.Row < m.rowOffset {
			m.rowOffset = p.Row
		} else if p.Row >= m.rowOffset+h {
			m.rowOffset = p.Row - h + 1
		}
	}
	if p.Col < m.colOffset {
		m.colOffset = p.Col
	}
	for m.colOffset < p.Col {
		vis := m.visibleColumns()
		if len(vis) > 0 && vis[len(vis)-1] >= p.Col {
			break
		}
		m.colOffset++
	}
}

// scroll moves the viewport by delta rows without touching the selection.
func (m *Model) scroll(delta int) {
	maxOffset := m.totalRows() - m.bodyHeight()
	if maxOffset < 0 {
		maxOffset = 0
	}
	m.rowOffset += delta
	if m.rowOffset > maxOffset {
		m.rowOffset = maxOffset
	}
	if m.rowOffset < 0 {
		m.rowOffset = 0
	}
}

// renderGrid draws the column header line and the visible body rows.
func (m Model) renderGrid() []string {
	styles := m.theme.Styles()
	view := grid.Render(m.grid, m.sheet(), grid.RenderOptions{BlankRows: m.cfg.BlankRows})
	cols := m.visibleColumns()
	sep := styles.GridLine.Render("│")

	var header strings.Builder
	header.WriteString(styles.GridHeader.Render(fit("", gutterWidth-1, false)))
	header.WriteString(sep)
	for _, c := range cols {
		h := view.Headers[c]
		label := h.Label
		if h.Sortable {
			label += " ↕"
		}
		header.WriteString(styles.GridHeader.Render(" " + fit(label, h.Width-2, false)))
		header.WriteString(sep)
	}
	lines := []string{m.padLine(header.String())}

	end := m.rowOffset + m.bodyHeight()
	for r := m.rowOffset; r < end; r++ {
		if r >= len(view.Rows) {
			lines = append(lines, m.padLine(""))
			continue
		}
		lines = append(lines, m.padLine(m.renderRow(view.Rows[r], cols, styles, sep)))
	}
	return lines
}

func (m Model) renderRow(row grid.RowView, cols []int, styles Styles, sep string) string {
	var b strings.Builder

	mark := "[ ]"
	if row.Checked {
		mark = "[x]"
	}
	if row.Placeholder {
		mark = "   "
	}
	b.WriteString(styles.GridHeader.Render(fmt.Sprintf("%s%3d", mark, row.Number)))
	b.WriteString(sep)

	for _, c := range cols {
		b.WriteString(m.renderCell(row, row.Cells[c], styles))
		b.WriteString(sep)
	}
	return b.String()
}

func (m Model) renderCell(row grid.RowView, cell grid.CellView, styles Styles) string {
	inner := cell.Width - 1
	if inner < 1 {
		inner = 1
	}

	if cell.Editing {
		return styles.Editing.Render(" " + fit(m.cellInput.View(), inner-1, false))
	}

	base := styles.Text
	switch {
	case cell.Selected:
		base = styles.Selected
	case m.cellMatches(cell.Text):
		base = styles.Match
	case row.Checked:
		base = styles.Text.Inherit(styles.Checked)
	}

	switch cell.Kind {
	case grid.CellBadge:
		pill := truncate(" "+cell.Text+" ", inner-2)
		pad := inner - 1 - ansi.StringWidth(pill)
		if pad < 0 {
			pad = 0
		}
		return base.Render(" ") + styles.BadgeStyle(cell.Tone).Render(pill) + base.Render(strings.Repeat(" ", pad))
	case grid.CellLink:
		style := styles.Link.Inherit(base)
		if cell.Selected {
			style = base.Underline(true)
		}
		return style.Render(" " + fit(cell.Text, inner-1, false))
	case grid.CellMoney:
		return base.Render(fit(cell.Text, inner-1, true) + " ")
	default:
		return base.Render(" " + fit(cell.Text, inner-1, false))
	}
}

func (m Model) padLine(s string) string {
	w := ansi.StringWidth(s)
	if w > m.width {
		return ansi.Truncate(s, m.width, "")
	}
	return s + NewBgStyle(m.theme.Background).Spaces(m.width-w)
}
