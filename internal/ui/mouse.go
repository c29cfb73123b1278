package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/jobsheet/internal/grid"
)

const wheelStep = 3

// handleMouse routes a mouse event to the band under the pointer.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scroll(-wheelStep)
		return m, nil
	case tea.MouseButtonWheelDown:
		m.scroll(wheelStep)
		return m, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	body := m.bodyHeight()
	switch {
	case msg.Y == rowHeader:
		_, hits := m.headerBand()
		if h, ok := hitAt(hits, msg.X); ok && h.kind == zoneSearch {
			return m, m.setFocus(focusSearch)
		}

	case msg.Y == rowToolbar:
		_, hits := m.toolbarBand()
		if h, ok := hitAt(hits, msg.X); ok {
			m.notify(ToolbarAction{ID: h.id})
		}

	case msg.Y == rowTabBar:
		_, hits := m.tabBarBand()
		if h, ok := hitAt(hits, msg.X); ok {
			switch h.kind {
			case zoneTab:
				m.activeTab = m.tabIndex(h.id)
				m.notify(TabChanged{ID: h.id})
			case zoneTabClose:
				m.notify(TabClosed{ID: h.id})
			}
		}

	case msg.Y == rowFormula:
		_, hits := m.formulaBand()
		if h, ok := hitAt(hits, msg.X); ok && h.kind == zoneFormula {
			return m, m.setFocus(focusFormula)
		}

	case msg.Y >= rowGridBody && msg.Y < rowGridBody+body:
		return m, m.handleGridPress(msg.X, m.rowOffset+msg.Y-rowGridBody)

	case msg.Y == rowGridBody+body:
		_, hits := m.bottomTabsBand()
		if h, ok := hitAt(hits, msg.X); ok {
			m.selectBottomTab(m.bottomTabIndex(h.id))
		}
	}
	return m, nil
}

// handleGridPress turns a press on grid row `row` into a grid event. Presses
// in the gutter toggle the row checkbox; a second press on the same cell
// within DoubleClickWindow is a double-click.
func (m *Model) handleGridPress(x, row int) tea.Cmd {
	var cmds []tea.Cmd
	if m.focus != focusGrid {
		cmds = append(cmds, m.setFocus(focusGrid))
	}

	if x < gutterWidth {
		records := m.store.Records()
		if row < len(records) {
			cmds = append(cmds, m.dispatch(grid.ToggleRow{RecordID: records[row].ID}))
		}
		return tea.Batch(cmds...)
	}

	col, ok := m.columnAt(x)
	if !ok {
		return tea.Batch(cmds...)
	}
	p := grid.Pos{Row: row, Col: col}
	now := m.now()

	if m.hasLastClick && m.lastClickPos == p && now.Sub(m.lastClick) <= DoubleClickWindow {
		m.hasLastClick = false
		cmds = append(cmds, m.dispatch(grid.DoubleClick{Pos: p}))
		return tea.Batch(cmds...)
	}

	m.lastClick = now
	m.lastClickPos = p
	m.hasLastClick = true
	cmds = append(cmds, m.dispatch(grid.Click{Pos: p}))
	return tea.Batch(cmds...)
}
