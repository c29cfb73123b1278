package ui

import "strings"

func (m Model) bottomTabsBand() (string, []hit) {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	segs := []segment{{text: " "}}
	for i, tab := range m.cfg.BottomTabs {
		style := styles.MutedText
		if i == m.bottomTab {
			style = styles.Primary
		}
		segs = append(segs,
			segment{text: " " + tab.Label + " ", style: style, kind: zoneBottomTab, id: tab.ID},
			segment{text: " "},
		)
	}
	segs = append(segs, segment{text: " + ", style: styles.FaintText})
	return bg.Layout(segs, m.width)
}

// progressLine draws the half-width progress rule under the bottom tabs.
func (m Model) progressLine() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)
	filled := m.width / 2
	return bg.Render(strings.Repeat("━", filled), styles.AccentText) +
		bg.Render(strings.Repeat("─", m.width-filled), styles.GridLine)
}

// selectBottomTab highlights tab i, remembers it and reports the change.
func (m *Model) selectBottomTab(i int) {
	if i < 0 || i >= len(m.cfg.BottomTabs) {
		return
	}
	m.bottomTab = i
	id := m.cfg.BottomTabs[i].ID
	m.notify(BottomTabChanged{ID: id})
	m.savePrefs()
}

func (m *Model) stepBottomTab(delta int) {
	n := len(m.cfg.BottomTabs)
	if n == 0 {
		return
	}
	m.selectBottomTab(((m.bottomTab+delta)%n + n) % n)
}

func (m Model) bottomTabIndex(id string) int {
	for i, tab := range m.cfg.BottomTabs {
		if tab.ID == id {
			return i
		}
	}
	return -1
}
