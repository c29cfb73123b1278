package ui

// tabChips are the fixed, inert chips after the sheet tabs.
var tabChips = []string{"ABC", "Answer a question", "Extract", "+"}

func (m Model) tabBarBand() (string, []hit) {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Background)

	segs := []segment{{text: " "}}
	for i, tab := range m.cfg.Tabs {
		style := styles.MutedText
		if i == m.activeTab {
			style = styles.Selected
		}
		segs = append(segs,
			segment{text: " ● " + tab.Label + " ", style: style, kind: zoneTab, id: tab.ID},
			segment{text: "✕ ", style: style, kind: zoneTabClose, id: tab.ID},
			segment{text: " "},
		)
	}
	for _, chip := range tabChips {
		segs = append(segs,
			segment{text: " " + chip + " ", style: styles.FaintText},
			segment{text: " "},
		)
	}
	return bg.Layout(segs, m.width)
}

func (m Model) tabIndex(id string) int {
	for i, tab := range m.cfg.Tabs {
		if tab.ID == id {
			return i
		}
	}
	return -1
}
