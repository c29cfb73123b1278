package ui

// toolbarItem is one toolbar button.
type toolbarItem struct {
	id      string
	label   string
	accel   string // alt-key accelerator
	primary bool
}

// Left group first, then the right-aligned group.
var (
	toolbarLeft = []toolbarItem{
		{id: "hide-fields", label: "Hide fields", accel: "alt+h"},
		{id: "sort", label: "Sort", accel: "alt+s"},
		{id: "filter", label: "Filter", accel: "alt+f"},
		{id: "cell-view", label: "Cell view", accel: "alt+v"},
	}
	toolbarRight = []toolbarItem{
		{id: "import", label: "Import", accel: "alt+i"},
		{id: "export", label: "Export", accel: "alt+e"},
		{id: "share", label: "Share", accel: "alt+r"},
		{id: "new-action", label: "New Action", accel: "alt+n", primary: true},
	}
)

// toolbarAccel returns the toolbar action bound to an accelerator key.
func toolbarAccel(keyName string) (string, bool) {
	for _, group := range [][]toolbarItem{toolbarLeft, toolbarRight} {
		for _, item := range group {
			if item.accel == keyName {
				return item.id, true
			}
		}
	}
	return "", false
}

func (m Model) toolbarBand() (string, []hit) {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	left := []segment{{text: " Tool bar › ", style: styles.MutedText}}
	for _, item := range toolbarLeft {
		left = append(left,
			segment{text: " " + item.label + " ", style: styles.Text, kind: zoneToolbar, id: item.id},
			segment{text: " "},
		)
	}

	var right []segment
	for _, item := range toolbarRight {
		style := styles.Text
		if item.primary {
			style = styles.Primary
		}
		right = append(right,
			segment{text: " "},
			segment{text: " " + item.label + " ", style: style, kind: zoneToolbar, id: item.id},
		)
	}
	right = append(right, segment{text: " "})

	return bg.Split(left, right, m.width)
}
