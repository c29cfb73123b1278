package ui

import (
	"strconv"
	"strings"
)

// headerBand renders the top bar: title, breadcrumbs, search box,
// notifications and the current user.
func (m Model) headerBand() (string, []hit) {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	left := []segment{
		{text: " ▦ ", style: styles.AccentText.Bold(true)},
		{text: m.cfg.Title, style: styles.Text.Bold(true)},
		{text: "   "},
	}
	for i, crumb := range m.cfg.Breadcrumbs {
		style := styles.MutedText
		if i == len(m.cfg.Breadcrumbs)-1 {
			style = styles.Text
		}
		if i > 0 {
			left = append(left, segment{text: " › ", style: styles.FaintText})
		}
		left = append(left, segment{text: crumb, style: style})
	}
	if len(m.cfg.Breadcrumbs) > 0 {
		left = append(left, segment{text: " ⋯", style: styles.FaintText})
	}

	right := []segment{
		m.searchSegment(styles),
		{text: "  "},
		{text: "🔔 " + strconv.Itoa(m.cfg.Notifications), style: styles.MutedText},
		{text: "  "},
	}
	if ini := initials(m.cfg.User.Name); ini != "" {
		right = append(right,
			segment{text: " " + ini + " ", style: styles.Primary},
			segment{text: " "},
		)
	}
	right = append(right,
		segment{text: m.cfg.User.Name, style: styles.Text},
		segment{text: " " + m.cfg.User.Email + " ", style: styles.FaintText},
	)

	return bg.Split(left, right, m.width)
}

func (m Model) searchSegment(styles Styles) segment {
	inner := searchBoxWidth - 2
	var text string
	style := styles.MutedText
	switch {
	case m.focus == focusSearch:
		text = m.search.input.View()
		style = styles.Editing
		if m.search.invalid {
			style = styles.Editing.Foreground(styles.DangerText.GetForeground())
		}
	case m.search.regex != nil:
		text = m.search.query + "  " + matchLabel(m.search.matches)
		style = styles.AccentText
	default:
		text = "Search within sheet"
		style = styles.FaintText
	}
	return segment{
		text:  "⌕ " + fit(strings.TrimRight(text, " "), inner, false),
		style: style,
		kind:  zoneSearch,
	}
}

func matchLabel(n int) string {
	if n == 1 {
		return "1 match"
	}
	return strconv.Itoa(n) + " matches"
}
