package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// truncate shortens s to at most limit cells, adding an ellipsis if needed.
func truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= limit {
		return s
	}
	if limit == 1 {
		return ansi.Truncate(s, 1, "")
	}
	return ansi.Truncate(s, limit, "…")
}

// fit truncates s to width cells and pads it, on the left when alignRight.
func fit(s string, width int, alignRight bool) string {
	s = truncate(s, width)
	pad := width - ansi.StringWidth(s)
	if pad <= 0 {
		return s
	}
	if alignRight {
		return strings.Repeat(" ", pad) + s
	}
	return s + strings.Repeat(" ", pad)
}

// initials returns up to two capital initials of a name.
func initials(name string) string {
	var out []rune
	for _, part := range strings.Fields(name) {
		for _, r := range part {
			out = append(out, []rune(strings.ToUpper(string(r)))...)
			break
		}
		if len(out) == 2 {
			break
		}
	}
	return string(out)
}
