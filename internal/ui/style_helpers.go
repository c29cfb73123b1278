package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// zoneKind says what a clickable span on a band does.
type zoneKind int

const (
	zoneNone zoneKind = iota
	zoneSearch
	zoneToolbar
	zoneTab
	zoneTabClose
	zoneFormula
	zoneBottomTab
)

// hit is a clickable span [x0, x1) on one screen row.
type hit struct {
	x0, x1 int
	kind   zoneKind
	id     string
}

// segment is a run of plain text drawn with one style. Styles must not add
// padding or borders so the plain text width is the drawn width.
type segment struct {
	text  string
	style lipgloss.Style
	kind  zoneKind
	id    string
}

// BgStyle renders single-line bands on a solid background. Each segment is
// given the band background unless its style sets one, which avoids the gaps
// lipgloss leaves between separately styled runs.
type BgStyle struct {
	bg lipgloss.Color
}

// NewBgStyle creates a band renderer for the given color.
func NewBgStyle(bgColor string) BgStyle {
	return BgStyle{bg: lipgloss.Color(bgColor)}
}

// Render draws text in style over the band background.
func (b BgStyle) Render(text string, style lipgloss.Style) string {
	if text == "" {
		return ""
	}
	if _, ok := style.GetBackground().(lipgloss.NoColor); ok {
		style = style.Background(b.bg)
	}
	return style.Render(text)
}

// Spaces returns n background-colored spaces.
func (b BgStyle) Spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return lipgloss.NewStyle().Background(b.bg).Render(strings.Repeat(" ", n))
}

// Layout draws segments left to right, truncates to width and pads the rest
// with the background. It returns the drawn line and the clickable spans.
func (b BgStyle) Layout(segs []segment, width int) (string, []hit) {
	var (
		out  strings.Builder
		hits []hit
		x    int
	)
	for _, s := range segs {
		if width > 0 && x >= width {
			break
		}
		text := s.text
		w := ansi.StringWidth(text)
		if width > 0 && x+w > width {
			text = ansi.Truncate(text, width-x, "")
			w = ansi.StringWidth(text)
		}
		out.WriteString(b.Render(text, s.style))
		if s.kind != zoneNone && w > 0 {
			hits = append(hits, hit{x0: x, x1: x + w, kind: s.kind, id: s.id})
		}
		x += w
	}
	if width > x {
		out.WriteString(b.Spaces(width - x))
	}
	return out.String(), hits
}

// Split lays out left-aligned and right-aligned segment groups on one band.
func (b BgStyle) Split(left, right []segment, width int) (string, []hit) {
	gap := width - segmentsWidth(left) - segmentsWidth(right)
	if gap < 1 {
		gap = 1
	}
	segs := make([]segment, 0, len(left)+len(right)+1)
	segs = append(segs, left...)
	segs = append(segs, segment{text: strings.Repeat(" ", gap)})
	segs = append(segs, right...)
	return b.Layout(segs, width)
}

func segmentsWidth(segs []segment) int {
	n := 0
	for _, s := range segs {
		n += ansi.StringWidth(s.text)
	}
	return n
}

// hitAt returns the span containing column x.
func hitAt(hits []hit, x int) (hit, bool) {
	for _, h := range hits {
		if x >= h.x0 && x < h.x1 {
			return h, true
		}
	}
	return hit{}, false
}
