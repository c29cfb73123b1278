package ui

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestFitPadsAndTruncates(t *testing.T) {
	cases := []struct {
		in    string
		width int
		right bool
		want  string
	}{
		{"abc", 5, false, "abc  "},
		{"abc", 5, true, "  abc"},
		{"abcdef", 4, false, "abc…"},
		{"abcdef", 1, false, "a"},
		{"", 0, false, ""},
	}
	for _, tc := range cases {
		if got := fit(tc.in, tc.width, tc.right); got != tc.want {
			t.Fatalf("fit(%q, %d, %v) = %q, want %q", tc.in, tc.width, tc.right, got, tc.want)
		}
	}
}

func TestInitials(t *testing.T) {
	cases := map[string]string{
		"John Doe":        "JD",
		"ada":             "A",
		"Mary Ann Walker": "MA",
		"":                "",
	}
	for in, want := range cases {
		if got := initials(in); got != want {
			t.Fatalf("initials(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLayoutRecordsHitSpans(t *testing.T) {
	bg := NewBgStyle("#000000")
	line, hits := bg.Layout([]segment{
		{text: "ab"},
		{text: "cde", kind: zoneToolbar, id: "sort"},
		{text: "  "},
		{text: "xyz", kind: zoneTab, id: "t1"},
	}, 8)

	if w := ansi.StringWidth(line); w != 8 {
		t.Fatalf("line width = %d, want 8", w)
	}
	if len(hits) != 2 {
		t.Fatalf("hits = %+v, want 2", hits)
	}
	if hits[0] != (hit{x0: 2, x1: 5, kind: zoneToolbar, id: "sort"}) {
		t.Fatalf("hits[0] = %+v", hits[0])
	}
	// Truncated to the band width.
	if hits[1] != (hit{x0: 7, x1: 8, kind: zoneTab, id: "t1"}) {
		t.Fatalf("hits[1] = %+v", hits[1])
	}

	if h, ok := hitAt(hits, 4); !ok || h.id != "sort" {
		t.Fatalf("hitAt(4) = %+v %v, want sort", h, ok)
	}
	if _, ok := hitAt(hits, 5); ok {
		t.Fatalf("hitAt(5) should miss")
	}
}

func TestToolbarAccel(t *testing.T) {
	cases := map[string]string{
		"alt+h": "hide-fields",
		"alt+s": "sort",
		"alt+f": "filter",
		"alt+v": "cell-view",
		"alt+i": "import",
		"alt+e": "export",
		"alt+r": "share",
		"alt+n": "new-action",
	}
	for k, want := range cases {
		if got, ok := toolbarAccel(k); !ok || got != want {
			t.Fatalf("toolbarAccel(%q) = %q %v, want %q", k, got, ok, want)
		}
	}
	if _, ok := toolbarAccel("alt+z"); ok {
		t.Fatalf("toolbarAccel(alt+z) should miss")
	}
}
