package ui

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/jobsheet/internal/grid"
)

// searchState is the live sheet search in the header.
type searchState struct {
	input   textinput.Model
	query   string
	regex   *regexp.Regexp
	invalid bool
	matches int
}

func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "Search within sheet"
	ti.CharLimit = 100
	ti.Width = searchBoxWidth - 4
	return ti
}

// handleSearchKey handles keyboard input while the search box has focus.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		if m.search.invalid {
			return m, nil
		}
		return m, m.setFocus(focusGrid)

	case key.Matches(msg, m.keys.Escape):
		m.clearSearch()
		return m, m.setFocus(focusGrid)
	}

	var cmd tea.Cmd
	m.search.input, cmd = m.search.input.Update(msg)
	m.applySearch(m.search.input.Value())
	return m, cmd
}

// applySearch compiles query as a case-insensitive regex. An invalid pattern
// keeps the last good one highlighted and flags the input.
func (m *Model) applySearch(query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		m.search.query = ""
		m.search.regex = nil
		m.search.invalid = false
		m.search.matches = 0
		return
	}

	re, err := regexp.Compile("(?i)" + query)
	if err != nil {
		m.search.invalid = true
		return
	}
	m.search.invalid = false
	m.search.query = query
	m.search.regex = re
	m.countMatches()
}

func (m *Model) clearSearch() {
	m.search.input.SetValue("")
	m.applySearch("")
}

// countMatches counts record cells whose display text matches the search.
func (m *Model) countMatches() {
	m.search.matches = 0
	if m.search.regex == nil {
		return
	}
	sh := m.sheet()
	for r := range sh.Records {
		for c := range sh.Columns {
			if rec, col, ok := sh.Cell(grid.Pos{Row: r, Col: c}); ok {
				if m.search.regex.MatchString(rec.Display(col.Accessor)) {
					m.search.matches++
				}
			}
		}
	}
}

func (m Model) cellMatches(text string) bool {
	return m.search.regex != nil && text != "" && m.search.regex.MatchString(text)
}
