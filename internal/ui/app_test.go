package ui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/jobsheet/internal/config"
	"github.com/five82/jobsheet/internal/grid"
	"github.com/five82/jobsheet/internal/sheet"
	"github.com/five82/jobsheet/internal/state"
)

const (
	testWidth  = 160
	testHeight = 40
)

type harness struct {
	m      Model
	store  *state.Store
	events []Event
	clock  time.Time
	prefs  string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		store: state.NewStore(sheet.DefaultRecords(), sheet.DefaultColumns()),
		clock: time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
		prefs: filepath.Join(t.TempDir(), "prefs.toml"),
	}
	h.m = New(Options{
		Store:     h.store,
		Config:    config.Default(),
		PrefsPath: h.prefs,
		Notifier:  NotifierFunc(func(e Event) { h.events = append(h.events, e) }),
	})
	h.m.now = func() time.Time { return h.clock }
	h.send(tea.WindowSizeMsg{Width: testWidth, Height: testHeight})
	return h
}

func (h *harness) send(msg tea.Msg) {
	next, _ := h.m.Update(msg)
	h.m = next.(Model)
}

func (h *harness) key(t tea.KeyType) {
	h.send(tea.KeyMsg{Type: t})
}

func (h *harness) typeText(s string) {
	h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func (h *harness) press(x, y int) {
	h.send(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
}

// pressCell clicks the middle of a grid cell, assuming no scrolling.
func (h *harness) pressCell(t *testing.T, row int, columnID string) {
	t.Helper()
	x := gutterWidth
	for _, c := range h.store.Columns() {
		if c.ID == columnID {
			h.press(x+c.Width/2, rowGridBody+row)
			return
		}
		x += c.Width
	}
	t.Fatalf("column %q not found", columnID)
}

func (h *harness) pressZone(t *testing.T, y int, hits []hit, kind zoneKind, id string) {
	t.Helper()
	for _, z := range hits {
		if z.kind == kind && z.id == id {
			h.press(z.x0, y)
			return
		}
	}
	t.Fatalf("no zone %v %q in %+v", kind, id, hits)
}

func lastEvent(t *testing.T, h *harness) Event {
	t.Helper()
	if len(h.events) == 0 {
		t.Fatalf("no events recorded")
	}
	return h.events[len(h.events)-1]
}

func TestDoubleClickEditCommitsToStore(t *testing.T) {
	h := newHarness(t)
	before := h.store.Records()

	h.pressCell(t, 0, "est-value")
	h.clock = h.clock.Add(150 * time.Millisecond)
	h.pressCell(t, 0, "est-value")

	if h.m.grid.Mode != grid.Editing {
		t.Fatalf("Mode = %v, want editing", h.m.grid.Mode)
	}
	if got := h.m.cellInput.Value(); got != "6200000" {
		t.Fatalf("cell input = %q, want 6200000", got)
	}

	h.key(tea.KeyCtrlU)
	h.typeText("7,500,000")
	if got := h.m.formula.Value(); got != "7,500,000" {
		t.Fatalf("formula bar = %q, want the live buffer", got)
	}
	h.key(tea.KeyEnter)

	after := h.store.Records()
	if after[0].EstValue != 7500000 {
		t.Fatalf("EstValue = %d, want 7500000", after[0].EstValue)
	}
	for i := 1; i < len(after); i++ {
		if after[i] != before[i] {
			t.Fatalf("record %d replaced, want shared pointer", i)
		}
	}

	want := FieldCommitted{RecordID: "1", ColumnID: "est-value", Value: sheet.Number(7500000), Applied: true}
	if got := lastEvent(t, h); got != want {
		t.Fatalf("last event = %#v, want %#v", got, want)
	}
	if h.m.grid.Mode != grid.Selected {
		t.Fatalf("Mode = %v, want selected", h.m.grid.Mode)
	}
}

func TestSlowSecondPressIsSingleClick(t *testing.T) {
	h := newHarness(t)
	h.pressCell(t, 1, "assigned")
	h.clock = h.clock.Add(DoubleClickWindow + time.Millisecond)
	h.pressCell(t, 1, "assigned")
	if h.m.grid.Mode != grid.Selected {
		t.Fatalf("Mode = %v, want selected", h.m.grid.Mode)
	}
}

func TestDoubleClickOnBadgeDoesNotEdit(t *testing.T) {
	h := newHarness(t)
	h.pressCell(t, 2, "priority")
	h.pressCell(t, 2, "priority")
	if h.m.grid.Mode != grid.Selected {
		t.Fatalf("Mode = %v, want selected", h.m.grid.Mode)
	}
	h.key(tea.KeyEnter)
	h.typeText("x")
	if h.m.grid.Mode != grid.Selected {
		t.Fatalf("Mode = %v, want selected after keys on badge", h.m.grid.Mode)
	}
	if len(h.events) != 0 {
		t.Fatalf("events = %v, want none", h.events)
	}
}

func TestTerminalBlurCommitsEdit(t *testing.T) {
	h := newHarness(t)
	h.pressCell(t, 1, "job-request")
	h.typeText("N")
	h.typeText("ew title")
	h.send(tea.BlurMsg{})

	if got := h.store.Records()[1].JobRequest; got != "New title" {
		t.Fatalf("JobRequest = %q, want %q", got, "New title")
	}
	if h.m.grid.Mode != grid.Selected {
		t.Fatalf("Mode = %v, want selected", h.m.grid.Mode)
	}
}

func TestFocusChangeCommitsAndFormulaSubmit(t *testing.T) {
	h := newHarness(t)
	h.pressCell(t, 0, "assigned")
	h.key(tea.KeyF2)
	h.typeText("!")
	h.send(tea.KeyMsg{Type: tea.KeyCtrlL})

	if got := h.store.Records()[0].Assigned; got != "Sophie Choudhury!" {
		t.Fatalf("Assigned = %q, want commit on focus change", got)
	}
	if h.m.focus != focusFormula {
		t.Fatalf("focus = %v, want formula", h.m.focus)
	}
	if got := h.m.formula.Value(); got != "Sophie Choudhury!" {
		t.Fatalf("formula = %q, want mirrored value", got)
	}

	version := h.store.Version()
	h.typeText("=SUM(A1)")
	h.key(tea.KeyEnter)

	want := FormulaSubmitted{Value: "Sophie Choudhury!=SUM(A1)"}
	if got := lastEvent(t, h); got != want {
		t.Fatalf("last event = %#v, want %#v", got, want)
	}
	if h.store.Version() != version {
		t.Fatalf("formula submit changed the store")
	}
	if h.m.focus != focusGrid {
		t.Fatalf("focus = %v, want grid", h.m.focus)
	}
}

func TestEscapeDiscardsEdit(t *testing.T) {
	h := newHarness(t)
	h.pressCell(t, 3, "submitter")
	h.typeText("Zed")
	h.key(tea.KeyEsc)
	if got := h.store.Records()[3].Submitter; got != "Emily Green" {
		t.Fatalf("Submitter = %q, want unchanged", got)
	}
	if h.store.Version() != 0 {
		t.Fatalf("Version = %d, want 0", h.store.Version())
	}
}

func TestKeyboardNavigation(t *testing.T) {
	h := newHarness(t)
	h.key(tea.KeyDown)
	if h.m.grid.Mode != grid.Idle {
		t.Fatalf("arrows should be ignored while idle")
	}

	h.key(tea.KeyHome)
	if p, ok := h.m.grid.Selection(); !ok || p != (grid.Pos{}) {
		t.Fatalf("Selection = %+v %v, want A1", p, ok)
	}
	for i := 0; i < 20; i++ {
		h.key(tea.KeyDown)
		h.key(tea.KeyRight)
	}
	want := grid.Pos{Row: 4, Col: 8}
	if p, _ := h.m.grid.Selection(); p != want {
		t.Fatalf("Selection = %+v, want %+v", p, want)
	}
	if !strings.Contains(h.m.View(), "I5") {
		t.Fatalf("formula bar should show I5")
	}
}

func TestGutterClickAndCtrlRToggleRow(t *testing.T) {
	h := newHarness(t)
	h.press(1, rowGridBody+2)
	if !h.m.grid.IsChecked("3") {
		t.Fatalf("row 3 not checked after gutter click")
	}
	if got := lastEvent(t, h); got != (RowSelected{RecordID: "3"}) {
		t.Fatalf("last event = %#v, want RowSelected 3", got)
	}

	// Placeholder rows have no checkbox.
	h.press(1, rowGridBody+10)
	if len(h.events) != 1 {
		t.Fatalf("events = %v, want one", h.events)
	}

	h.pressCell(t, 2, "url")
	h.send(tea.KeyMsg{Type: tea.KeyCtrlR})
	if h.m.grid.IsChecked("3") {
		t.Fatalf("ctrl+r should untick row 3")
	}
}

func TestToolbarClickAndAccelerator(t *testing.T) {
	h := newHarness(t)
	_, hits := h.m.toolbarBand()
	h.pressZone(t, rowToolbar, hits, zoneToolbar, "sort")
	if got := lastEvent(t, h); got != (ToolbarAction{ID: "sort"}) {
		t.Fatalf("last event = %#v, want sort", got)
	}

	h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}, Alt: true})
	if got := lastEvent(t, h); got != (ToolbarAction{ID: "new-action"}) {
		t.Fatalf("last event = %#v, want new-action", got)
	}
}

func TestTabBarEvents(t *testing.T) {
	h := newHarness(t)
	_, hits := h.m.tabBarBand()

	h.pressZone(t, rowTabBar, hits, zoneTab, "q3-overview")
	if got := lastEvent(t, h); got != (TabChanged{ID: "q3-overview"}) {
		t.Fatalf("last event = %#v, want TabChanged", got)
	}
	h.pressZone(t, rowTabBar, hits, zoneTabClose, "q3-overview")
	if got := lastEvent(t, h); got != (TabClosed{ID: "q3-overview"}) {
		t.Fatalf("last event = %#v, want TabClosed", got)
	}
	h.send(tea.KeyMsg{Type: tea.KeyCtrlW})
	if len(h.events) != 3 {
		t.Fatalf("events = %d, want 3", len(h.events))
	}
	if len(h.m.cfg.Tabs) != 1 {
		t.Fatalf("tab list changed: %v", h.m.cfg.Tabs)
	}
}

func TestBottomTabsRememberedInPrefs(t *testing.T) {
	h := newHarness(t)
	h.send(tea.KeyMsg{Type: tea.KeyCtrlPgDown})
	if got := lastEvent(t, h); got != (BottomTabChanged{ID: "pending"}) {
		t.Fatalf("last event = %#v, want pending", got)
	}

	h.send(tea.KeyMsg{Type: tea.KeyCtrlPgUp})
	h.send(tea.KeyMsg{Type: tea.KeyCtrlPgUp})
	if got := lastEvent(t, h); got != (BottomTabChanged{ID: "arrived"}) {
		t.Fatalf("last event = %#v, want arrived (wraps)", got)
	}

	_, hits := h.m.bottomTabsBand()
	h.pressZone(t, rowGridBody+h.m.bodyHeight(), hits, zoneBottomTab, "reviewed")
	if h.m.bottomTab != 2 {
		t.Fatalf("bottomTab = %d, want 2", h.m.bottomTab)
	}

	data, err := os.ReadFile(h.prefs)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "reviewed") {
		t.Fatalf("prefs = %q, want bottom_tab reviewed", data)
	}
}

func TestSearchHighlightsAndClears(t *testing.T) {
	h := newHarness(t)
	h.send(tea.KeyMsg{Type: tea.KeyCtrlF})
	if h.m.focus != focusSearch {
		t.Fatalf("focus = %v, want search", h.m.focus)
	}

	h.typeText("in-progress")
	if h.m.search.matches != 2 {
		t.Fatalf("matches = %d, want 2", h.m.search.matches)
	}

	h.typeText("(")
	if !h.m.search.invalid {
		t.Fatalf("invalid regex not flagged")
	}
	h.key(tea.KeyEnter)
	if h.m.focus != focusSearch {
		t.Fatalf("Enter with an invalid pattern should keep the search open")
	}

	h.key(tea.KeyEsc)
	if h.m.focus != focusGrid || h.m.search.regex != nil || h.m.search.input.Value() != "" {
		t.Fatalf("Esc should clear the search: %+v", h.m.search)
	}
}

func TestThemeCycleSavesPrefs(t *testing.T) {
	h := newHarness(t)
	h.send(tea.KeyMsg{Type: tea.KeyCtrlT})
	if h.m.theme.Name != "Nightfox" {
		t.Fatalf("theme = %q, want Nightfox", h.m.theme.Name)
	}
	data, err := os.ReadFile(h.prefs)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "Nightfox") {
		t.Fatalf("prefs = %q, want Nightfox", data)
	}
}

func TestHelpOverlay(t *testing.T) {
	h := newHarness(t)
	h.key(tea.KeyF1)
	if !h.m.showHelp || !strings.Contains(h.m.View(), "Keyboard Shortcuts") {
		t.Fatalf("help overlay not shown")
	}
	h.typeText("x")
	if h.m.showHelp {
		t.Fatalf("any key should close help")
	}
	if h.m.grid.Mode != grid.Idle {
		t.Fatalf("key that closed help reached the grid")
	}
}

func TestViewFillsScreen(t *testing.T) {
	h := newHarness(t)
	out := h.m.View()
	lines := strings.Split(out, "\n")
	if len(lines) != testHeight {
		t.Fatalf("View has %d lines, want %d", len(lines), testHeight)
	}
	for _, want := range []string{"Spreadsheet style", "Q3 Financial Overview", "6,200,000", "In-progress", "All Orders"} {
		if !strings.Contains(out, want) {
			t.Fatalf("View missing %q", want)
		}
	}
}

func TestWheelScrollsWithoutSelecting(t *testing.T) {
	h := newHarness(t)
	h.send(tea.WindowSizeMsg{Width: testWidth, Height: 16})
	h.send(tea.MouseMsg{X: 20, Y: rowGridBody, Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	if h.m.rowOffset != wheelStep {
		t.Fatalf("rowOffset = %d, want %d", h.m.rowOffset, wheelStep)
	}
	if h.m.grid.Mode != grid.Idle {
		t.Fatalf("wheel should not select")
	}
	for i := 0; i < 20; i++ {
		h.send(tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	}
	if maxOffset := h.m.totalRows() - h.m.bodyHeight(); h.m.rowOffset != maxOffset {
		t.Fatalf("rowOffset = %d, want clamp at %d", h.m.rowOffset, maxOffset)
	}
}
