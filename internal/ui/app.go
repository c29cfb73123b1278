package ui

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/jobsheet/internal/config"
	"github.com/five82/jobsheet/internal/grid"
	"github.com/five82/jobsheet/internal/logging"
	"github.com/five82/jobsheet/internal/prefs"
	"github.com/five82/jobsheet/internal/state"
)

// focusArea is the widget receiving keyboard input.
type focusArea int

const (
	focusGrid focusArea = iota
	focusFormula
	focusSearch
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	Config    config.Config
	ThemeName string
	PrefsPath string
	BottomTab string // id of the bottom tab to highlight initially
	Notifier  Notifier
	Logger    *slog.Logger
}

// Model is the root Bubble Tea model. It owns the record store and the grid
// state, and is the only caller of Store.Apply.
type Model struct {
	// Configuration
	store     *state.Store
	cfg       config.Config
	prefsPath string
	notifier  Notifier
	logger    *slog.Logger
	keys      keyMap
	now       func() time.Time

	// UI state
	theme    Theme
	help     help.Model
	width    int
	height   int
	ready    bool
	showHelp bool
	focus    focusArea

	// Grid state
	grid      grid.State
	cellInput textinput.Model
	rowOffset int
	colOffset int

	lastClick    time.Time
	lastClickPos grid.Pos
	hasLastClick bool

	// Shell state
	formula   textinput.Model
	search    searchState
	activeTab int
	bottomTab int
}

// New creates the root model.
func New(opts Options) Model {
	store := opts.Store
	if store == nil {
		store = state.NewStore(nil, nil)
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	notifier := opts.Notifier
	if notifier == nil {
		notifier = LogNotifier{Logger: logger}
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Slate"
	}
	theme := GetTheme(themeName)

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	cellInput := textinput.New()
	cellInput.Prompt = ""

	formula := textinput.New()
	formula.Prompt = ""
	formula.Placeholder = "Select a cell"

	m := Model{
		store:     store,
		cfg:       opts.Config,
		prefsPath: prefsPath,
		notifier:  notifier,
		logger:    logger,
		keys:      DefaultKeyMap(),
		now:       time.Now,
		theme:     theme,
		help:      newHelp(theme),
		cellInput: cellInput,
		formula:   formula,
		search:    searchState{input: newSearchInput()},
	}
	if i := m.bottomTabIndex(opts.BottomTab); i >= 0 {
		m.bottomTab = i
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width - 2
		m.formula.Width = msg.Width - formulaRefWidth - 9
		m.ready = true
		m.ensureVisible()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.BlurMsg:
		// The terminal lost focus; a pending cell edit is committed.
		if m.focus == focusGrid {
			return m, m.dispatch(grid.Blur{})
		}
		return m, nil

	case tea.FocusMsg:
		return m, nil
	}

	// Cursor blink and other widget messages.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.cellInput, cmd = m.cellInput.Update(msg)
	cmds = append(cmds, cmd)
	m.formula, cmd = m.formula.Update(msg)
	cmds = append(cmds, cmd)
	m.search.input, cmd = m.search.input.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	header, _ := m.headerBand()
	toolbar, _ := m.toolbarBand()
	tabs, _ := m.tabBarBand()
	formula, _ := m.formulaBand()
	bottom, _ := m.bottomTabsBand()

	lines := []string{header, toolbar, tabs, formula}
	lines = append(lines, m.renderGrid()...)
	lines = append(lines, bottom, m.progressLine(), m.renderFooter())
	return strings.Join(lines, "\n")
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes help.
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.setTheme(NextTheme(m.theme.Name))
		return m, nil

	case key.Matches(msg, m.keys.Search):
		return m, m.setFocus(focusSearch)

	case key.Matches(msg, m.keys.Formula):
		return m, m.setFocus(focusFormula)

	case key.Matches(msg, m.keys.CloseTab):
		if m.activeTab >= 0 && m.activeTab < len(m.cfg.Tabs) {
			m.notify(TabClosed{ID: m.cfg.Tabs[m.activeTab].ID})
		}
		return m, nil

	case key.Matches(msg, m.keys.NextBottom):
		m.stepBottomTab(1)
		return m, nil

	case key.Matches(msg, m.keys.PrevBottom):
		m.stepBottomTab(-1)
		return m, nil
	}

	if msg.Alt {
		if id, ok := toolbarAccel(msg.String()); ok {
			m.notify(ToolbarAction{ID: id})
			return m, nil
		}
	}

	switch m.focus {
	case focusSearch:
		return m.handleSearchKey(msg)
	case focusFormula:
		return m.handleFormulaKey(msg)
	}
	return m.handleGridKey(msg)
}

// handleGridKey translates keys into grid events.
func (m Model) handleGridKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		return m, m.dispatch(grid.KeyPress{Key: grid.KeyEnter})
	case key.Matches(msg, m.keys.Escape):
		return m, m.dispatch(grid.KeyPress{Key: grid.KeyEscape})
	case key.Matches(msg, m.keys.ToggleRow):
		if p, ok := m.grid.Selection(); ok {
			if rec, _, ok := m.sheet().Cell(p); ok {
				return m, m.dispatch(grid.ToggleRow{RecordID: rec.ID})
			}
		}
		return m, nil
	}

	if m.grid.Mode == grid.Editing {
		var cmd tea.Cmd
		m.cellInput, cmd = m.cellInput.Update(msg)
		return m, tea.Batch(cmd, m.dispatch(grid.Input{Text: m.cellInput.Value()}))
	}

	switch {
	case key.Matches(msg, m.keys.First):
		return m, m.dispatch(grid.Click{Pos: grid.Pos{}})
	case key.Matches(msg, m.keys.Up):
		return m, m.dispatch(grid.KeyPress{Key: grid.KeyUp})
	case key.Matches(msg, m.keys.Down):
		return m, m.dispatch(grid.KeyPress{Key: grid.KeyDown})
	case key.Matches(msg, m.keys.Left):
		return m, m.dispatch(grid.KeyPress{Key: grid.KeyLeft})
	case key.Matches(msg, m.keys.Right):
		return m, m.dispatch(grid.KeyPress{Key: grid.KeyRight})
	case key.Matches(msg, m.keys.Edit):
		return m, m.dispatch(grid.KeyPress{Key: grid.KeyEdit})
	case key.Matches(msg, m.keys.Backspace):
		return m, m.dispatch(grid.KeyPress{Key: grid.KeyBackspace})
	}

	var cmds []tea.Cmd
	for _, r := range typedRunes(msg) {
		cmds = append(cmds, m.dispatch(grid.KeyPress{Key: grid.KeyRune, Rune: r}))
	}
	return m, tea.Batch(cmds...)
}

// typedRunes returns the printable text carried by a key message.
func typedRunes(msg tea.KeyMsg) []rune {
	if msg.Alt {
		return nil
	}
	switch msg.Type {
	case tea.KeyRunes:
		return msg.Runes
	case tea.KeySpace:
		return []rune{' '}
	}
	return nil
}

// sheet returns the grid's view of the current records and columns.
func (m Model) sheet() grid.Sheet {
	return grid.Sheet{Records: m.store.Records(), Columns: m.store.Columns()}
}

// dispatch runs one grid transition, applies its effects to the store and
// reports them, then brings the widgets in line with the new state.
func (m *Model) dispatch(ev grid.Event) tea.Cmd {
	prev := m.grid
	next, effects := grid.Step(m.grid, ev, m.sheet())
	m.grid = next

	for _, e := range effects {
		switch e := e.(type) {
		case grid.FieldCommitted:
			applied := m.store.Apply(e.RecordID, e.ColumnID, e.Value)
			m.notify(FieldCommitted{RecordID: e.RecordID, ColumnID: e.ColumnID, Value: e.Value, Applied: applied})
			if applied {
				m.countMatches()
			}
		case grid.RowToggled:
			m.notify(RowSelected{RecordID: e.RecordID})
		}
	}

	cmd := m.syncEditor(prev)
	m.syncFormula()
	m.ensureVisible()
	return cmd
}

// syncEditor loads the cell input when an edit starts and releases it when
// the edit ends.
func (m *Model) syncEditor(prev grid.State) tea.Cmd {
	if m.grid.Mode != grid.Editing {
		m.cellInput.Blur()
		m.cellInput.SetValue("")
		return nil
	}
	if prev.Mode != grid.Editing || prev.Cursor != m.grid.Cursor || m.cellInput.Value() != m.grid.Buffer {
		m.cellInput.SetValue(m.grid.Buffer)
		m.cellInput.CursorEnd()
	}
	if col, ok := m.store.Columns().At(m.grid.Cursor.Col); ok {
		m.cellInput.Width = col.Width - 4
	}
	return m.cellInput.Focus()
}

// setFocus moves keyboard focus. Leaving the grid is a grid blur, so a
// pending edit is committed first.
func (m *Model) setFocus(target focusArea) tea.Cmd {
	if m.focus == target {
		return nil
	}
	var cmds []tea.Cmd
	if m.focus == focusGrid {
		cmds = append(cmds, m.dispatch(grid.Blur{}))
	}
	m.formula.Blur()
	m.search.input.Blur()
	m.focus = target

	switch target {
	case focusFormula:
		cmds = append(cmds, m.formula.Focus())
	case focusSearch:
		cmds = append(cmds, m.search.input.Focus())
	default:
		m.syncFormula()
	}
	return tea.Batch(cmds...)
}

func (m *Model) setTheme(name string) {
	m.theme = GetTheme(name)
	m.help = newHelp(m.theme)
	m.help.Width = m.width - 2
	m.savePrefs()
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{Theme: m.theme.Name}
	if m.bottomTab < len(m.cfg.BottomTabs) {
		p.BottomTab = m.cfg.BottomTabs[m.bottomTab].ID
	}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.logger.Warn("save prefs failed", "path", m.prefsPath, "error", err)
	}
}

func (m *Model) notify(e Event) {
	if m.notifier != nil {
		m.notifier.Notify(e)
	}
}

// Run starts the Bubble Tea program and blocks until it exits or the
// context is cancelled.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	m := New(opts)
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
