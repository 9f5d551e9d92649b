package ui

import (
	"context"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/renatNoore/to-do-app/internal/prefs"
	"github.com/renatNoore/to-do-app/internal/state"
	"github.com/renatNoore/to-do-app/internal/storage"
	"github.com/renatNoore/to-do-app/internal/view"
)

// focus is where keystrokes are routed.
type focus int

const (
	focusList focus = iota
	focusInput
	focusEdit
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	Prefs     storage.Backend // where the theme preference is saved; nil disables saving
	ThemeName string
	Logger    *log.Logger
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx    context.Context
	store  *state.Store
	prefs  storage.Backend
	logger *log.Logger

	// UI state
	theme    Theme
	keys     keyMap
	help     help.Model
	width    int
	height   int
	ready    bool
	focus    focus
	showHelp bool

	// Latest render of the store
	frame      view.Frame
	selected   int
	selectedID string

	input  textinput.Model // add form
	editor textinput.Model // inline edit field

	// The item's text when the edit began and the editor value it produced.
	// textinput rewrites tabs and newlines, so an untouched editor maps back
	// to editOriginal rather than its own value.
	editOriginal string
	editSeed     string
	list   viewport.Model
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	input := textinput.New()
	input.Placeholder = "What needs to be done?"
	input.Prompt = "› "
	input.CharLimit = 0

	editor := textinput.New()
	editor.Prompt = ""
	editor.CharLimit = 0

	m := Model{
		ctx:    ctx,
		store:  opts.Store,
		prefs:  opts.Prefs,
		logger: logger,
		theme:  GetTheme(opts.ThemeName),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		input:  input,
		editor: editor,
		list:   viewport.New(0, 0),
	}
	if m.store != nil {
		m.applyFrame(m.store.Render())
	}
	// The add form has focus on start.
	m.focusInput()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resize()
		return m, nil

	case tea.BlurMsg:
		// Losing terminal focus counts as leaving the edit field.
		if m.focus == focusEdit {
			return m.commitEdit()
		}
		return m, nil

	case editTriggerReleasedMsg:
		if m.store != nil {
			m.store.ReleaseEditTrigger()
		}
		return m, nil
	}

	// Cursor blink and other component messages.
	var cmd tea.Cmd
	switch m.focus {
	case focusInput:
		m.input, cmd = m.input.Update(msg)
	case focusEdit:
		m.editor, cmd = m.editor.Update(msg)
	}
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// applyFrame installs a fresh render and keeps the selection on the same
// item when it is still visible.
func (m *Model) applyFrame(frame view.Frame) {
	m.frame = frame

	if len(frame.Rows) == 0 {
		m.selected = 0
		m.selectedID = ""
		return
	}
	if idx := frame.RowIndex(m.selectedID); idx >= 0 {
		m.selected = idx
	}
	if m.selected >= len(frame.Rows) {
		m.selected = len(frame.Rows) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
	m.selectedID = frame.Rows[m.selected].ID
}

// selectedRow returns the row under the cursor.
func (m Model) selectedRow() (view.Row, bool) {
	if m.selected < 0 || m.selected >= len(m.frame.Rows) {
		return view.Row{}, false
	}
	return m.frame.Rows[m.selected], true
}

func (m *Model) moveSelection(delta int) {
	if len(m.frame.Rows) == 0 {
		return
	}
	m.selected += delta
	if m.selected < 0 {
		m.selected = 0
	}
	if m.selected >= len(m.frame.Rows) {
		m.selected = len(m.frame.Rows) - 1
	}
	m.selectedID = m.frame.Rows[m.selected].ID
}

func (m *Model) focusInput() {
	m.focus = focusInput
	m.editor.Blur()
	m.input.Focus()
}

func (m *Model) focusList() {
	m.focus = focusList
	m.input.Blur()
	m.editor.Blur()
}

func (m *Model) resize() {
	m.input.Width = max(m.width-6, 10)
	m.editor.Width = max(m.width-12, 10)
	m.help.Width = m.width
	m.list.Width = m.width
	m.list.Height = max(m.height-listChromeHeight, 1)
}

func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	if m.prefs == nil {
		return
	}
	if err := prefs.Save(m.ctx, m.prefs, prefs.Prefs{Theme: m.theme.Name}); err != nil {
		m.logger.Warn("save theme preference failed", "err", err)
	}
}

// Messages

// editTriggerReleasedMsg arrives on the loop turn after an edit begins.
type editTriggerReleasedMsg struct{}

// Commands

// releaseEditTriggerCmd schedules the edit trigger re-enable as a zero-delay
// follow-up task.
func releaseEditTriggerCmd() tea.Cmd {
	return func() tea.Msg {
		return editTriggerReleasedMsg{}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	programOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithReportFocus()}
	if opts.Context != nil {
		programOpts = append(programOpts, tea.WithContext(opts.Context))
	}
	p := tea.NewProgram(m, programOpts...)
	_, err := p.Run()
	return err
}
