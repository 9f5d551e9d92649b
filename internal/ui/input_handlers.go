package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renatNoore/to-do-app/internal/todo"
)

// handleKey routes a keystroke to the focused surface.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if m.store == nil {
		return m, nil
	}

	// Any key closes help.
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch m.focus {
	case focusEdit:
		return m.handleEditKey(msg)
	case focusInput:
		return m.handleInputKey(msg)
	default:
		return m.handleListKey(msg)
	}
}

// handleInputKey processes the add form.
func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.applyFrame(m.store.Add(m.ctx, m.input.Value()))
		if len(m.frame.Rows) > 0 {
			m.selected = 0
			m.selectedID = m.frame.Rows[0].ID
		}
		// Submission clears the field and keeps focus for the next entry.
		m.input.Reset()
		return m, nil

	case key.Matches(msg, m.keys.Cancel), msg.Type == tea.KeyTab, msg.Type == tea.KeyShiftTab:
		m.focusList()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleEditKey processes the inline editor.
func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm), key.Matches(msg, m.keys.Blur):
		return m.commitEdit()
	case key.Matches(msg, m.keys.Cancel):
		return m.cancelEdit()
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	m.store.UpdateEditText(m.editText(), m.editor.Position())
	return m, cmd
}

// handleListKey processes keys while the list has focus.
func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	row, hasRow := m.selectedRow()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()

	case key.Matches(msg, m.keys.NewItem):
		m.focusInput()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveSelection(1)
	case key.Matches(msg, m.keys.Top):
		m.moveSelection(-len(m.frame.Rows))
	case key.Matches(msg, m.keys.Bottom):
		m.moveSelection(len(m.frame.Rows))

	case key.Matches(msg, m.keys.Toggle):
		if hasRow {
			m.applyFrame(m.store.Toggle(m.ctx, row.ID))
		}

	case key.Matches(msg, m.keys.Edit), key.Matches(msg, m.keys.Activate):
		if hasRow {
			return m.beginEdit(row.ID)
		}

	case key.Matches(msg, m.keys.Delete):
		if hasRow {
			m.applyFrame(m.store.Delete(m.ctx, row.ID))
		}

	case key.Matches(msg, m.keys.ClearCompleted):
		if m.frame.ClearEnabled {
			m.applyFrame(m.store.ClearCompleted(m.ctx))
		}

	case key.Matches(msg, m.keys.FilterAll):
		m.applyFrame(m.store.SetFilter(todo.FilterAll))
	case key.Matches(msg, m.keys.FilterActive):
		m.applyFrame(m.store.SetFilter(todo.FilterActive))
	case key.Matches(msg, m.keys.FilterCompleted):
		m.applyFrame(m.store.SetFilter(todo.FilterCompleted))
	case key.Matches(msg, m.keys.CycleFilter):
		m.applyFrame(m.store.SetFilter(m.frame.Filter.Next()))
	}

	return m, nil
}

// beginEdit swaps the row's label for the inline editor. The edit trigger
// stays disabled until the follow-up release message is processed.
func (m Model) beginEdit(id string) (tea.Model, tea.Cmd) {
	frame, started := m.store.BeginEdit(id)
	m.applyFrame(frame)
	if !started {
		return m, nil
	}
	row, ok := frame.EditingRow()
	if !ok {
		// Row filtered out of view; nothing to edit in place.
		m.applyFrame(m.store.CancelEdit())
		return m, releaseEditTriggerCmd()
	}

	m.focus = focusEdit
	m.input.Blur()
	m.editor.SetValue(row.EditText)
	m.editor.SetCursor(row.Cursor)
	m.editOriginal = row.EditText
	m.editSeed = m.editor.Value()
	cmd := m.editor.Focus()
	return m, tea.Batch(cmd, releaseEditTriggerCmd())
}

func (m Model) commitEdit() (tea.Model, tea.Cmd) {
	m.store.UpdateEditText(m.editText(), m.editor.Position())
	m.applyFrame(m.store.CommitEdit(m.ctx))
	m.resetEditor()
	m.focusList()
	return m, nil
}

func (m Model) cancelEdit() (tea.Model, tea.Cmd) {
	m.applyFrame(m.store.CancelEdit())
	m.resetEditor()
	m.focusList()
	return m, nil
}

// editText is the working text to hand to the store. An editor value equal to
// what beginEdit seeded means the user changed nothing.
func (m Model) editText() string {
	if value := m.editor.Value(); value != m.editSeed {
		return value
	}
	return m.editOriginal
}

func (m *Model) resetEditor() {
	m.editor.Reset()
	m.editOriginal = ""
	m.editSeed = ""
}
