// Package view projects the item collection, the active filter and any edit
// session into a Frame describing what the list should display.
package view

import (
	"github.com/renatNoore/to-do-app/internal/edit"
	"github.com/renatNoore/to-do-app/internal/todo"
)

// Row is one visual row, keyed by the item it represents.
type Row struct {
	ID        string
	Text      string
	Completed bool

	// Set only on the row whose item is being edited.
	Editing  bool
	EditText string
	Cursor   int
}

// FilterButton is one filter selector and its pressed state.
type FilterButton struct {
	Filter  todo.Filter
	Label   string
	Pressed bool
}

// Frame is the complete description of a rendered list.
type Frame struct {
	Filter        todo.Filter
	Rows          []Row
	Filters       []FilterButton
	Total         int
	Remaining     int
	RemainingText string
	ClearEnabled  bool
}

// Render rebuilds every row from scratch for the items visible under filter.
func Render(c todo.Collection, filter todo.Filter, session *edit.Session) Frame {
	if _, ok := todo.ParseFilter(string(filter)); !ok {
		filter = todo.FilterAll
	}

	visible := todo.Visible(c, filter)
	rows := make([]Row, 0, len(visible))
	for _, item := range visible {
		row := Row{
			ID:        item.ID,
			Text:      item.Text,
			Completed: item.Completed,
		}
		if edit.ModeFor(session, item.ID) == edit.Editing {
			row.Editing = true
			row.EditText = session.Text
			row.Cursor = session.Cursor
		}
		rows = append(rows, row)
	}

	buttons := make([]FilterButton, 0, len(todo.Filters))
	for _, f := range todo.Filters {
		buttons = append(buttons, FilterButton{Filter: f, Label: f.Label(), Pressed: f == filter})
	}

	remaining := todo.Remaining(c)
	return Frame{
		Filter:        filter,
		Rows:          rows,
		Filters:       buttons,
		Total:         len(c),
		Remaining:     remaining,
		RemainingText: todo.RemainingLabel(remaining),
		ClearEnabled:  todo.AnyCompleted(c),
	}
}

// RowIndex returns the position of the row for id, or -1.
func (f Frame) RowIndex(id string) int {
	for i, row := range f.Rows {
		if row.ID == id {
			return i
		}
	}
	return -1
}

// Empty reports whether no rows are visible.
func (f Frame) Empty() bool {
	return len(f.Rows) == 0
}

// EditingRow returns the row currently being edited, if any.
func (f Frame) EditingRow() (Row, bool) {
	for _, row := range f.Rows {
		if row.Editing {
			return row, true
		}
	}
	return Row{}, false
}
