// Package edit models the inline edit of a single item: Display -> Editing ->
// Display via commit or cancel.
package edit

import (
	"strings"

	"github.com/renatNoore/to-do-app/internal/todo"
)

// Mode is the representation an item is currently shown in.
type Mode int

const (
	Display Mode = iota
	Editing
)

// Session is the working state of one in-progress edit. It refers to the item
// by id only; the item must be re-resolved when the session commits.
type Session struct {
	ItemID string
	Text   string
	Cursor int // rune offset into Text
}

// Begin captures the item's current text with the cursor at the end.
func Begin(item todo.Item) *Session {
	return &Session{
		ItemID: item.ID,
		Text:   item.Text,
		Cursor: len([]rune(item.Text)),
	}
}

// SetText replaces the working text, keeping the cursor within bounds.
func (s *Session) SetText(text string) {
	s.Text = text
	if n := len([]rune(text)); s.Cursor > n {
		s.Cursor = n
	}
}

// SetCursor moves the cursor, clamped to the working text.
func (s *Session) SetCursor(pos int) {
	n := len([]rune(s.Text))
	switch {
	case pos < 0:
		s.Cursor = 0
	case pos > n:
		s.Cursor = n
	default:
		s.Cursor = pos
	}
}

// Result returns the trimmed working text and whether it may be written back.
func (s *Session) Result() (string, bool) {
	text := strings.TrimSpace(s.Text)
	return text, text != ""
}

// Outcome is how a session ended.
type Outcome struct {
	ItemID string
	Text   string // trimmed working text; empty when Apply is false
	Apply  bool   // the text should be written back to the item
}

// Commit ends the session. Blank working text is discarded.
func (s *Session) Commit() Outcome {
	text, ok := s.Result()
	return Outcome{ItemID: s.ItemID, Text: text, Apply: ok}
}

// Cancel ends the session without writing anything back.
func (s *Session) Cancel() Outcome {
	return Outcome{ItemID: s.ItemID}
}

// Clone returns an independent copy, or nil for a nil session.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	dup := *s
	return &dup
}

// ModeFor reports how the item with the given id is represented while s is
// the active session (s may be nil).
func ModeFor(s *Session, id string) Mode {
	if s != nil && s.ItemID == id {
		return Editing
	}
	return Display
}
