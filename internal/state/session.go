package state

import (
	"context"

	"github.com/renatNoore/to-do-app/internal/edit"
	"github.com/renatNoore/to-do-app/internal/todo"
	"github.com/renatNoore/to-do-app/internal/view"
)

// BeginEdit opens an edit session for id. The edit trigger for id stays
// disabled until ReleaseEditTrigger; started reports whether a session was
// opened and the caller must schedule the release.
func (s *Store) BeginEdit(id string) (frame view.Frame, started bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.trigger.Locked(id) {
		return s.renderLocked(), false
	}
	item, ok := todo.Find(s.items, id)
	if !ok {
		return s.renderLocked(), false
	}
	s.session = edit.Begin(item)
	s.trigger.Lock(id)
	return s.renderLocked(), true
}

// EditTriggerLocked reports whether the edit trigger for id is disabled.
func (s *Store) EditTriggerLocked(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.trigger.Locked(id)
}

// ReleaseEditTrigger re-enables the edit trigger.
func (s *Store) ReleaseEditTrigger() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trigger.Release()
}

// Editing returns a copy of the active session, if any.
func (s *Store) Editing() (*edit.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil, false
	}
	return s.session.Clone(), true
}

// UpdateEditText replaces the working text of the active session.
func (s *Store) UpdateEditText(text string, cursor int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return
	}
	s.session.SetText(text)
	s.session.SetCursor(cursor)
}

// CommitEdit writes the working text back through Edit when it is non-blank,
// then persists and re-renders. With no active session it only re-renders.
func (s *Store) CommitEdit(ctx context.Context) view.Frame {
	s.mu.Lock()
	session := s.session
	s.mu.Unlock()

	if session == nil {
		return s.Render()
	}
	outcome := session.Commit()
	if !outcome.Apply {
		// Blank edits keep the prior text but still persist and re-render.
		return s.mutate(ctx, "edit", func(c todo.Collection) (todo.Collection, bool) {
			return c, false
		})
	}
	return s.Edit(ctx, outcome.ItemID, outcome.Text)
}

// CancelEdit discards the working text without touching the collection.
func (s *Store) CancelEdit() view.Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session != nil {
		s.logger.Debug("edit cancelled", "id", s.session.Cancel().ItemID)
	}
	s.session = nil
	return s.renderLocked()
}
