package state

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/renatNoore/to-do-app/internal/edit"
	"github.com/renatNoore/to-do-app/internal/storage"
	"github.com/renatNoore/to-do-app/internal/todo"
	"github.com/renatNoore/to-do-app/internal/view"
)

// Snapshot is a copy of the store's state at a point in time.
type Snapshot struct {
	Items   todo.Collection
	Filter  todo.Filter
	Session *edit.Session
}

// Persister is the slice of storage.Adapter the store depends on.
type Persister interface {
	Load(ctx context.Context) todo.Collection
	Save(ctx context.Context, c todo.Collection)
}

var _ Persister = (*storage.Adapter)(nil)

// Store owns the collection, the active filter and the edit session. Every
// mutation cancels any edit in progress, persists and returns a fresh render.
type Store struct {
	mu      sync.Mutex
	persist Persister
	ids     todo.IDGenerator
	now     todo.Clock
	logger  *log.Logger

	items   todo.Collection
	filter  todo.Filter
	session *edit.Session
	trigger edit.TriggerLock
}

// Option customizes a Store.
type Option func(*Store)

// WithIDGenerator replaces the UUIDv7 generator.
func WithIDGenerator(gen todo.IDGenerator) Option {
	return func(s *Store) { s.ids = gen }
}

// WithClock replaces time.Now.
func WithClock(clock todo.Clock) Option {
	return func(s *Store) { s.now = clock }
}

// WithLogger sets the store logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New loads the persisted collection and starts with the "all" filter.
func New(ctx context.Context, persist Persister, opts ...Option) *Store {
	s := &Store{
		persist: persist,
		ids:     todo.UUIDGenerator{},
		now:     time.Now,
		logger:  log.New(io.Discard),
		filter:  todo.FilterAll,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.items = persist.Load(ctx)
	if s.items == nil {
		s.items = todo.Collection{}
	}
	return s
}

// Add inserts a new item at the head of the collection.
func (s *Store) Add(ctx context.Context, rawText string) view.Frame {
	return s.mutate(ctx, "add", func(c todo.Collection) (todo.Collection, bool) {
		id, err := s.ids.NewID()
		if err != nil {
			s.logger.Warn("generate id failed", "err", err)
			return c, false
		}
		return todo.Add(c, rawText, id, s.now())
	})
}

// Toggle flips the completion flag of id.
func (s *Store) Toggle(ctx context.Context, id string) view.Frame {
	return s.mutate(ctx, "toggle", func(c todo.Collection) (todo.Collection, bool) {
		return todo.Toggle(c, id)
	})
}

// Edit replaces the text of id; blank text is ignored.
func (s *Store) Edit(ctx context.Context, id, rawText string) view.Frame {
	return s.mutate(ctx, "edit", func(c todo.Collection) (todo.Collection, bool) {
		return todo.Edit(c, id, rawText)
	})
}

// Delete removes id.
func (s *Store) Delete(ctx context.Context, id string) view.Frame {
	return s.mutate(ctx, "delete", func(c todo.Collection) (todo.Collection, bool) {
		return todo.Delete(c, id)
	})
}

// ClearCompleted removes every completed item.
func (s *Store) ClearCompleted(ctx context.Context) view.Frame {
	return s.mutate(ctx, "clear-completed", todo.ClearCompleted)
}

// SetFilter changes the visible subset. The filter is never persisted;
// unrecognized values are treated as "all".
func (s *Store) SetFilter(f todo.Filter) view.Frame {
	s.mu.Lock()
	defer s.mu.Unlock()

	if parsed, ok := todo.ParseFilter(string(f)); ok {
		f = parsed
	} else {
		f = todo.FilterAll
	}
	s.session = nil
	s.filter = f
	return s.renderLocked()
}

// Render projects the current state.
func (s *Store) Render() view.Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.renderLocked()
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		Items:   s.items.Clone(),
		Filter:  s.filter,
		Session: s.session.Clone(),
	}
}

// mutate runs op under the lock, then persists and renders. Persistence runs
// even when op reports no change.
func (s *Store) mutate(ctx context.Context, name string, op func(todo.Collection) (todo.Collection, bool)) view.Frame {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = nil
	next, changed := op(s.items)
	s.items = next
	s.logger.Debug("mutation", "op", name, "changed", changed, "items", len(next))
	s.persist.Save(ctx, s.items)
	return s.renderLocked()
}

func (s *Store) renderLocked() view.Frame {
	return view.Render(s.items, s.filter, s.session)
}
