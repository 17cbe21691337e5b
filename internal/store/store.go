// Package store holds the canonical application state and the reducer
// that evolves it. A Store is created by the application root and handed
// to consumers; there is no package-level instance, so tests can run any
// number of isolated stores.
package store

import (
	"time"

	"github.com/dori/fokus/internal/ident"
	"github.com/dori/fokus/internal/model"
)

// Store owns the canonical in-memory state. Dispatch applies exactly one
// atomic transition; after it returns, State reflects the whole action
// or none of it. Dispatch and State are synchronous and must be called
// from a single goroutine, which is how the TUI event loop drives them.
type Store struct {
	state   model.AppState
	now     func() time.Time
	newID   func() string
	persist func(model.AppState)
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces the wall clock, for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDs replaces the id generator, for deterministic tests.
func WithIDs(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// WithPersist installs a write-through hook invoked with the new state
// after every successful transition. The hook must not dispatch.
func WithPersist(fn func(model.AppState)) Option {
	return func(s *Store) { s.persist = fn }
}

// New returns a store seeded with the default empty state.
func New(opts ...Option) *Store {
	s := &Store{
		state: model.NewAppState(),
		now:   time.Now,
		newID: ident.New,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current state snapshot. Callers must treat it as
// read-only; all mutation goes through Dispatch.
func (s *Store) State() model.AppState {
	return s.state
}

// Dispatch applies one action and fires the persistence hook.
func (s *Store) Dispatch(a Action) {
	s.state = reduce(s.state, a, s.now(), s.newID)
	if s.persist != nil {
		s.persist(s.state)
	}
}
