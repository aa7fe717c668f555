// Package store owns the canonical state cell. Every mutation flows through
// Dispatch or Update, so readers always observe complete snapshots.
package store

import (
	"sync"

	"github.com/ecatuogno1/glassvision/internal/domain"
	"github.com/ecatuogno1/glassvision/internal/logging"
	"github.com/ecatuogno1/glassvision/internal/state"
	"github.com/ecatuogno1/glassvision/pkg/interfaces"
)

// Mirror observes each committed snapshot, typically to persist it. Mirrors
// run inside the store lock and must not call back into the store.
type Mirror func(snapshot domain.State)

// Store holds the current state and applies actions through the reducer.
type Store struct {
	mu      sync.Mutex
	current domain.State
	mirror  Mirror
	logger  interfaces.Logger
}

// Option customises store construction.
type Option func(*Store)

// WithMirror registers a snapshot observer invoked after every commit.
func WithMirror(mirror Mirror) Option {
	return func(s *Store) {
		s.mirror = mirror
	}
}

// WithLoggerProvider wires the store logger.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(s *Store) {
		s.logger = logging.StoreLogger(provider)
	}
}

// New constructs a store seeded with the given initial snapshot.
func New(initial domain.State, opts ...Option) *Store {
	s := &Store{
		current: initial.Clone(),
		logger:  logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns a deep copy of the current snapshot.
func (s *Store) State() domain.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Clone()
}

// Dispatch applies the actions in order as one atomic commit and returns the
// resulting snapshot.
func (s *Store) Dispatch(actions ...state.Action) domain.State {
	return s.Update(func(domain.State) []state.Action {
		return actions
	})
}

// Update runs decide against the current snapshot and commits the actions it
// returns, all under one lock, so read-check-mutate sequences cannot
// interleave. Returning no actions leaves state untouched.
func (s *Store) Update(decide func(current domain.State) []state.Action) domain.State {
	s.mu.Lock()
	defer s.mu.Unlock()

	actions := decide(s.current.Clone())
	if len(actions) == 0 {
		return s.current.Clone()
	}

	next := s.current
	for _, action := range actions {
		next = state.Reduce(next, action)
	}
	s.current = next
	s.logger.Debug("state committed", "actions", len(actions))

	if s.mirror != nil {
		s.mirror(s.current.Clone())
	}

	return s.current.Clone()
}

// SetMirror installs or replaces the snapshot observer after construction.
func (s *Store) SetMirror(mirror Mirror) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mirror = mirror
}
