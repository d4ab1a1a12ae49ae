package store

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/idilsaglam/todohooks/internal/log"
	"github.com/idilsaglam/todohooks/internal/model"
)

// IDFunc produces a fresh item id.
type IDFunc func() (uuid.UUID, error)

// Listener is notified after a transition has produced a new snapshot.
type Listener func(snap *model.Snapshot)

// Store owns the current snapshot and publishes every change to its
// listeners, in subscription order. A Store belongs to a single event loop
// and takes no locks.
type Store struct {
	current     *model.Snapshot
	newID       IDFunc
	listeners   []*subscription
	transitions int
}

type subscription struct {
	fn Listener
}

// Option configures a Store.
type Option func(*Store)

// WithIDFunc overrides the default UUIDv7 generator.
func WithIDFunc(fn IDFunc) Option {
	return func(s *Store) { s.newID = fn }
}

// WithInitial starts the store from snap instead of an empty list.
func WithInitial(snap *model.Snapshot) Option {
	return func(s *Store) {
		if snap != nil {
			s.current = snap
		}
	}
}

// New creates a store holding an empty snapshot.
func New(opts ...Option) *Store {
	s := &Store{
		current: model.Empty(),
		newID:   uuid.NewV7,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Current returns the snapshot published last.
func (s *Store) Current() *model.Snapshot { return s.current }

// Transitions counts accepted transitions.
func (s *Store) Transitions() int { return s.transitions }

// Subscribe registers fn and returns a function removing it again.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	sub := &subscription{fn: fn}
	s.listeners = append(s.listeners, sub)
	return func() {
		for i, l := range s.listeners {
			if l == sub {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// NextID draws a fresh id from the store's IDFunc.
func (s *Store) NextID() (uuid.UUID, error) {
	id, err := s.newID()
	if err != nil {
		return uuid.Nil, fmt.Errorf("new id: %w", err)
	}
	return id, nil
}

// Dispatch applies action to the current snapshot. An Add without an id
// gets one from the store's IDFunc. Listeners run only when the snapshot
// changed, and only after it became current.
func (s *Store) Dispatch(action Action) (snap *model.Snapshot, changed bool) {
	if add, ok := action.(Add); ok && add.ID == uuid.Nil {
		id, err := s.NextID()
		if err != nil {
			log.Warn().Err(err).Msg("store: id generation failed, add dropped")
			return s.current, false
		}
		add.ID = id
		action = add
	}

	next := Apply(s.current, action)
	if next == s.current {
		log.Debug().Str("action", action.Kind()).Msg("store: no-op")
		return s.current, false
	}
	s.current = next
	s.transitions++
	log.Debug().
		Str("action", action.Kind()).
		Int("items", next.Len()).
		Msg("store: transition")

	// Copy so listeners may unsubscribe while being notified.
	subs := append([]*subscription(nil), s.listeners...)
	for _, sub := range subs {
		sub.fn(next)
	}
	return next, true
}
