package scene

import "sync/atomic"

// Store is the shared cell holding the live parameter set. Producers publish
// complete Params values; the frame loop reads the latest snapshot once per
// tick without locking. The loop's lifecycle is independent of publishes: a
// new value never restarts or pauses the consumer.
type Store struct {
	current atomic.Pointer[Params]
}

// NewStore constructs a store seeded with the given parameters.
func NewStore(p Params) *Store {
	s := &Store{}
	s.current.Store(&p)
	return s
}

// Params returns the most recently published snapshot.
func (s *Store) Params() Params {
	return *s.current.Load()
}

// Publish atomically replaces the whole parameter set and returns the
// previous value.
func (s *Store) Publish(p Params) Params {
	prev := s.current.Swap(&p)
	return *prev
}
