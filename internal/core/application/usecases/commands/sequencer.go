package commands

import "sync"

// Sequencer serializes every mutation of the order board together with the
// event it publishes, so subscribers observe events in the same order the
// store applied the changes. Stream sessions take the same lock while they
// capture their snapshot and register for deltas.
type Sequencer struct {
	mu sync.Mutex
}

// NewSequencer creates an unlocked Sequencer.
func NewSequencer() *Sequencer {
	return &Sequencer{}
}

// Do runs fn while holding the lock and returns its error.
func (s *Sequencer) Do(fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return fn()
}
