// Package control holds the shared state between the gesture feed, the UI and the render loop
package control

import (
	"sync/atomic"

	"github.com/lixenwraith/particle-morph/parameter"
)

// State is the control snapshot read by the motion engine once per tick
type State struct {
	// Openness in [0,1] drives particle spread
	Openness float32
	// SpecialGesture is the debounced tight-pinch flag
	SpecialGesture bool
}

// DefaultState is published before any detector frame and while the detector is unavailable
func DefaultState() State {
	return State{Openness: parameter.OpennessNeutral}
}

// Store publishes immutable State snapshots, single writer, any number of readers
// Readers never see a half-written snapshot
type Store struct {
	current atomic.Pointer[State]
	writes  atomic.Uint64
}

// NewStore starts at DefaultState
func NewStore() *Store {
	s := &Store{}
	d := DefaultState()
	s.current.Store(&d)
	return s
}

// Load returns the latest snapshot
func (s *Store) Load() State {
	return *s.current.Load()
}

// Swap publishes next and returns the snapshot it replaced
func (s *Store) Swap(next State) State {
	s.writes.Add(1)
	return *s.current.Swap(&next)
}

// Writes counts published snapshots, used by the HUD to show feed activity
func (s *Store) Writes() uint64 {
	return s.writes.Load()
}
