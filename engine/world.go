package engine

import (
	"sync/atomic"

	"github.com/lixenwraith/particle-morph/control"
	"github.com/lixenwraith/particle-morph/motion"
	"github.com/lixenwraith/particle-morph/shape"
	"github.com/lixenwraith/particle-morph/vmath"
)

// World ties the sampled target, the particle buffer and the motion engine together
// Step and SetShape run on the render goroutine, Points may be read from anywhere
type World struct {
	count  int
	rng    *vmath.FastRand
	points atomic.Pointer[shape.PointSet]
	buffer *motion.Buffer
	motion *motion.Engine
	store  *control.Store
}

// NewWorld samples the initial shape and scatters the particle cloud
func NewWorld(count int, initial shape.Kind, store *control.Store, seed uint64) *World {
	rng := vmath.NewFastRand(seed)
	w := &World{
		count:  count,
		rng:    rng,
		buffer: motion.NewBuffer(count, rng),
		motion: motion.NewEngine(rng),
		store:  store,
	}
	w.points.Store(shape.Generate(initial, count, rng))
	return w
}

// SetShape regenerates the target set when the kind differs, returns whether it did
// The old set is replaced whole, never merged
func (w *World) SetShape(kind shape.Kind) bool {
	if w.points.Load().Kind() == kind {
		return false
	}
	w.points.Store(shape.Generate(kind, w.count, w.rng))
	return true
}

// Step advances the particles by dt seconds using the latest control snapshot
func (w *World) Step(dt float32) control.State {
	state := w.store.Load()
	w.motion.Tick(w.buffer, w.points.Load(), state, dt)
	return state
}

// Points returns the current target set
func (w *World) Points() *shape.PointSet { return w.points.Load() }

// Buffer returns the live particle buffer
func (w *World) Buffer() *motion.Buffer { return w.buffer }

// Angle returns the decorative rotation accumulated by the motion engine
func (w *World) Angle() float32 { return w.motion.Angle() }

// Count is the fixed particle count
func (w *World) Count() int { return w.count }
