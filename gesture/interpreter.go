// Package gesture turns per-frame hand keypoints into the openness and special-gesture signals
//
// The special gesture is a pinch detector: any sufficiently tight thumb/index pinch counts as
// the "finger heart". It does not classify hand shape, and crossed-finger hearts that keep the
// tips apart are missed. This is a known limitation of the heuristic.
package gesture

import (
	"github.com/lixenwraith/particle-morph/control"
	"github.com/lixenwraith/particle-morph/parameter"
	"github.com/lixenwraith/particle-morph/vmath"
)

// Openness maps a pinch distance to [0,1], 0.05 and below is closed, 0.3 and above fully open
func Openness(distance float32) float32 {
	return vmath.Clamp01((distance - parameter.OpennessClosedDistance) * parameter.OpennessGain)
}

// Interpreter holds the debounced special-gesture state between frames
// Not safe for concurrent use, one feed goroutine owns it
type Interpreter struct {
	state control.State
}

// NewInterpreter starts at neutral openness with the special gesture inactive
func NewInterpreter() *Interpreter {
	return &Interpreter{state: control.DefaultState()}
}

// Observe consumes one frame, nil or incomplete hand means no hand visible
func (it *Interpreter) Observe(hand *Hand) control.State {
	if !hand.Valid() {
		// Relax to neutral, the special gesture is sticky without a reading
		it.state.Openness = parameter.OpennessNeutral
		return it.state
	}

	d := hand.PinchDistance()
	it.state.Openness = Openness(d)
	it.state.SpecialGesture = nextSpecial(it.state.SpecialGesture, d)
	return it.state
}

// State returns the last derived control state
func (it *Interpreter) State() control.State {
	return it.state
}

// nextSpecial applies the hysteresis band between enter and exit distances
func nextSpecial(active bool, d float32) bool {
	switch {
	case !active && d < parameter.PinchEnterDistance:
		return true
	case active && d > parameter.PinchExitDistance:
		return false
	default:
		return active
	}
}
