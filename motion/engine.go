// Package motion advances the particle buffer toward the current shape target
package motion

import (
	"github.com/lixenwraith/particle-morph/control"
	"github.com/lixenwraith/particle-morph/parameter"
	"github.com/lixenwraith/particle-morph/shape"
	"github.com/lixenwraith/particle-morph/vmath"
)

// Engine holds the jitter source and the decorative rotation accumulator
// Not safe for concurrent use, the render loop owns it
type Engine struct {
	rng   shape.Rand
	angle float32
}

func NewEngine(rng shape.Rand) *Engine {
	return &Engine{rng: rng}
}

// Angle is the accumulated Y rotation in radians
func (e *Engine) Angle() float32 {
	return e.angle
}

// SmoothingFactor is the fraction of the remaining distance covered in one tick of dt seconds
func SmoothingFactor(dt float32) float32 {
	return vmath.Clamp(parameter.MotionResponsiveness*dt, 0, parameter.MotionMaxFactor)
}

// Spread is the uniform target scale for an openness value, 1 closed to 5 open
func Spread(openness float32) float32 {
	return 1 + openness*parameter.MotionSpreadRange
}

// Tick moves every particle toward its spread (and possibly jittered) target
// Index i of buf follows index i of points, surplus entries on either side are left alone
func (e *Engine) Tick(buf *Buffer, points *shape.PointSet, state control.State, dt float32) {
	spread := Spread(state.Openness)
	shake := state.Openness > parameter.MotionJitterThreshold
	k := SmoothingFactor(dt)

	n := min(buf.Len(), points.Len())
	pos := buf.coords
	for i := 0; i < n; i++ {
		target := vmath.V3Scale(points.At(i), spread)
		if shake {
			target.X += e.jitter()
			target.Y += e.jitter()
			target.Z += e.jitter()
		}

		j := i * 3
		pos[j] += (target.X - pos[j]) * k
		pos[j+1] += (target.Y - pos[j+1]) * k
		pos[j+2] += (target.Z - pos[j+2]) * k
	}

	e.angle += dt * parameter.MotionRotationSpeed
}

func (e *Engine) jitter() float32 {
	return (e.rng.Float32() - 0.5) * parameter.MotionJitterAmplitude
}
