// Package shape samples fixed-size target point sets for the particle cloud
package shape

import (
	"errors"
	"math"

	"github.com/chewxy/math32"

	"github.com/lixenwraith/particle-morph/parameter"
	"github.com/lixenwraith/particle-morph/vmath"
)

var ErrUnknownShape = errors.New("unknown shape")

// Rand is the uniform source the samplers draw from, satisfied by *vmath.FastRand and *rand.Rand
type Rand interface {
	Float32() float32
}

// PointSet is an immutable flat xyz sequence, 3 floats per point
type PointSet struct {
	kind   Kind
	coords []float32
}

// NewPointSet wraps explicit flat coordinates, the slice is copied and a trailing partial point dropped
func NewPointSet(kind Kind, coords []float32) *PointSet {
	ps := &PointSet{kind: kind, coords: make([]float32, len(coords)-len(coords)%3)}
	copy(ps.coords, coords)
	return ps
}

// Kind returns the shape the set was sampled from
func (p *PointSet) Kind() Kind { return p.kind }

// Len returns the number of points
func (p *PointSet) Len() int { return len(p.coords) / 3 }

// At returns the i-th point
func (p *PointSet) At(i int) vmath.Vec3 {
	j := i * 3
	return vmath.Vec3{X: p.coords[j], Y: p.coords[j+1], Z: p.coords[j+2]}
}

// Floats returns a copy of the flat coordinates
func (p *PointSet) Floats() []float32 {
	out := make([]float32, len(p.coords))
	copy(out, p.coords)
	return out
}

// Generate samples n points of the given shape, unknown kinds sample a sphere
// Always returns exactly max(n, 0) points
func Generate(kind Kind, n int, rng Rand) *PointSet {
	if n < 0 {
		n = 0
	}
	ps := &PointSet{kind: kind, coords: make([]float32, n*3)}

	var sample func(Rand) vmath.Vec3
	switch kind {
	case Sphere:
		sample = samplePointInSphere
	case Cube:
		sample = samplePointInCube
	case Heart:
		hs := &heartSampler{}
		sample = hs.sample
	case Flower:
		sample = samplePointInFlower
	default:
		sample = samplePointInSphere
	}

	for i := 0; i < n; i++ {
		p := sample(rng)
		j := i * 3
		ps.coords[j] = p.X
		ps.coords[j+1] = p.Y
		ps.coords[j+2] = p.Z
	}
	return ps
}

// samplePointInSphere draws uniformly from the solid ball, cube-root radius keeps volume density flat
func samplePointInSphere(rng Rand) vmath.Vec3 {
	theta := 2 * math.Pi * rng.Float32()
	phi := math32.Acos(2*rng.Float32() - 1)
	r := math32.Cbrt(rng.Float32()) * parameter.SphereRadius
	return vmath.V3FromSpherical(r, theta, phi)
}

func samplePointInCube(rng Rand) vmath.Vec3 {
	const s = parameter.CubeSide
	return vmath.Vec3{
		X: (rng.Float32() - 0.5) * s,
		Y: (rng.Float32() - 0.5) * s,
		Z: (rng.Float32() - 0.5) * s,
	}
}

// HeartImplicit evaluates (x²+9y²/4+z²−1)³ − x²z³ − (9/80)y²z³, points inside the heart are <= 0
func HeartImplicit(x, y, z float32) float32 {
	a := x*x + (9.0/4.0)*y*y + z*z - 1
	z3 := z * z * z
	return a*a*a - x*x*z3 - (9.0/80.0)*y*y*z3
}

// heartSampler remembers the last accepted point as the fallback for an exhausted rejection loop
type heartSampler struct {
	last vmath.Vec3
}

func (h *heartSampler) sample(rng Rand) vmath.Vec3 {
	const b = parameter.HeartBound
	for attempt := 0; attempt < parameter.HeartMaxAttempts; attempt++ {
		x := rng.Float32()*2*b - b
		y := rng.Float32()*2*b - b
		z := rng.Float32()*2*b - b
		if HeartImplicit(x, y, z) <= 0 {
			// Swap y/z so the heart stands upright along screen Y
			h.last = vmath.Vec3{
				X: x * parameter.HeartScale,
				Y: z * parameter.HeartScale,
				Z: y * parameter.HeartScale,
			}
			return h.last
		}
	}
	return h.last
}

func samplePointInFlower(rng Rand) vmath.Vec3 {
	u := rng.Float32() * 2 * math.Pi
	v := rng.Float32() * math.Pi
	r := parameter.FlowerBaseRadius + math32.Sin(parameter.FlowerPetals*u)*math32.Sin(parameter.FlowerPetals*v)

	p := vmath.V3FromSpherical(r, u, v)
	p = vmath.V3Scale(p, parameter.FlowerScale)
	p.Z += (rng.Float32() - 0.5) * parameter.FlowerDepthJitter
	return p
}
