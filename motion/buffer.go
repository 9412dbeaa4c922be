package motion

import (
	"github.com/lixenwraith/particle-morph/parameter"
	"github.com/lixenwraith/particle-morph/shape"
	"github.com/lixenwraith/particle-morph/vmath"
)

// Buffer is the live particle position buffer, 3 floats per particle
// Allocated once, mutated in place, never resized
type Buffer struct {
	coords []float32
}

// NewBuffer scatters n particles uniformly through the initial cloud cube
func NewBuffer(n int, rng shape.Rand) *Buffer {
	if n < 0 {
		n = 0
	}
	b := &Buffer{coords: make([]float32, n*3)}
	for i := range b.coords {
		b.coords[i] = (rng.Float32() - 0.5) * parameter.ParticleCloudExtent
	}
	return b
}

// NewBufferAt builds a buffer from explicit flat coordinates, the slice is copied
func NewBufferAt(coords []float32) *Buffer {
	b := &Buffer{coords: make([]float32, len(coords)-len(coords)%3)}
	copy(b.coords, coords)
	return b
}

// Len returns the particle count
func (b *Buffer) Len() int { return len(b.coords) / 3 }

// At returns the i-th particle position
func (b *Buffer) At(i int) vmath.Vec3 {
	j := i * 3
	return vmath.Vec3{X: b.coords[j], Y: b.coords[j+1], Z: b.coords[j+2]}
}

// Floats exposes the backing slice for draw binding, callers must not retain it across ticks
func (b *Buffer) Floats() []float32 {
	return b.coords
}
