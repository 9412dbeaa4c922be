package render

import (
	"math"

	"github.com/chewxy/math32"

	"github.com/lixenwraith/particle-morph/parameter"
	"github.com/lixenwraith/particle-morph/vmath"
)

// Camera is a perspective camera on the +Z axis looking at the origin, orbiting around Y
type Camera struct {
	Distance float32
	Near     float32
	Orbit    float32 // radians

	fovY   float32
	focal  float32
	width  int
	height int
}

// Projection is a world point mapped to fractional cell coordinates
type Projection struct {
	X, Y  float32
	Depth float32 // distance along the view axis
}

func NewCamera() *Camera {
	c := &Camera{
		Distance: parameter.CameraDistance,
		Near:     parameter.CameraNear,
		fovY:     parameter.CameraFOV * math.Pi / 180,
	}
	c.SetViewport(1, 1)
	return c
}

// SetViewport sizes the projection to a width x height cell area
func (c *Camera) SetViewport(width, height int) {
	c.width = max(width, 1)
	c.height = max(height, 1)
	c.focal = float32(c.height) / 2 / math32.Tan(c.fovY/2)
}

// Advance turns the orbit by dt seconds of automatic rotation
func (c *Camera) Advance(dt float32) {
	c.Orbit = math32.Mod(c.Orbit+dt*2*math.Pi/float32(parameter.CameraOrbitPeriod.Seconds()), 2*math.Pi)
}

// Project maps p after a model spin around Y, ok is false behind the near plane
// Horizontal distances are doubled for the 1:2 terminal cell aspect
func (c *Camera) Project(p vmath.Vec3, spin float32) (Projection, bool) {
	v := vmath.V3RotateY(p, spin-c.Orbit)
	depth := c.Distance - v.Z
	if depth < c.Near {
		return Projection{}, false
	}
	inv := c.focal / depth
	return Projection{
		X:     float32(c.width)/2 + v.X*inv*parameter.CellAspect,
		Y:     float32(c.height)/2 - v.Y*inv,
		Depth: depth,
	}, true
}
