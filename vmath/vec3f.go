package vmath

import (
	"github.com/chewxy/math32"
)

// Vec3 is a float32 3D vector, the same layout as one xyz triple of a flat position buffer
type Vec3 struct {
	X, Y, Z float32
}

func V3Add(a, b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3Sub(a, b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3Scale(v Vec3, s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// V3Lerp moves a toward b by t (t=0 returns a, t=1 returns b)
func V3Lerp(a, b Vec3, t float32) Vec3 {
	return Vec3{
		a.X + (b.X-a.X)*t,
		a.Y + (b.Y-a.Y)*t,
		a.Z + (b.Z-a.Z)*t,
	}
}

func V3MagSq(v Vec3) float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3Mag(v Vec3) float32 {
	return math32.Sqrt(V3MagSq(v))
}

// V3RotateY rotates v about the vertical axis, positive angle turns +X toward -Z
func V3RotateY(v Vec3, angle float32) Vec3 {
	s, c := math32.Sincos(angle)
	return Vec3{
		X: v.X*c + v.Z*s,
		Y: v.Y,
		Z: -v.X*s + v.Z*c,
	}
}

// V3FromSpherical converts radius, azimuth (around Z) and polar angle (from +Z) to Cartesian
func V3FromSpherical(r, azimuth, polar float32) Vec3 {
	sp, cp := math32.Sincos(polar)
	sa, ca := math32.Sincos(azimuth)
	return Vec3{
		X: r * sp * ca,
		Y: r * sp * sa,
		Z: r * cp,
	}
}
