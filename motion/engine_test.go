package motion

import (
	"math"
	"testing"

	"github.com/lixenwraith/particle-morph/control"
	"github.com/lixenwraith/particle-morph/shape"
	"github.com/lixenwraith/particle-morph/vmath"
)

func vecNear(a, b vmath.Vec3, eps float64) bool {
	return math.Abs(float64(a.X-b.X)) <= eps &&
		math.Abs(float64(a.Y-b.Y)) <= eps &&
		math.Abs(float64(a.Z-b.Z)) <= eps
}

func TestNewBufferCloud(t *testing.T) {
	b := NewBuffer(4000, vmath.NewFastRand(1))
	if b.Len() != 4000 {
		t.Fatalf("Len() = %d, want 4000", b.Len())
	}
	for i, c := range b.Floats() {
		if c < -5 || c >= 5 {
			t.Fatalf("coord %d = %v outside [-5,5)", i, c)
		}
	}
}

func TestSmoothingFactorClamp(t *testing.T) {
	if k := SmoothingFactor(1.0 / 60); math.Abs(float64(k)-0.05) > 1e-6 {
		t.Errorf("SmoothingFactor(1/60) = %v, want 0.05", k)
	}
	// Large dt must not overshoot
	if k := SmoothingFactor(0.5); k != 1 {
		t.Errorf("SmoothingFactor(0.5) = %v, want 1", k)
	}
	if k := SmoothingFactor(-1); k != 0 {
		t.Errorf("SmoothingFactor(-1) = %v, want 0", k)
	}
}

func TestSpreadRange(t *testing.T) {
	for _, tt := range []struct{ openness, want float32 }{{0, 1}, {0.5, 3}, {1, 5}} {
		if got := Spread(tt.openness); got != tt.want {
			t.Errorf("Spread(%v) = %v, want %v", tt.openness, got, tt.want)
		}
	}
}

func TestTickFivePercentStepFromZero(t *testing.T) {
	points := shape.Generate(shape.Sphere, 500, vmath.NewFastRand(4))
	buf := NewBufferAt(make([]float32, 500*3))
	e := NewEngine(vmath.NewFastRand(5))

	e.Tick(buf, points, control.State{Openness: 0}, 1.0/60)

	for i := 0; i < buf.Len(); i++ {
		want := vmath.V3Scale(points.At(i), 0.05)
		if got := buf.At(i); !vecNear(want, got, 1e-6) {
			t.Fatalf("particle %d = %v, want %v", i, got, want)
		}
	}
}

func TestTickExponentialDecayLaw(t *testing.T) {
	points := shape.NewPointSet(shape.Cube, []float32{1, -1, 0.5})
	buf := NewBufferAt([]float32{-3, 4, 2})
	e := NewEngine(vmath.NewFastRand(1))
	state := control.State{Openness: 0.5} // spread 3, no jitter
	target := vmath.Vec3{X: 3, Y: -3, Z: 1.5}

	for _, dt := range []float32{0.01, 1.0 / 60, 0.1, 0.2} {
		before := vmath.V3Sub(target, buf.At(0))
		e.Tick(buf, points, state, dt)
		after := vmath.V3Sub(target, buf.At(0))

		want := vmath.V3Scale(before, 1-SmoothingFactor(dt))
		if !vecNear(want, after, 1e-5) {
			t.Errorf("dt=%v: remaining %v, want %v", dt, after, want)
		}
	}
}

func TestTickConvergesToTarget(t *testing.T) {
	points := shape.Generate(shape.Heart, 200, vmath.NewFastRand(8))
	buf := NewBuffer(200, vmath.NewFastRand(9))
	e := NewEngine(vmath.NewFastRand(10))
	state := control.State{Openness: 0.25} // spread 2

	for i := 0; i < 600; i++ {
		e.Tick(buf, points, state, 1.0/60)
	}
	for i := 0; i < buf.Len(); i++ {
		want := vmath.V3Scale(points.At(i), 2)
		if d := vmath.V3Mag(vmath.V3Sub(want, buf.At(i))); d > 1e-4 {
			t.Fatalf("particle %d still %v from target", i, d)
		}
	}
}

func TestTickLargeDtSnapsToTarget(t *testing.T) {
	points := shape.NewPointSet(shape.Cube, []float32{1, 1, 1})
	buf := NewBufferAt([]float32{-4, -4, -4})
	NewEngine(vmath.NewFastRand(1)).Tick(buf, points, control.State{}, 5)
	if got := buf.At(0); got != (vmath.Vec3{X: 1, Y: 1, Z: 1}) {
		t.Errorf("after large dt = %v, want (1,1,1)", got)
	}
}

func TestTickJitterAboveThreshold(t *testing.T) {
	const n = 1000
	points := shape.NewPointSet(shape.Cube, make([]float32, n*3)) // all at origin
	e := NewEngine(vmath.NewFastRand(12))

	// At openness 0.8 exactly there is no jitter
	calm := NewBufferAt(make([]float32, n*3))
	e.Tick(calm, points, control.State{Openness: 0.8}, 1)
	for i, c := range calm.Floats() {
		if c != 0 {
			t.Fatalf("coord %d jittered at threshold: %v", i, c)
		}
	}

	shaken := NewBufferAt(make([]float32, n*3))
	e.Tick(shaken, points, control.State{Openness: 0.9}, 1)
	var moved int
	for i, c := range shaken.Floats() {
		if c < -0.25 || c >= 0.25 {
			t.Fatalf("coord %d = %v outside jitter band", i, c)
		}
		if c != 0 {
			moved++
		}
	}
	if moved <= n*3/2 {
		t.Errorf("only %d of %d coordinates jittered", moved, n*3)
	}
}

func TestTickRotationAccumulates(t *testing.T) {
	points := shape.NewPointSet(shape.Cube, nil)
	buf := NewBufferAt(nil)
	e := NewEngine(vmath.NewFastRand(1))
	for i := 0; i < 60; i++ {
		e.Tick(buf, points, control.State{Openness: 1}, 1.0/60)
	}
	if a := e.Angle(); math.Abs(float64(a)-0.1) > 1e-5 {
		t.Errorf("Angle() = %v, want 0.1", a)
	}
}

func TestTickMismatchedLengthsLeaveSurplus(t *testing.T) {
	points := shape.NewPointSet(shape.Cube, []float32{1, 1, 1})
	buf := NewBufferAt([]float32{0, 0, 0, 7, 7, 7})
	NewEngine(vmath.NewFastRand(1)).Tick(buf, points, control.State{}, 1)
	if got := buf.At(0); got != (vmath.Vec3{X: 1, Y: 1, Z: 1}) {
		t.Errorf("At(0) = %v, want (1,1,1)", got)
	}
	if got := buf.At(1); got != (vmath.Vec3{X: 7, Y: 7, Z: 7}) {
		t.Errorf("surplus At(1) = %v, want untouched (7,7,7)", got)
	}
}

func TestFloatsSharesBacking(t *testing.T) {
	buf := NewBufferAt([]float32{0, 0, 0})
	f := buf.Floats()
	points := shape.NewPointSet(shape.Cube, []float32{2, 2, 2})
	NewEngine(vmath.NewFastRand(1)).Tick(buf, points, control.State{}, 1)
	if f[0] != 2 {
		t.Errorf("draw binding sees %v, want in-place mutation to 2", f[0])
	}
}
