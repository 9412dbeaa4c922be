package gesture

import (
	"math"
	"slices"
	"testing"

	"github.com/lixenwraith/particle-morph/parameter"
)

func TestOpennessMapping(t *testing.T) {
	tests := []struct {
		d, want float32
	}{
		{0.0, 0},
		{0.05, 0},
		{0.1375, 0.35},
		{0.175, 0.5},
		{0.3, 1},
		{0.2, 0.6},
		{0.9, 1},
	}
	for _, tt := range tests {
		if got := Openness(tt.d); math.Abs(float64(got-tt.want)) > 1e-5 {
			t.Errorf("Openness(%v) = %v, want %v", tt.d, got, tt.want)
		}
	}
}

func TestOpennessMonotonic(t *testing.T) {
	prev := Openness(0)
	for d := float32(0); d <= 0.5; d += 0.001 {
		cur := Openness(d)
		if cur < prev {
			t.Fatalf("openness decreased at d=%v: %v < %v", d, cur, prev)
		}
		prev = cur
	}
}

func observeSequence(it *Interpreter, distances []float32) []bool {
	out := make([]bool, 0, len(distances))
	for _, d := range distances {
		out = append(out, it.Observe(NewPinchHand(0, 0.5, d)).SpecialGesture)
	}
	return out
}

func TestSpecialGestureSequences(t *testing.T) {
	tests := []struct {
		name      string
		distances []float32
		want      []bool
	}{
		{"enter then exit", []float32{0.03, 0.2}, []bool{true, false}},
		{"hysteresis band holds", []float32{0.03, 0.06, 0.03}, []bool{true, true, true}},
		{"band from inactive stays inactive", []float32{0.06, 0.09, 0.05}, []bool{false, false, false}},
		{"exit needs strictly above", []float32{0.03, 0.1, 0.1001}, []bool{true, true, false}},
		{"enter needs strictly below", []float32{0.04, 0.039}, []bool{false, true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := observeSequence(NewInterpreter(), tt.distances); !slices.Equal(got, tt.want) {
				t.Errorf("distances %v: got %v, want %v", tt.distances, got, tt.want)
			}
		})
	}
}

func TestNoHandResetsOpennessKeepsSpecial(t *testing.T) {
	it := NewInterpreter()

	s := it.Observe(NewPinchHand(0, 0.5, 0.02))
	if !s.SpecialGesture || s.Openness != 0 {
		t.Fatalf("tight pinch: got %+v", s)
	}

	// Special gesture is sticky without a hand
	s = it.Observe(nil)
	if !s.SpecialGesture || s.Openness != parameter.OpennessNeutral {
		t.Errorf("no hand: got %+v", s)
	}

	// Incomplete hand counts as no hand
	s = it.Observe(&Hand{Landmarks: make([]Landmark, 5)})
	if !s.SpecialGesture || s.Openness != parameter.OpennessNeutral {
		t.Errorf("incomplete hand: got %+v", s)
	}
}

func TestInterpreterDefaults(t *testing.T) {
	if s := NewInterpreter().State(); s.Openness != 0.5 || s.SpecialGesture {
		t.Errorf("initial state = %+v", s)
	}
}

func TestPinchDistanceIgnoresDepth(t *testing.T) {
	h := NewPinchHand(0, 0.5, 0.1)
	h.Landmarks[parameter.LandmarkIndexTip].Z = 0.7
	if d := h.PinchDistance(); math.Abs(float64(d)-0.1) > 1e-6 {
		t.Errorf("PinchDistance() = %v, want 0.1", d)
	}
}
