package gesture

import (
	"github.com/chewxy/math32"

	"github.com/lixenwraith/particle-morph/parameter"
)

// Landmark is a keypoint in normalized image coordinates, x and y in [0,1], z relative depth
type Landmark struct {
	X, Y, Z float32
}

// Hand is one detected hand, indexed by the 21-point hand model
type Hand struct {
	Landmarks []Landmark
}

// Valid reports whether the keypoints the interpreter reads are present
func (h *Hand) Valid() bool {
	return h != nil && len(h.Landmarks) > parameter.LandmarkIndexTip
}

func (h *Hand) ThumbTip() Landmark { return h.Landmarks[parameter.LandmarkThumbTip] }
func (h *Hand) IndexTip() Landmark { return h.Landmarks[parameter.LandmarkIndexTip] }
func (h *Hand) ThumbIP() Landmark  { return h.Landmarks[parameter.LandmarkThumbIP] }

// PinchDistance is the image-plane distance between thumb tip and index tip, depth is ignored
func (h *Hand) PinchDistance() float32 {
	a, b := h.ThumbTip(), h.IndexTip()
	dx, dy := a.X-b.X, a.Y-b.Y
	return math32.Sqrt(dx*dx + dy*dy)
}

// NewPinchHand builds a synthetic hand with the thumb tip at (x, y) and the index tip distance to its right
// Other keypoints collapse onto the thumb tip
func NewPinchHand(x, y, distance float32) *Hand {
	lm := make([]Landmark, parameter.LandmarkCount)
	thumb := Landmark{X: x, Y: y}
	for i := range lm {
		lm[i] = thumb
	}
	lm[parameter.LandmarkIndexTip] = Landmark{X: x + distance, Y: y}
	return &Hand{Landmarks: lm}
}
