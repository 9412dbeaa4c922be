package feed

import (
	"context"
	"sync"
	"time"

	"github.com/lixenwraith/particle-morph/gesture"
	"github.com/lixenwraith/particle-morph/parameter"
	"github.com/lixenwraith/particle-morph/vmath"
)

// Pointer emulates a detector from terminal input for machines without a camera
// The thumb tip sits at the viewport centre and the index tip follows the mouse while the button is held
// Nudge keys move a synthetic pinch distance when no mouse is available
type Pointer struct {
	mu            sync.Mutex
	width, height int
	distance      float32

	frames chan Frame
}

func NewPointer(width, height int) *Pointer {
	return &Pointer{
		width:    max(width, 1),
		height:   max(height, 1),
		distance: parameter.PointerDefaultDistance,
		frames:   make(chan Frame, 1),
	}
}

func (p *Pointer) Name() string { return "pointer" }

// Immediate reports the pointer live from the start, input needs no handshake
func (p *Pointer) Immediate() bool { return true }

// Resize updates the viewport used to normalize mouse positions
func (p *Pointer) Resize(width, height int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.width = max(width, 1)
	p.height = max(height, 1)
}

// Mouse reports a pointer sample, pressed=false is a hand leaving the frame
func (p *Pointer) Mouse(x, y int, pressed bool) {
	if !pressed {
		p.publish(Frame{})
		return
	}
	p.mu.Lock()
	nx := (float32(x) + 0.5) / float32(p.width)
	ny := (float32(y) + 0.5) / float32(p.height)
	p.mu.Unlock()

	lm := gesture.NewPinchHand(0.5, 0.5, 0)
	lm.Landmarks[parameter.LandmarkIndexTip] = gesture.Landmark{X: nx, Y: ny}
	p.publish(Frame{Hand: lm})
}

// Nudge widens (positive) or tightens the synthetic pinch and publishes it
func (p *Pointer) Nudge(delta float32) float32 {
	p.mu.Lock()
	p.distance = vmath.Clamp(p.distance+delta, 0, 0.5)
	d := p.distance
	p.mu.Unlock()

	p.publish(Frame{Hand: gesture.NewPinchHand(0.5, 0.5, d)})
	return d
}

// publish keeps only the newest frame, a slow consumer never blocks input
func (p *Pointer) publish(f Frame) {
	f.At = time.Now()
	for {
		select {
		case p.frames <- f:
			return
		default:
		}
		select {
		case <-p.frames:
		default:
		}
	}
}

// Run forwards published frames until ctx is cancelled
func (p *Pointer) Run(ctx context.Context, sink Sink) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case f := <-p.frames:
			sink.Frame(f)
		}
	}
}
