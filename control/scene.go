package control

import (
	"errors"
	"fmt"
	"sync"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/particle-morph/parameter"
	"github.com/lixenwraith/particle-morph/shape"
)

var ErrInvalidColor = errors.New("invalid color")

// SceneState is what the UI shows and what the render loop draws
type SceneState struct {
	Shape       shape.Kind
	Color       string // normalized #rrggbb
	Celebration bool
}

// Scene is the UI-facing selection state, mutated by key commands, config reload and the gesture reactor
type Scene struct {
	mu    sync.RWMutex
	state SceneState
}

// NewScene validates the initial colour
func NewScene(kind shape.Kind, color string) (*Scene, error) {
	c, err := NormalizeColor(color)
	if err != nil {
		return nil, err
	}
	return &Scene{state: SceneState{Shape: kind, Color: c}}, nil
}

// NormalizeColor parses a hex colour and returns it as lowercase #rrggbb
func NormalizeColor(s string) (string, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return "", fmt.Errorf("%w %q: %v", ErrInvalidColor, s, err)
	}
	return c.Hex(), nil
}

// Snapshot returns a copy of the current selection
func (s *Scene) Snapshot() SceneState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// SelectShape is a manual shape selection, it also dismisses the celebration
func (s *Scene) SelectShape(kind shape.Kind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Shape = kind
	s.state.Celebration = false
}

// SelectColor sets the particle colour, the motion model ignores it
func (s *Scene) SelectColor(color string) error {
	c, err := NormalizeColor(color)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Color = c
	return nil
}

// CycleColor advances to the next palette entry after the current colour
func (s *Scene) CycleColor() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := parameter.Palette[0]
	for i, c := range parameter.Palette {
		if c == s.state.Color {
			next = parameter.Palette[(i+1)%len(parameter.Palette)]
			break
		}
	}
	s.state.Color = next
	return next
}

// SetCelebration enters or leaves the celebration
// Entering forces the heart and the accent colour, leaving keeps whatever is selected
// Returns false when already in the requested state
func (s *Scene) SetCelebration(active bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Celebration == active {
		return false
	}
	s.state.Celebration = active
	if active {
		s.state.Shape = shape.Heart
		s.state.Color = parameter.AccentColor
	}
	return true
}

// ToggleCelebration flips the overlay without touching shape or colour
func (s *Scene) ToggleCelebration() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Celebration = !s.state.Celebration
	return s.state.Celebration
}
