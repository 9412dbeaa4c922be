package render

import (
	"github.com/lixenwraith/particle-morph/control"
	"github.com/lixenwraith/particle-morph/feed"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	// Time state, Elapsed excludes paused time
	Elapsed   float32
	DeltaTime float32
	IsPaused  bool
	IsMuted   bool

	// Screen dimensions and the area above the HUD
	ScreenWidth  int
	ScreenHeight int
	ViewHeight   int

	Camera  *Camera
	Scene   control.SceneState
	Control control.State
	Tracker feed.Status
}
