package main

import (
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/particle-morph/audio"
	"github.com/lixenwraith/particle-morph/control"
	"github.com/lixenwraith/particle-morph/engine"
	"github.com/lixenwraith/particle-morph/feed"
	"github.com/lixenwraith/particle-morph/parameter"
	"github.com/lixenwraith/particle-morph/render"
	"github.com/lixenwraith/particle-morph/shape"
)

// app holds everything the render goroutine touches
type app struct {
	world   *engine.World
	scene   *control.Scene
	store   *control.Store
	clock   *engine.FrameClock
	sound   *audio.SoundManager
	pointer *feed.Pointer
	runner  *feed.Runner

	camera *render.Camera
	hud    *render.HUD
	stars  *render.Starfield
	orch   *render.RenderOrchestrator

	width, height int
	quit          bool
}

// viewHeight is the particle area above the HUD rows
func (a *app) viewHeight() int {
	if a.hud != nil && !a.hud.IsVisible() {
		return a.height
	}
	return max(a.height-parameter.HUDRows, 1)
}

// resize propagates a new screen size to every consumer of the viewport
func (a *app) resize(width, height int) {
	a.width, a.height = width, height
	if a.orch != nil {
		a.orch.Resize(width, height)
	}
	if a.camera != nil {
		a.camera.SetViewport(width, a.viewHeight())
	}
	if a.pointer != nil {
		a.pointer.Resize(width, a.viewHeight())
	}
}

// handleEvent applies one terminal event
func (a *app) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.resize(ev.Size())
	case *tcell.EventKey:
		a.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		x, y := ev.Position()
		a.handleMouse(x, y, ev.Buttons()&tcell.Button1 != 0)
	}
}

func (a *app) handleKey(key tcell.Key, r rune) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		a.quit = true
		return
	case tcell.KeyRune:
	default:
		return
	}

	switch r {
	case 'q':
		a.quit = true
	case '1', '2', '3', '4':
		kind := shape.Kinds[r-'1']
		a.scene.SelectShape(kind)
		log.Printf("shape -> %s", kind)
	case 'c':
		log.Printf("color -> %s", a.scene.CycleColor())
	case 'l':
		log.Printf("celebration -> %t", a.scene.ToggleCelebration())
	case ' ':
		log.Printf("paused -> %t", a.clock.TogglePause())
	case 'm':
		log.Printf("muted -> %t", a.sound.ToggleMute())
	case 'h':
		a.hud.Toggle()
		a.resize(a.width, a.height)
	case 's':
		a.stars.Toggle()
	case '[':
		if a.pointer != nil {
			a.pointer.Nudge(-parameter.PointerNudgeStep)
		}
	case ']':
		if a.pointer != nil {
			a.pointer.Nudge(parameter.PointerNudgeStep)
		}
	}
}

// handleMouse drives the pointer feed, presses over the HUD rows are ignored but a release anywhere ends the hand
func (a *app) handleMouse(x, y int, pressed bool) {
	if a.pointer == nil {
		return
	}
	if pressed && y >= a.viewHeight() {
		return
	}
	a.pointer.Mouse(x, y, pressed)
}

// frame advances the simulation and renders once
func (a *app) frame() {
	dt := a.clock.Tick()

	sc := a.scene.Snapshot()
	if a.world.SetShape(sc.Shape) {
		log.Printf("regenerated %d targets for %s", a.world.Count(), sc.Shape)
	}

	paused := a.clock.IsPaused()
	state := a.store.Load()
	if !paused {
		state = a.world.Step(dt)
		a.camera.Advance(dt)
	}

	if a.orch == nil {
		return
	}
	a.orch.RenderFrame(render.RenderContext{
		Elapsed:      float32(a.clock.Elapsed().Seconds()),
		DeltaTime:    dt,
		IsPaused:     paused,
		IsMuted:      a.sound.IsMuted(),
		ScreenWidth:  a.width,
		ScreenHeight: a.height,
		ViewHeight:   a.viewHeight(),
		Camera:       a.camera,
		Scene:        sc,
		Control:      state,
		Tracker:      a.runner.Status(),
	})
}
