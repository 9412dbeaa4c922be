package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/particle-morph/audio"
	"github.com/lixenwraith/particle-morph/config"
	"github.com/lixenwraith/particle-morph/control"
	"github.com/lixenwraith/particle-morph/engine"
	"github.com/lixenwraith/particle-morph/feed"
	"github.com/lixenwraith/particle-morph/parameter"
	"github.com/lixenwraith/particle-morph/render"
	"github.com/lixenwraith/particle-morph/shape"
)

var (
	configFlag    = flag.String("config", "", "Config file (.toml, .yaml), watched for changes")
	shapeFlag     = flag.String("shape", "", "Initial shape: sphere, cube, heart, flower")
	colorFlag     = flag.String("color", "", "Initial particle colour as #rrggbb")
	feedFlag      = flag.String("feed", "", "Landmark feed: pointer, none, -, file:PATH, loop:PATH, ws://URL")
	fpsFlag       = flag.Int("fps", 0, "Frame rate")
	countFlag     = flag.Int("count", 0, "Particle count")
	seedFlag      = flag.Uint64("seed", 0, "Random seed, 0 seeds from the clock")
	colorModeFlag = flag.String("colormode", "", "Color mode: auto, truecolor, 256")
	muteFlag      = flag.Bool("mute", false, "Start muted")
	debugFlag     = flag.Bool("debug", false, "Write logs to "+logDir+"/"+logFileName)
	dumpFlag      = flag.String("dump-config", "", "Print the effective config as toml or yaml and exit")
)

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "particle-morph: %v\n", err)
		os.Exit(2)
	}

	if *dumpFlag != "" {
		if err := config.Encode(os.Stdout, cfg, *dumpFlag); err != nil {
			fmt.Fprintf(os.Stderr, "particle-morph: %v\n", err)
			os.Exit(2)
		}
		return
	}

	if err := run(cfg); err != nil {
		log.Printf("exit: %v", err)
		fmt.Fprintf(os.Stderr, "particle-morph: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig layers defaults, the config file, environment and explicitly set flags
func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(nil); err != nil {
		return cfg, err
	}

	var flagErr error
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "shape":
			kind, err := shape.Parse(*shapeFlag)
			if err != nil {
				flagErr = fmt.Errorf("-shape: %w", err)
				return
			}
			cfg.Particles.Shape = kind
		case "color":
			cfg.Particles.Color = *colorFlag
		case "feed":
			cfg.Gesture.Feed = *feedFlag
		case "fps":
			cfg.Render.FPS = *fpsFlag
		case "count":
			cfg.Particles.Count = *countFlag
		case "seed":
			cfg.Particles.Seed = *seedFlag
		case "colormode":
			cfg.Render.ColorMode = *colorModeFlag
		}
	})
	if flagErr != nil {
		return cfg, flagErr
	}
	return cfg, cfg.Validate()
}

func run(cfg config.Config) error {
	colorMode, err := render.ParseColorMode(cfg.Render.ColorMode)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialize terminal: %w", err)
	}
	defer screen.Fini()

	// Panic Recovery: restore the terminal before printing the stack
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mPARTICLE-MORPH CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	screen.EnableMouse(tcell.MouseDragEvents)
	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault.Background(render.RGBToTcell(render.RgbBackground)))

	seed := cfg.Particles.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("config: shape=%s color=%s count=%d feed=%q fps=%d colormode=%s seed=%d",
		cfg.Particles.Shape, cfg.Particles.Color, cfg.Particles.Count, cfg.Gesture.Feed, cfg.Render.FPS, colorMode, seed)

	store := control.NewStore()
	scene, err := control.NewScene(cfg.Particles.Shape, cfg.Particles.Color)
	if err != nil {
		return err
	}
	reactor := control.NewReactor(store, scene)

	sound := audio.NewSoundManager(cfg.Audio.Volume)
	sound.SetMuted(*muteFlag)
	if cfg.Audio.Enabled {
		if err := sound.Initialize(); err != nil {
			log.Printf("Audio initialization failed: %v (continuing without audio)", err)
		} else {
			defer sound.Cleanup()
		}
	}
	reactor.OnCelebrate = func() {
		log.Printf("finger heart detected")
		sound.PlayChime()
	}

	w, h := screen.Size()
	a := &app{
		world:  engine.NewWorld(cfg.Particles.Count, cfg.Particles.Shape, store, seed),
		scene:  scene,
		store:  store,
		clock:  engine.NewFrameClock(engine.NewMonotonicTimeProvider(), 0),
		sound:  sound,
		camera: render.NewCamera(),
		hud:    render.NewHUD(),
		stars:  render.NewStarfield(parameter.StarCount, seed),
		orch:   render.NewRenderOrchestrator(screen, colorMode),
	}
	if !cfg.Render.HUD {
		a.hud.Toggle()
	}
	if !cfg.Render.Stars {
		a.stars.Toggle()
	}

	ptr := feed.NewPointer(w, h)
	a.pointer = ptr
	source, err := feed.Open(cfg.Gesture.Feed, ptr)
	if err != nil {
		log.Printf("feed %q: %v", cfg.Gesture.Feed, err)
		source = feed.Unavailable(cfg.Gesture.Feed, err)
	}
	if source != ptr {
		// Mouse only drives the pointer feed
		a.pointer = nil
	}
	a.runner = feed.NewRunner(source, reactor)
	a.runner.Logf = log.Printf

	a.orch.Register(a.stars, render.PriorityBackground)
	a.orch.Register(render.NewParticleRenderer(a.world), render.PriorityParticle)
	a.orch.Register(render.CelebrationOverlay{}, render.PriorityOverlay)
	a.orch.Register(a.hud, render.PriorityUI)
	a.resize(w, h)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		if err := a.runner.Run(ctx); err != nil {
			log.Printf("tracker stopped: %v", err)
		}
	}()

	if *configFlag != "" {
		go watchConfig(ctx, *configFlag, scene)
	}

	events := startInputReader(screen)
	ticker := time.NewTicker(time.Second / time.Duration(cfg.Render.FPS))
	defer ticker.Stop()

	for !a.quit {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			a.handleEvent(ev)
		case <-ticker.C:
			// Drain input non-blocking so a burst of mouse motion lands in this frame
		drainInput:
			for {
				select {
				case ev, ok := <-events:
					if !ok {
						return nil
					}
					a.handleEvent(ev)
				default:
					break drainInput
				}
			}
			a.frame()
		}
	}
	return nil
}

// watchConfig applies shape and colour edits made to the config file while running
func watchConfig(ctx context.Context, path string, scene *control.Scene) {
	reloader := config.NewSceneReloader(path, scene)
	err := config.Watch(ctx, path, func(next config.Config) {
		applied, err := reloader.Reload(next)
		if err != nil {
			log.Printf("config reload: %v", err)
			return
		}
		if len(applied) > 0 {
			log.Printf("config reload applied %v", applied)
		}
	}, log.Printf)
	if err != nil {
		log.Printf("config watch disabled: %v", err)
	}
}

// inputQueue feeds terminal events to the render loop
// Mouse motion with unchanged buttons may be dropped under load, keys, resizes and button changes never are
type inputQueue struct {
	ch      chan tcell.Event
	buttons tcell.ButtonMask
}

func newInputQueue(size int) *inputQueue {
	return &inputQueue{ch: make(chan tcell.Event, size)}
}

func (q *inputQueue) push(ev tcell.Event) {
	if m, ok := ev.(*tcell.EventMouse); ok {
		b := m.Buttons()
		if b == q.buttons {
			// The next motion sample supersedes this one
			select {
			case q.ch <- ev:
			default:
			}
			return
		}
		q.buttons = b
	}
	q.ch <- ev
}

func startInputReader(screen tcell.Screen) chan tcell.Event {
	q := newInputQueue(64)
	go func() {
		defer close(q.ch)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				// Screen finalized
				return
			}
			q.push(ev)
		}
	}()
	return q.ch
}
