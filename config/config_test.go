package config

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/particle-morph/control"
	"github.com/lixenwraith/particle-morph/parameter"
	"github.com/lixenwraith/particle-morph/shape"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, shape.Heart, cfg.Particles.Shape)
	assert.Equal(t, parameter.DefaultColor, cfg.Particles.Color)
	assert.Equal(t, parameter.ParticleCount, cfg.Particles.Count)
	assert.Equal(t, "pointer", cfg.Gesture.Feed)
}

func TestLoadTOMLOverlaysDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "morph.toml", `
[particles]
shape = "Flower"
color = "#22D3EE"

[render]
fps = 30
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, shape.Flower, cfg.Particles.Shape)
	assert.Equal(t, "#22d3ee", cfg.Particles.Color, "colour is normalized")
	assert.Equal(t, 30, cfg.Render.FPS)
	assert.Equal(t, parameter.ParticleCount, cfg.Particles.Count, "unset keys keep defaults")
	assert.True(t, cfg.Audio.Enabled)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "morph.yml", `
particles:
  shape: cube
  count: 1200
gesture:
  feed: ws://127.0.0.1:8765/hands
audio:
  enabled: false
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, shape.Cube, cfg.Particles.Shape)
	assert.Equal(t, 1200, cfg.Particles.Count)
	assert.Equal(t, "ws://127.0.0.1:8765/hands", cfg.Gesture.Feed)
	assert.False(t, cfg.Audio.Enabled)
}

func TestLoadEmptyYAMLIsDefault(t *testing.T) {
	path := writeFile(t, t.TempDir(), "empty.yaml", "")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		file string
		body string
	}{
		{"unknown extension", "morph.json", `{}`},
		{"unknown toml key", "a.toml", "[particles]\nsize = 3\n"},
		{"unknown yaml key", "b.yaml", "render:\n  gamma: 2\n"},
		{"unknown shape", "c.toml", "[particles]\nshape = \"torus\"\n"},
		{"bad colour", "d.yaml", "particles:\n  color: pinkish\n"},
		{"fps out of range", "e.toml", "[render]\nfps = 1000\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, dir, tt.file, tt.body))
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeFile(t, dir, "x.ini", ""))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"zero count", func(c *Config) { c.Particles.Count = 0 }, false},
		{"fps zero", func(c *Config) { c.Render.FPS = 0 }, false},
		{"fps max", func(c *Config) { c.Render.FPS = parameter.MaxFPS }, true},
		{"volume high", func(c *Config) { c.Audio.Volume = 1.5 }, false},
		{"volume zero", func(c *Config) { c.Audio.Volume = 0 }, true},
		{"colour mode", func(c *Config) { c.Render.ColorMode = "16" }, false},
		{"short hex", func(c *Config) { c.Particles.Color = "#f0f" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalid)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"PARTICLE_MORPH_SHAPE":  "sphere",
		"PARTICLE_MORPH_COLOR":  "#ffffff",
		"PARTICLE_MORPH_FPS":    "24",
		"PARTICLE_MORPH_AUDIO":  "false",
		"PARTICLE_MORPH_VOLUME": "0.25",
		"PARTICLE_MORPH_SEED":   "42",
		"PARTICLE_MORPH_FEED":   " ",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := Default()
	require.NoError(t, cfg.ApplyEnv(lookup))
	assert.Equal(t, shape.Sphere, cfg.Particles.Shape)
	assert.Equal(t, "#ffffff", cfg.Particles.Color)
	assert.Equal(t, 24, cfg.Render.FPS)
	assert.False(t, cfg.Audio.Enabled)
	assert.Equal(t, 0.25, cfg.Audio.Volume)
	assert.Equal(t, uint64(42), cfg.Particles.Seed)
	assert.Equal(t, "pointer", cfg.Gesture.Feed, "blank values are ignored")

	fresh := func() error {
		c := Default()
		return c.ApplyEnv(lookup)
	}
	env["PARTICLE_MORPH_FPS"] = "fast"
	assert.Error(t, fresh())

	env["PARTICLE_MORPH_FPS"] = "24"
	env["PARTICLE_MORPH_SHAPE"] = "torus"
	assert.ErrorIs(t, fresh(), shape.ErrUnknownShape)
}

func TestEncodeDecode(t *testing.T) {
	cfg := Default()
	cfg.Particles.Shape = shape.Flower
	for _, format := range []string{"toml", "yaml"} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, cfg, format))
			assert.Contains(t, buf.String(), "flower")

			got := Default()
			require.NoError(t, Decode(&got, buf.Bytes(), format))
			assert.Equal(t, cfg, got)
		})
	}
	assert.ErrorIs(t, Encode(&bytes.Buffer{}, cfg, "ini"), ErrUnknownFormat)
}

func TestApplyScene(t *testing.T) {
	scene, err := control.NewScene(shape.Heart, parameter.DefaultColor)
	require.NoError(t, err)
	prev := Default()

	// Keyboard picked Cube, an unrelated edit must not undo it
	scene.SelectShape(shape.Cube)
	next := prev
	next.Render.FPS = 30
	applied, err := ApplyScene(prev, next, scene)
	require.NoError(t, err)
	assert.Empty(t, applied)
	assert.Equal(t, shape.Cube, scene.Snapshot().Shape)

	next.Particles.Shape = shape.Sphere
	next.Particles.Color = "#4ade80"
	applied, err = ApplyScene(prev, next, scene)
	require.NoError(t, err)
	assert.Equal(t, []string{"shape", "color"}, applied)
	assert.Equal(t, control.SceneState{Shape: shape.Sphere, Color: "#4ade80"}, scene.Snapshot())
}

func TestSceneReloaderKeepsLayeredSelection(t *testing.T) {
	path := writeFile(t, t.TempDir(), "morph.toml", "[particles]\nshape = \"heart\"\n")

	// Startup layered -shape cube over the file
	scene, err := control.NewScene(shape.Cube, parameter.DefaultColor)
	require.NoError(t, err)
	reloader := NewSceneReloader(path, scene)

	writeFile(t, filepath.Dir(path), "morph.toml", "[particles]\nshape = \"heart\"\n\n[render]\nfps = 30\n")
	next, err := Load(path)
	require.NoError(t, err)
	applied, err := reloader.Reload(next)
	require.NoError(t, err)
	assert.Empty(t, applied, "unrelated edit leaves the flag selection alone")
	assert.Equal(t, shape.Cube, scene.Snapshot().Shape)

	writeFile(t, filepath.Dir(path), "morph.toml", "[particles]\nshape = \"sphere\"\n\n[render]\nfps = 30\n")
	next, err = Load(path)
	require.NoError(t, err)
	applied, err = reloader.Reload(next)
	require.NoError(t, err)
	assert.Equal(t, []string{"shape"}, applied)
	assert.Equal(t, shape.Sphere, scene.Snapshot().Shape)
}

func TestSceneReloaderMissingFileBaselinesDefaults(t *testing.T) {
	scene, err := control.NewScene(shape.Flower, parameter.DefaultColor)
	require.NoError(t, err)
	reloader := NewSceneReloader(filepath.Join(t.TempDir(), "absent.toml"), scene)

	applied, err := reloader.Reload(Default())
	require.NoError(t, err)
	assert.Empty(t, applied)
	assert.Equal(t, shape.Flower, scene.Snapshot().Shape)
}

func TestWatchReloads(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "morph.toml", "[particles]\nshape = \"heart\"\n")

	var (
		mu       sync.Mutex
		reloaded []Config
		logged   []string
	)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(c Config) {
			mu.Lock()
			reloaded = append(reloaded, c)
			mu.Unlock()
		}, func(format string, args ...any) {
			mu.Lock()
			logged = append(logged, format)
			mu.Unlock()
		})
	}()

	// Rewrite until the watcher is up and has fired
	require.Eventually(t, func() bool {
		mu.Lock()
		n := len(reloaded)
		mu.Unlock()
		if n > 0 {
			return true
		}
		_ = os.WriteFile(path, []byte("[particles]\nshape = \"cube\"\n"), 0o644)
		return false
	}, 5*time.Second, 400*time.Millisecond)

	mu.Lock()
	assert.Equal(t, shape.Cube, reloaded[0].Particles.Shape)
	mu.Unlock()

	require.NoError(t, os.WriteFile(path, []byte("[particles]\nshape = \"torus\"\n"), 0o644))
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(logged) > 0
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop")
	}
}
