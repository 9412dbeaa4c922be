package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/lixenwraith/particle-morph/control"
)

// reloadDebounce coalesces the burst of events an editor save produces
const reloadDebounce = 150 * time.Millisecond

// Watch reloads path whenever it changes and hands each valid result to onReload
// The parent directory is watched so rename-on-save editors are followed
// Invalid files are reported through logf and the previous config stays live
func Watch(ctx context.Context, path string, onReload func(Config), logf func(string, ...any)) error {
	if logf == nil {
		logf = func(string, ...any) {}
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	defer w.Close()
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}

	timer := time.NewTimer(reloadDebounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				timer.Reset(reloadDebounce)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logf("config watch %s: %v", path, err)
		case <-timer.C:
			cfg, err := Load(abs)
			if err != nil {
				logf("config reload rejected: %v", err)
				continue
			}
			onReload(cfg)
		}
	}
}

// ApplyScene turns file edits into selection commands, only fields that changed between prev and next are applied
// so a live keyboard selection survives unrelated edits. Returns the names of applied fields
func ApplyScene(prev, next Config, scene *control.Scene) ([]string, error) {
	var applied []string
	if next.Particles.Shape != prev.Particles.Shape {
		scene.SelectShape(next.Particles.Shape)
		applied = append(applied, "shape")
	}
	if next.Particles.Color != prev.Particles.Color {
		if err := scene.SelectColor(next.Particles.Color); err != nil {
			return applied, err
		}
		applied = append(applied, "color")
	}
	return applied, nil
}

// SceneReloader remembers the previous file contents so each reload is diffed file against file
// Shape or colour layered on top by env or flags stays in force until the file itself changes that field
type SceneReloader struct {
	prev  Config
	scene *control.Scene
}

// NewSceneReloader baselines on the file at path, falling back to defaults when it cannot be loaded
func NewSceneReloader(path string, scene *control.Scene) *SceneReloader {
	prev, err := Load(path)
	if err != nil {
		prev = Default()
	}
	return &SceneReloader{prev: prev, scene: scene}
}

// Reload applies the fields next changed relative to the last accepted file
// A rejected colour keeps the old baseline so the edit is retried on the next save
func (r *SceneReloader) Reload(next Config) ([]string, error) {
	applied, err := ApplyScene(r.prev, next, r.scene)
	if err != nil {
		return applied, err
	}
	r.prev = next
	return applied, nil
}
