package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lixenwraith/particle-morph/shape"
)

// EnvPrefix namespaces environment overrides
const EnvPrefix = "PARTICLE_MORPH_"

// ApplyEnv overlays PARTICLE_MORPH_* variables read through lookup, os.LookupEnv when nil
//
//	SHAPE COLOR FEED FPS COUNT SEED COLOR_MODE AUDIO VOLUME STARS HUD
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	get := func(name string) (string, bool) {
		v, ok := lookup(EnvPrefix + name)
		return strings.TrimSpace(v), ok && strings.TrimSpace(v) != ""
	}

	if v, ok := get("SHAPE"); ok {
		kind, err := shape.Parse(v)
		if err != nil {
			return fmt.Errorf("%sSHAPE: %w", EnvPrefix, err)
		}
		c.Particles.Shape = kind
	}
	if v, ok := get("COLOR"); ok {
		c.Particles.Color = v
	}
	if v, ok := get("FEED"); ok {
		c.Gesture.Feed = v
	}
	if v, ok := get("COLOR_MODE"); ok {
		c.Render.ColorMode = v
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{"FPS", &c.Render.FPS},
		{"COUNT", &c.Particles.Count},
	}
	for _, iv := range ints {
		if v, ok := get(iv.name); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s%s: %w", EnvPrefix, iv.name, err)
			}
			*iv.dst = n
		}
	}

	if v, ok := get("SEED"); ok {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%sSEED: %w", EnvPrefix, err)
		}
		c.Particles.Seed = n
	}

	bools := []struct {
		name string
		dst  *bool
	}{
		{"AUDIO", &c.Audio.Enabled},
		{"STARS", &c.Render.Stars},
		{"HUD", &c.Render.HUD},
	}
	for _, bv := range bools {
		if v, ok := get(bv.name); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("%s%s: %w", EnvPrefix, bv.name, err)
			}
			*bv.dst = b
		}
	}

	if v, ok := get("VOLUME"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%sVOLUME: %w", EnvPrefix, err)
		}
		c.Audio.Volume = f
	}
	return nil
}
