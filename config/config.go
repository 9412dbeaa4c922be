// Package config loads the viewer configuration from TOML or YAML, environment and flags
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/particle-morph/control"
	"github.com/lixenwraith/particle-morph/parameter"
	"github.com/lixenwraith/particle-morph/render"
	"github.com/lixenwraith/particle-morph/shape"
)

var (
	ErrUnknownFormat = errors.New("unknown config format")
	ErrInvalid       = errors.New("invalid config")
)

type Config struct {
	Particles ParticlesConfig `toml:"particles" yaml:"particles"`
	Gesture   GestureConfig   `toml:"gesture" yaml:"gesture"`
	Render    RenderConfig    `toml:"render" yaml:"render"`
	Audio     AudioConfig     `toml:"audio" yaml:"audio"`
}

type ParticlesConfig struct {
	Count int        `toml:"count" yaml:"count"`
	Seed  uint64     `toml:"seed" yaml:"seed"` // 0 seeds from the clock
	Shape shape.Kind `toml:"shape" yaml:"shape"`
	Color string     `toml:"color" yaml:"color"`
}

type GestureConfig struct {
	// Feed selects the detector source, see feed.Open
	Feed string `toml:"feed" yaml:"feed"`
}

type RenderConfig struct {
	FPS       int    `toml:"fps" yaml:"fps"`
	ColorMode string `toml:"color_mode" yaml:"color_mode"`
	Stars     bool   `toml:"stars" yaml:"stars"`
	HUD       bool   `toml:"hud" yaml:"hud"`
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled" yaml:"enabled"`
	Volume  float64 `toml:"volume" yaml:"volume"`
}

// Default returns the built-in configuration
func Default() Config {
	kind, err := shape.Parse(parameter.DefaultShape)
	if err != nil {
		kind = shape.Heart
	}
	return Config{
		Particles: ParticlesConfig{
			Count: parameter.ParticleCount,
			Shape: kind,
			Color: parameter.DefaultColor,
		},
		Gesture: GestureConfig{Feed: "pointer"},
		Render: RenderConfig{
			FPS:       parameter.DefaultFPS,
			ColorMode: "auto",
			Stars:     true,
			HUD:       true,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  parameter.DefaultVolume,
		},
	}
}

// Load reads path over the defaults, the format follows the extension
// Keys not present in the file keep their default
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := Decode(&cfg, data, formatOf(path)); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func formatOf(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}

// Decode merges data in the given format ("toml", "yaml", "yml") into cfg, unknown keys are errors
func Decode(cfg *Config, data []byte, format string) error {
	switch format {
	case "toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		return dec.Decode(cfg)
	case "yaml", "yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Encode writes cfg in the given format
func Encode(w io.Writer, cfg Config, format string) error {
	switch format {
	case "toml":
		return toml.NewEncoder(w).Encode(cfg)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Validate checks ranges and normalizes the colour
func (c *Config) Validate() error {
	if c.Particles.Count <= 0 {
		return fmt.Errorf("%w: particles.count must be positive, got %d", ErrInvalid, c.Particles.Count)
	}
	color, err := control.NormalizeColor(c.Particles.Color)
	if err != nil {
		return fmt.Errorf("%w: particles.color: %w", ErrInvalid, err)
	}
	c.Particles.Color = color
	if c.Render.FPS < 1 || c.Render.FPS > parameter.MaxFPS {
		return fmt.Errorf("%w: render.fps must be in [1,%d], got %d", ErrInvalid, parameter.MaxFPS, c.Render.FPS)
	}
	if _, err := render.ParseColorMode(c.Render.ColorMode); err != nil {
		return fmt.Errorf("%w: render.color_mode: %w", ErrInvalid, err)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio.volume must be in [0,1], got %g", ErrInvalid, c.Audio.Volume)
	}
	return nil
}
