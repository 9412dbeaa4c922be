package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorMode256       ColorMode = iota // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

func (m ColorMode) String() string {
	if m == ColorModeTrueColor {
		return "truecolor"
	}
	return "256"
}

// DetectColorMode determines terminal color capability from environment
func DetectColorMode() ColorMode {
	if termenv.EnvColorProfile() == termenv.TrueColor {
		return ColorModeTrueColor
	}
	return ColorMode256
}

// ParseColorMode accepts "auto", "truecolor" or "256"
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return DetectColorMode(), nil
	case "truecolor", "24bit":
		return ColorModeTrueColor, nil
	case "256":
		return ColorMode256, nil
	default:
		return ColorMode256, fmt.Errorf("unknown color mode %q (auto|truecolor|256)", s)
	}
}

// ParseHex parses #rgb or #rrggbb
func ParseHex(s string) (RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return FromColorful(c), nil
}

// MustHex is ParseHex for trusted constants
func MustHex(s string) RGB {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ColorConverter maps RGB to tcell colors for the active mode
// Palette lookups are cached, owned by the render goroutine
type ColorConverter struct {
	mode  ColorMode
	cache map[RGB]tcell.Color
}

func NewColorConverter(mode ColorMode) *ColorConverter {
	return &ColorConverter{mode: mode, cache: make(map[RGB]tcell.Color, 256)}
}

func (c *ColorConverter) Mode() ColorMode { return c.mode }

// Color converts one RGB value
func (c *ColorConverter) Color(rgb RGB) tcell.Color {
	if c.mode == ColorModeTrueColor {
		return RGBToTcell(rgb)
	}
	if tc, ok := c.cache[rgb]; ok {
		return tc
	}
	tc := tcell.PaletteColor(int(RGBTo256(rgb)))
	c.cache[rgb] = tc
	return tc
}

// RGBTo256 returns the nearest xterm-256 palette index
func RGBTo256(rgb RGB) uint8 {
	if idx, ok := termenv.ANSI256.Color(rgb.Hex()).(termenv.ANSI256Color); ok {
		return uint8(idx)
	}
	return 16
}

// RGBToTcell converts RGB to tcell.Color
func RGBToTcell(rgb RGB) tcell.Color {
	return tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B))
}

// TcellToRGB converts tcell.Color to RGB, ColorDefault maps to the scene background
func TcellToRGB(c tcell.Color) RGB {
	if c == tcell.ColorDefault {
		return RgbBackground
	}
	r, g, b := c.RGB()
	return RGB{uint8(r), uint8(g), uint8(b)}
}
