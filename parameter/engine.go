package parameter

// Render Loop Timing
const (
	// DefaultFPS is the render loop rate
	DefaultFPS = 60

	// MaxFPS bounds configured rates
	MaxFPS = 240
)

// Scene Defaults
const (
	// DefaultShape is the shape shown at startup
	DefaultShape = "heart"

	// DefaultColor is the particle colour at startup
	DefaultColor = "#ff69b4"

	// AccentColor is forced while the special gesture celebration is active
	AccentColor = "#ff0000"
)

// Palette is cycled by the colour key
var Palette = []string{
	"#ff69b4",
	"#a855f7",
	"#3b82f6",
	"#22d3ee",
	"#4ade80",
	"#facc15",
	"#ffffff",
}
