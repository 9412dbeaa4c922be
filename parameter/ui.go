package parameter

// HUD Layout
const (
	// HUDRows reserved at the bottom of the screen (selector/status line + help line)
	HUDRows = 2

	// OpennessBarWidth is the cell width of the openness meter
	OpennessBarWidth = 10

	// HelpText is shown on the last row
	HelpText = "1-4:shape  c:colour  l:heart  space:pause  m:mute  h:hud  s:stars  drag:pinch  [ ]:nudge  q:quit"
)

// Celebration Overlay
const (
	CelebrationTitle    = "老婆我爱你"
	CelebrationSubtitle = "(Finger Heart Detected)"

	// CelebrationTint is the overlay background tint alpha
	CelebrationTint = 0.2
)

// Particle Glyphs
const (
	// ParticleOpacity is the per-particle alpha before additive accumulation
	ParticleOpacity = 0.8

	// ParticleDensityLevels are particle counts per cell at which the glyph steps up
	ParticleDensityLow  = 2
	ParticleDensityMid  = 4
	ParticleDensityHigh = 8

	// ParticleDepthFade is the max blend toward background for the farthest particles
	ParticleDepthFade = 0.6
)

// Starfield
const (
	StarCount  = 600
	StarRadius = 100.0
	StarDepth  = 50.0

	// StarTwinkleSpeed scales time into the noise domain
	StarTwinkleSpeed = 0.8
)
