package parameter

// Particle Cloud
const (
	// ParticleCount is the number of particles and of sampled target points per shape
	ParticleCount = 4000

	// ParticleCloudExtent is the side of the cube the initial random cloud is drawn from (centred on origin)
	ParticleCloudExtent = 10.0
)

// Motion Engine
const (
	// MotionResponsiveness scales dt into the smoothing factor, higher converges faster
	MotionResponsiveness = 3.0

	// MotionMaxFactor caps the per-tick smoothing factor so a long frame never overshoots
	MotionMaxFactor = 1.0

	// MotionSpreadRange is added to 1 at full openness (spread in [1, 1+range])
	MotionSpreadRange = 4.0

	// MotionJitterThreshold is the openness above which targets are shaken
	MotionJitterThreshold = 0.8

	// MotionJitterAmplitude is the full width of the per-coordinate jitter, centred on zero
	MotionJitterAmplitude = 0.5

	// MotionRotationSpeed is the decorative Y-axis rotation in radians per second
	MotionRotationSpeed = 0.1
)

// Shape Sampling
const (
	// SphereRadius of the solid ball
	SphereRadius = 2.0

	// CubeSide of the axis-aligned solid cube
	CubeSide = 3.0

	// HeartBound is the half extent of the rejection box
	HeartBound = 1.5

	// HeartScale is applied to every accepted heart point
	HeartScale = 2.0

	// HeartMaxAttempts bounds the rejection loop per point
	// Acceptance rate is roughly 1 in 7, so the cap is never reached with a sane source
	HeartMaxAttempts = 10000

	// FlowerBaseRadius is the mean radius before petal lobing
	FlowerBaseRadius = 2.0

	// FlowerPetals is the lobe frequency in both parametric angles
	FlowerPetals = 5.0

	// FlowerScale shrinks the parametric surface
	FlowerScale = 0.5

	// FlowerDepthJitter is the full width of the uniform z jitter
	FlowerDepthJitter = 1.0
)
