package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// DefaultVolume is the master gain in [0,1]
	DefaultVolume = 0.6
)

// Celebration Chime
const (
	ChimeLowFreq   = 659.25 // E5
	ChimeHighFreq  = 987.77 // B5
	ChimeNoteTime  = 140 * time.Millisecond
	ChimeAttack    = 5 * time.Millisecond
	ChimeRelease   = 90 * time.Millisecond
	ChimeNoteCount = 2
)
