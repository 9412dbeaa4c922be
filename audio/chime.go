package audio

import (
	"fmt"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/particle-morph/parameter"
)

// NewChime builds the celebration cue: a rising two-note bell, each note a sine with a soft octave overtone
func NewChime(rate beep.SampleRate) (beep.Streamer, error) {
	low, err := newBellNote(rate, parameter.ChimeLowFreq)
	if err != nil {
		return nil, err
	}
	high, err := newBellNote(rate, parameter.ChimeHighFreq)
	if err != nil {
		return nil, err
	}
	return beep.Seq(low, high), nil
}

// ChimeLength is the chime duration in samples
func ChimeLength(rate beep.SampleRate) int {
	return parameter.ChimeNoteCount * rate.N(parameter.ChimeNoteTime)
}

func newBellNote(rate beep.SampleRate, freq float64) (beep.Streamer, error) {
	fundamental, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, fmt.Errorf("chime note %.2fHz: %w", freq, err)
	}
	overtone, err := generators.SineTone(rate, freq*2)
	if err != nil {
		return nil, fmt.Errorf("chime overtone %.2fHz: %w", freq*2, err)
	}

	// Gain is relative to unity, 0.6 + 0.25 keeps the sum below full scale
	mixed := beep.Mix(
		&effects.Gain{Streamer: fundamental, Gain: -0.4},
		&effects.Gain{Streamer: overtone, Gain: -0.75},
	)
	return NewEnvelope(mixed, parameter.ChimeNoteTime, parameter.ChimeAttack, parameter.ChimeRelease, rate), nil
}
