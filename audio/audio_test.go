package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/particle-morph/parameter"
)

// drain streams s to completion and returns every left-channel sample
func drain(t *testing.T, s beep.Streamer) []float64 {
	t.Helper()
	var out []float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			out = append(out, buf[i][0])
		}
		if !ok {
			break
		}
		require.Less(t, len(out), 10*sampleRate.N(time.Second), "stream did not end")
	}
	require.NoError(t, s.Err())
	return out
}

func constant(v float64) beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{v, v}
		}
		return len(samples), true
	})
}

func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	env := NewEnvelope(constant(1), 100*time.Millisecond, 10*time.Millisecond, 20*time.Millisecond, rate)
	out := drain(t, env)

	require.Len(t, out, 100)
	assert.Equal(t, 0.0, out[0], "attack starts silent")
	assert.InDelta(t, 0.5, out[5], 1e-9)
	assert.Equal(t, 1.0, out[50], "sustain at full level")
	assert.InDelta(t, 1.0/20, out[99], 1e-9, "release ends near silence")
	for i := 81; i < 100; i++ {
		assert.Less(t, out[i], out[i-1], "release is monotonic")
	}
}

func TestEnvelopeShortNoteClampsRamps(t *testing.T) {
	rate := beep.SampleRate(1000)
	env := NewEnvelope(constant(1), 10*time.Millisecond, 50*time.Millisecond, 50*time.Millisecond, rate)
	out := drain(t, env)
	require.Len(t, out, 10)
	for _, v := range out {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}

func TestChimeLengthAndLevel(t *testing.T) {
	chime, err := NewChime(sampleRate)
	require.NoError(t, err)
	out := drain(t, chime)

	assert.Len(t, out, ChimeLength(sampleRate))
	assert.Equal(t, 0.0, out[0])

	peak := 0.0
	for _, v := range out {
		peak = math.Max(peak, math.Abs(v))
	}
	assert.Greater(t, peak, 0.3, "chime is audible")
	assert.LessOrEqual(t, peak, 0.85+1e-9, "chime never clips")
}

func TestChimeRejectsAliasingRate(t *testing.T) {
	// Overtone of the high note sits above Nyquist at 2kHz
	_, err := NewChime(beep.SampleRate(2000))
	assert.Error(t, err)
}

func TestNewVolume(t *testing.T) {
	assert.True(t, newVolume(constant(1), 0).Silent)
	v := newVolume(constant(1), parameter.DefaultVolume)
	assert.False(t, v.Silent)
	assert.InDelta(t, math.Log2(parameter.DefaultVolume), v.Volume, 1e-12)
}

// TestSoundManagerGracefulDegradation verifies operations are safe without a speaker
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(parameter.DefaultVolume)
	assert.NotPanics(t, func() {
		sm.PlayChime()
		sm.Cleanup()
	})
	assert.Equal(t, uint64(0), sm.Played())
	assert.False(t, sm.IsInitialized())
}

func TestSoundManagerMute(t *testing.T) {
	sm := NewSoundManager(1)
	assert.False(t, sm.IsMuted())
	assert.True(t, sm.ToggleMute())
	assert.True(t, sm.IsMuted())
	assert.False(t, sm.ToggleMute())
	sm.SetMuted(true)
	sm.PlayChime()
	assert.Equal(t, uint64(0), sm.Played())
}

// TestSoundManagerInitialization exercises the speaker when the host has one
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(parameter.DefaultVolume)
	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}
	defer sm.Cleanup()

	require.NoError(t, sm.Initialize(), "second initialization is a no-op")
	sm.PlayChime()
	assert.Equal(t, uint64(1), sm.Played())
}
