// Package audio plays the celebration chime
// Speaker failure is never fatal, every call is a no-op until Initialize succeeds
package audio

import (
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/particle-morph/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// SoundManager owns the speaker and a mixer that one-shot cues are added to
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	master      *effects.Volume
	initialized bool
	muted       atomic.Bool
	played      atomic.Uint64
}

// NewSoundManager creates a manager at the given linear volume
func NewSoundManager(volume float64) *SoundManager {
	mixer := &beep.Mixer{}
	return &SoundManager{
		mixer:  mixer,
		master: newVolume(mixer, volume),
	}
}

// Initialize opens the speaker, repeat calls are no-ops
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}
	speaker.Play(sm.master)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// PlayChime queues the celebration chime unless muted or uninitialized
func (sm *SoundManager) PlayChime() {
	if sm.muted.Load() {
		return
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	chime, err := NewChime(sampleRate)
	if err != nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(chime)
	speaker.Unlock()
	sm.played.Add(1)
}

// SetMuted silences future cues, ones already playing finish
func (sm *SoundManager) SetMuted(muted bool) {
	sm.muted.Store(muted)
}

// ToggleMute flips mute and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	for {
		old := sm.muted.Load()
		if sm.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

func (sm *SoundManager) IsMuted() bool { return sm.muted.Load() }

// IsInitialized reports whether the speaker is open
func (sm *SoundManager) IsInitialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Played counts chimes handed to the speaker
func (sm *SoundManager) Played() uint64 { return sm.played.Load() }
