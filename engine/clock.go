package engine

import (
	"sync/atomic"
	"time"
)

// FrameClock measures variable frame deltas and excludes paused spans
type FrameClock struct {
	provider TimeProvider
	maxDelta time.Duration

	last     time.Time
	elapsed  time.Duration // unpaused time since start
	isPaused atomic.Bool
	resumed  atomic.Bool
}

// NewFrameClock starts measuring from now, deltas above maxDelta are clamped (0 disables)
// The render loop passes 0: the motion engine caps its own smoothing factor, so a stall snaps particles to target
func NewFrameClock(provider TimeProvider, maxDelta time.Duration) *FrameClock {
	return &FrameClock{
		provider: provider,
		maxDelta: maxDelta,
		last:     provider.Now(),
	}
}

// Tick returns seconds since the previous tick, zero while paused
// Called from the render loop only
func (c *FrameClock) Tick() float32 {
	now := c.provider.Now()
	if c.resumed.CompareAndSwap(true, false) {
		c.last = now
	}
	delta := now.Sub(c.last)
	c.last = now

	if c.isPaused.Load() || delta < 0 {
		return 0
	}
	if c.maxDelta > 0 && delta > c.maxDelta {
		delta = c.maxDelta
	}
	c.elapsed += delta
	return float32(delta.Seconds())
}

// Elapsed is the unpaused time accumulated by Tick
func (c *FrameClock) Elapsed() time.Duration {
	return c.elapsed
}

// Pause freezes deltas, safe from the input goroutine
func (c *FrameClock) Pause() {
	c.isPaused.Store(true)
}

// Resume restarts measurement from the next tick so the pause is not counted
func (c *FrameClock) Resume() {
	if c.isPaused.CompareAndSwap(true, false) {
		c.resumed.Store(true)
	}
}

// TogglePause flips the pause state and returns the new state
func (c *FrameClock) TogglePause() bool {
	if c.isPaused.Load() {
		c.Resume()
		return false
	}
	c.Pause()
	return true
}

func (c *FrameClock) IsPaused() bool {
	return c.isPaused.Load()
}
