package engine

import (
	"sync/atomic"
	"time"
)

// MockTimeProvider is a TimeProvider that only moves when a test moves it
type MockTimeProvider struct {
	nanos atomic.Int64
}

func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	m := &MockTimeProvider{}
	m.nanos.Store(start.UnixNano())
	return m
}

func (m *MockTimeProvider) Now() time.Time {
	return time.Unix(0, m.nanos.Load())
}

// Advance moves the clock forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.nanos.Add(int64(d))
}

// Step moves the clock by dt seconds, the unit FrameClock.Tick reports
func (m *MockTimeProvider) Step(dt float32) {
	m.Advance(time.Duration(float64(dt) * float64(time.Second)))
}
