package engine

import "time"

// TimeProvider is the clock the frame loop measures dt with
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider returns wall time with the monotonic reading attached
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a new monotonic time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}
