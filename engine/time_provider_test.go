package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	assert.True(t, t2.After(t1))
	assert.GreaterOrEqual(t, t2.Sub(t1), 10*time.Millisecond)
}
