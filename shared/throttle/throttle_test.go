package throttle_test

import (
	"testing"

	"cowork/shared/throttle"

	"github.com/stretchr/testify/assert"
)

func TestLimiter_PerKeyBurst(t *testing.T) {
	limiter := throttle.New(1, 2)

	assert.True(t, limiter.Allow("a@example.com"))
	assert.True(t, limiter.Allow("a@example.com"))
	assert.False(t, limiter.Allow("a@example.com"))

	assert.True(t, limiter.Allow("b@example.com"))
	assert.Equal(t, 2, limiter.Burst())
}

func TestLimiter_DefaultBurst(t *testing.T) {
	limiter := throttle.New(0, 0)

	for range 5 {
		assert.True(t, limiter.Allow("ip"))
	}

	assert.False(t, limiter.Allow("ip"))
}
