package inflight_test

import (
	"context"
	"testing"
	"time"

	"cowork/shared/inflight"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGuard(t *testing.T, ttl time.Duration) (inflight.Guard, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return inflight.New(client, ttl), server
}

func TestGuard_RejectsConcurrentHolder(t *testing.T) {
	ctx := context.Background()
	guard, _ := newGuard(t, time.Minute)

	release, err := guard.Acquire(ctx, "booking:u-1:w-1")
	require.NoError(t, err)

	_, err = guard.Acquire(ctx, "booking:u-1:w-1")
	assert.ErrorIs(t, err, inflight.ErrInFlight)

	otherRelease, err := guard.Acquire(ctx, "booking:u-1:w-2")
	require.NoError(t, err)
	otherRelease()

	release()

	again, err := guard.Acquire(ctx, "booking:u-1:w-1")
	require.NoError(t, err)
	again()
}

func TestGuard_ExpiresAfterTTL(t *testing.T) {
	ctx := context.Background()
	guard, server := newGuard(t, 5*time.Second)

	_, err := guard.Acquire(ctx, "k")
	require.NoError(t, err)

	server.FastForward(6 * time.Second)

	release, err := guard.Acquire(ctx, "k")
	require.NoError(t, err)
	release()
}

func TestGuard_StaleReleaseKeepsNewHolder(t *testing.T) {
	ctx := context.Background()
	guard, server := newGuard(t, 5*time.Second)

	stale, err := guard.Acquire(ctx, "k")
	require.NoError(t, err)

	server.FastForward(6 * time.Second)

	_, err = guard.Acquire(ctx, "k")
	require.NoError(t, err)

	stale()

	_, err = guard.Acquire(ctx, "k")
	assert.ErrorIs(t, err, inflight.ErrInFlight)
}
