package cache_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"cowork/infras/otel/mocks"
	"cowork/shared/cache"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedLocation struct {
	ID   string `json:"id"`
	City string `json:"city"`
}

func newCache(t *testing.T) (cache.RedisCache, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return cache.NewRedisCache(client, mocks.NewOtel()), server
}

func TestRedisCache_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	c, server := newCache(t)

	require.NoError(t, c.Save(ctx, "locations:get:1", cachedLocation{ID: "1", City: "Pune"}, 60))

	var got cachedLocation
	require.NoError(t, c.Get(ctx, "locations:get:1", &got))
	assert.Equal(t, cachedLocation{ID: "1", City: "Pune"}, got)

	require.NoError(t, c.Save(ctx, "raw", "plain text", 60))

	var raw string
	require.NoError(t, c.Get(ctx, "raw", &raw))
	assert.Equal(t, "plain text", raw)

	server.FastForward(61 * time.Second)

	err := c.Get(ctx, "locations:get:1", &got)
	assert.ErrorIs(t, err, cache.Nil)
}

func TestRedisCache_GetMiss(t *testing.T) {
	c, _ := newCache(t)

	var got cachedLocation
	err := c.Get(context.Background(), "missing", &got)

	assert.ErrorIs(t, err, cache.Nil)
}

func TestRedisCache_GetCorrupt(t *testing.T) {
	c, server := newCache(t)
	require.NoError(t, server.Set("broken", "{not json"))

	var got cachedLocation
	err := c.Get(context.Background(), "broken", &got)

	require.Error(t, err)
	assert.NotErrorIs(t, err, cache.Nil)
}

func TestRedisCache_DeleteAndClear(t *testing.T) {
	ctx := context.Background()
	c, server := newCache(t)

	for i := range 250 {
		require.NoError(t, server.Set(fmt.Sprintf("workspaces:list:%d", i), "x"))
	}

	require.NoError(t, server.Set("locations:list:1", "x"))
	require.NoError(t, server.Set("workspaces:get:1", "x"))

	require.NoError(t, c.Delete(ctx, "workspaces:get:1"))
	assert.False(t, server.Exists("workspaces:get:1"))

	require.NoError(t, c.Clear(ctx, "workspaces:list*"))

	assert.Equal(t, []string{"locations:list:1"}, server.Keys())
}
