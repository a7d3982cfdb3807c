// Package inflight rejects duplicate submissions while an earlier one with the same key is still running.
package inflight

//go:generate go run go.uber.org/mock/mockgen -source=./inflight.go -destination=./mocks/inflight_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const keyPrefix = "inflight:"

var ErrInFlight = errors.New("a submission with the same key is already in progress")

// releaseScript deletes the key only if it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type Guard interface {
	// Acquire holds key until release is called or ttl elapses.
	Acquire(ctx context.Context, key string) (release func(), err error)
}

type redisGuard struct {
	client *redis.Client
	ttl    time.Duration
}

func New(client *redis.Client, ttl time.Duration) Guard {
	return &redisGuard{
		client: client,
		ttl:    ttl,
	}
}

func (g *redisGuard) Acquire(ctx context.Context, key string) (func(), error) {
	token := uuid.NewString()
	fullKey := keyPrefix + key

	ok, err := g.client.SetNX(ctx, fullKey, token, g.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire in-flight guard: %w", err)
	}

	if !ok {
		return nil, ErrInFlight
	}

	release := func() {
		c := context.WithoutCancel(ctx)
		if err := releaseScript.Run(c, g.client, []string{fullKey}, token).Err(); err != nil {
			log.Error().Err(err).Str("key", fullKey).Msg("failed to release in-flight guard")
		}
	}

	return release, nil
}
