// Package throttle keeps one token bucket per key, such as an email address or a client IP.
package throttle

import (
	"sync"

	"golang.org/x/time/rate"
)

const defaultBurst = 5

type Limiter struct {
	limiters sync.Map
	limit    rate.Limit
	burst    int
}

// New allows perMinute events per key with the given burst.
func New(perMinute float64, burst int) *Limiter {
	if burst <= 0 {
		burst = defaultBurst
	}

	return &Limiter{
		limit: rate.Limit(perMinute / 60),
		burst: burst,
	}
}

func (l *Limiter) get(key string) *rate.Limiter {
	if v, ok := l.limiters.Load(key); ok {
		if lim, ok := v.(*rate.Limiter); ok {
			return lim
		}
	}

	lim := rate.NewLimiter(l.limit, l.burst)
	actual, loaded := l.limiters.LoadOrStore(key, lim)
	if loaded {
		if actualLim, ok := actual.(*rate.Limiter); ok {
			return actualLim
		}
	}

	return lim
}

// Allow reports whether one more event for key fits in its bucket.
func (l *Limiter) Allow(key string) bool {
	return l.get(key).Allow()
}

func (l *Limiter) Burst() int {
	return l.burst
}
