package di

import (
	"time"

	"cowork/config"
	"cowork/shared/inflight"
	"cowork/shared/throttle"

	goRedis "github.com/redis/go-redis/v9"
)

// provideOTPLimiter throttles code requests per purpose and email.
func provideOTPLimiter(cfg *config.Config) *throttle.Limiter {
	return throttle.New(cfg.OTP.ResendPerMinute, cfg.OTP.ResendBurst)
}

func provideInFlightGuard(client *goRedis.Client, cfg *config.Config) inflight.Guard {
	return inflight.New(client, time.Duration(cfg.Booking.InFlightTTLSeconds)*time.Second)
}
