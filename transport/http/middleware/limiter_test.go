package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cowork/infras/otel/mocks"
	"cowork/shared/cache"
	"cowork/shared/constant"
	"cowork/transport/http/middleware"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestRateLimit(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := testConfig()
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	app := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, cache.NewRedisCache(client, mocks.NewOtel()))
	handler := app.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	call := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/v1/workspaces/", nil)
		req.Header.Set(constant.RequestHeaderForwardedFor, ip+", 10.0.0.1")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		return rec
	}

	first := call("203.0.113.7")
	assert.Equal(t, http.StatusNoContent, first.Code)
	assert.Equal(t, "2", first.Header().Get(constant.RequestHeaderRateLimit))
	assert.Equal(t, "1", first.Header().Get(constant.RequestHeaderRateLimitRemaining))

	second := call("203.0.113.7")
	assert.Equal(t, http.StatusNoContent, second.Code)
	assert.Equal(t, "0", second.Header().Get(constant.RequestHeaderRateLimitRemaining))

	assert.Equal(t, http.StatusTooManyRequests, call("203.0.113.7").Code)
	assert.Equal(t, http.StatusNoContent, call("198.51.100.4").Code)

	server.FastForward(61 * time.Second)
	assert.Equal(t, http.StatusNoContent, call("203.0.113.7").Code)
}

func TestRateLimitDisabled(t *testing.T) {
	app := middleware.NewAppMiddleware(mocks.NewOtel(), testConfig(), nil)
	handler := app.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	for range 5 {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	}
}
