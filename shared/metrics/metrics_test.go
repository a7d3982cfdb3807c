package metrics_test

import (
	"testing"

	"cowork/shared/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterIsIdempotent(t *testing.T) {
	assert.NotPanics(t, func() {
		metrics.Register()
		metrics.Register()
	})

	metrics.IncBookingCreated("monthly", "pending")
	metrics.IncCouponCheck("applied")
	metrics.ObserveHTTP("/v1/workspaces/", "GET", 200, 0.01)
	metrics.IncOTP("login", "sent")

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	names := map[string]bool{}
	for _, family := range families {
		names[family.GetName()] = true
	}

	assert.True(t, names["cowork_bookings_created_total"])
	assert.True(t, names["cowork_coupon_checks_total"])
	assert.True(t, names["cowork_http_requests_total"])
	assert.True(t, names["cowork_otp_codes_total"])
}
