package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "cowork"

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route pattern, method and status.",
		},
		[]string{"route", "method", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route pattern.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	bookingsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_created_total",
			Help:      "Bookings stored by duration type and status.",
		},
		[]string{"duration_type", "status"},
	)

	bookingsRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_rejected_total",
			Help:      "Booking submissions rejected before insert, by reason.",
		},
		[]string{"reason"},
	)

	couponChecks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "coupon_checks_total",
			Help:      "Coupon resolutions by outcome.",
		},
		[]string{"outcome"},
	)

	submissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lead_submissions_total",
			Help:      "Public enquiry and requirement submissions.",
		},
		[]string{"kind"},
	)

	otpCodes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "otp_codes_total",
			Help:      "One-time codes by purpose and outcome.",
		},
		[]string{"purpose", "outcome"},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, httpDuration, bookingsCreated, bookingsRejected, couponChecks, submissions, otpCodes)
	})
}

func ObserveHTTP(route, method string, status int, seconds float64) {
	httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(route, method).Observe(seconds)
}

func IncBookingCreated(durationType, status string) {
	bookingsCreated.WithLabelValues(durationType, status).Inc()
}

func IncBookingRejected(reason string) {
	bookingsRejected.WithLabelValues(reason).Inc()
}

func IncCouponCheck(outcome string) {
	couponChecks.WithLabelValues(outcome).Inc()
}

func IncSubmission(kind string) {
	submissions.WithLabelValues(kind).Inc()
}

func IncOTP(purpose, outcome string) {
	otpCodes.WithLabelValues(purpose, outcome).Inc()
}
