// Package metrics holds Prometheus collectors for backend API traffic.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus collectors for API requests and auth outcomes.
// A nil *Metrics is a valid no-op receiver so the client can run unmetered.
type Metrics struct {
	Requests          *prometheus.CounterVec
	RequestDurationMs *prometheus.HistogramVec
	AuthSuccesses     prometheus.Counter
	AuthFailures      prometheus.Counter
	OTPChallenges     prometheus.Counter
}

// New registers and returns API metrics collectors.
func New() *Metrics {
	return &Metrics{
		Requests: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "autolife_api_requests_total",
			Help: "Total number of backend API requests, by endpoint and status",
		}, []string{"endpoint", "status"}),
		RequestDurationMs: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "autolife_api_request_duration_ms",
			Help:    "Duration of backend API requests in milliseconds",
			Buckets: []float64{10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
		}, []string{"endpoint"}),
		AuthSuccesses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "autolife_auth_successes_total",
			Help: "Total number of successful sign-ins (login and OTP verification)",
		}),
		AuthFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "autolife_auth_failures_total",
			Help: "Total number of failed authentication attempts",
		}),
		OTPChallenges: promauto.NewCounter(prometheus.CounterOpts{
			Name: "autolife_auth_otp_challenges_total",
			Help: "Total number of OTP challenges issued by the backend",
		}),
	}
}

func (m *Metrics) ObserveRequest(endpoint, status string, durationMs float64) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(endpoint, status).Inc()
	m.RequestDurationMs.WithLabelValues(endpoint).Observe(durationMs)
}

func (m *Metrics) IncrementAuthSuccesses() {
	if m == nil {
		return
	}
	m.AuthSuccesses.Inc()
}

func (m *Metrics) IncrementAuthFailures() {
	if m == nil {
		return
	}
	m.AuthFailures.Inc()
}

func (m *Metrics) IncrementOTPChallenges() {
	if m == nil {
		return
	}
	m.OTPChallenges.Inc()
}
