package rest

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "clientele"

// Metrics contains the Prometheus metrics recorded by instrumented clients.
// One Metrics value may be shared by several clients; the service label
// tells them apart.
type Metrics struct {
	RequestsTotal      *prometheus.CounterVec
	RequestDuration    *prometheus.HistogramVec
	RateLimitRemaining *prometheus.GaugeVec
}

// NewMetrics creates the metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of API requests",
			},
			[]string{"service", "code", "method"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "API request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"service", "code", "method"},
		),
		RateLimitRemaining: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "rate_limit_remaining",
				Help:      "Requests left in the current rate limit window, as reported by the API",
			},
			[]string{"service"},
		),
	}
}

// instrument wraps next so every round trip is counted and timed under
// service.
func (m *Metrics) instrument(service string, next http.RoundTripper) http.RoundTripper {
	labels := prometheus.Labels{"service": service}

	observed := promhttp.RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
		resp, err := next.RoundTrip(req)
		if err == nil {
			if v, convErr := strconv.ParseFloat(resp.Header.Get("X-RateLimit-Remaining"), 64); convErr == nil {
				m.RateLimitRemaining.With(labels).Set(v)
			}
		}
		return resp, err
	})

	return promhttp.InstrumentRoundTripperCounter(
		m.RequestsTotal.MustCurryWith(labels),
		promhttp.InstrumentRoundTripperDuration(m.RequestDuration.MustCurryWith(labels), observed),
	)
}
