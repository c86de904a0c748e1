package infrastructure

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusRequestMetrics implements the RequestMetrics port on its own registry
type PrometheusRequestMetrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// NewPrometheusRequestMetrics registers the request collectors plus the
// standard Go and process collectors on a fresh registry
func NewPrometheusRequestMetrics() *PrometheusRequestMetrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(registry)

	return &PrometheusRequestMetrics{
		registry: registry,
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "frontend_http_requests_total",
				Help: "The total number of HTTP requests served",
			},
			[]string{"route", "status"},
		),
		latency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "frontend_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route"},
		),
	}
}

// ObserveRequest counts one request and records its latency
func (m *PrometheusRequestMetrics) ObserveRequest(route string, status int, duration time.Duration) {
	m.requests.WithLabelValues(route, strconv.Itoa(status)).Inc()
	m.latency.WithLabelValues(route).Observe(duration.Seconds())
}

// Handler exposes the registry in the Prometheus text format
func (m *PrometheusRequestMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry
func (m *PrometheusRequestMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// NoopRequestMetrics discards observations when metrics are disabled
type NoopRequestMetrics struct{}

func (NoopRequestMetrics) ObserveRequest(string, int, time.Duration) {}
