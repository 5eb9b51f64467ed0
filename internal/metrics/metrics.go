package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request latency in seconds
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "route", "status"},
	)

	// Pages rendered to HTML, served or built
	PageRenderCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "page_renders_total",
			Help: "Total number of pages rendered",
		},
		[]string{"page"},
	)

	// Projects file reloads
	ContentReloadCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "content_reloads_total",
			Help: "Total number of projects file reloads",
		},
		[]string{"result"}, // ok, error
	)
)

// RecordHTTPRequestDuration records the latency of one request
func RecordHTTPRequestDuration(method, route, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, route, status).Observe(duration.Seconds())
}

// IncrementPageRender counts one rendered page
func IncrementPageRender(page string) {
	PageRenderCount.WithLabelValues(page).Inc()
}

// IncrementContentReload counts one reload attempt
func IncrementContentReload(result string) {
	ContentReloadCount.WithLabelValues(result).Inc()
}
