// Package metrics collects client-side RPC metrics on a private Prometheus
// registry. The SDK records into a Collector when one is configured; a nil
// Collector disables recording entirely.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector handles RPC metrics collection and reporting.
type Collector struct {
	registry *prometheus.Registry

	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	retries  prometheus.Counter
}

// NewCollector creates a collector with its own registry.
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()

	requests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tableside_requests_total",
			Help: "RPC requests by request type and outcome",
		},
		[]string{"type", "outcome"},
	)

	duration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tableside_request_duration_seconds",
			Help:    "RPC round-trip duration, including retries",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"type"},
	)

	retries := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tableside_retries_total",
			Help: "Transport-level retry attempts",
		},
	)

	registry.MustRegister(requests, duration, retries)

	return &Collector{
		registry: registry,
		requests: requests,
		duration: duration,
		retries:  retries,
	}
}

// Registry returns the private registry, e.g. for mounting promhttp.
func (c *Collector) Registry() *prometheus.Registry {
	if c == nil {
		return nil
	}
	return c.registry
}

// RecordRequest records one completed RPC call.
func (c *Collector) RecordRequest(requestType, outcome string, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.requests.WithLabelValues(requestType, outcome).Inc()
	c.duration.WithLabelValues(requestType).Observe(elapsed.Seconds())
}

// RecordRetry records one transport-level retry.
func (c *Collector) RecordRetry() {
	if c == nil {
		return
	}
	c.retries.Inc()
}
