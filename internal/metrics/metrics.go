// Package metrics holds the Prometheus instruments for the dispatch path.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the executor.
type Metrics struct {
	registry *prometheus.Registry

	OperationsTotal    *prometheus.CounterVec // labels: broker, operation, outcome
	ValidationFailures *prometheus.CounterVec // labels: broker, operation
	TransportFailures  *prometheus.CounterVec // labels: broker, operation
	DispatchDur        *prometheus.HistogramVec
}

// New creates and registers the metric set on its own registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		OperationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "brokerbridge_operations_total",
			Help: "Operations executed, by broker, operation and outcome.",
		}, []string{"broker", "operation", "outcome"}),
		ValidationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "brokerbridge_validation_failures_total",
			Help: "Operations rejected by schema validation before dispatch.",
		}, []string{"broker", "operation"}),
		TransportFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "brokerbridge_transport_failures_total",
			Help: "Dispatches that failed at the broker session.",
		}, []string{"broker", "operation"}),
		DispatchDur: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "brokerbridge_dispatch_duration_seconds",
			Help:    "End-to-end latency of executed operations.",
			Buckets: prometheus.DefBuckets,
		}, []string{"broker", "operation"}),
	}
	reg.MustRegister(m.OperationsTotal, m.ValidationFailures, m.TransportFailures, m.DispatchDur)
	return m
}

// Handler exposes the registry for scraping.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
