// Package pkgmetrics exposes Prometheus collectors for translated request
// failures and handled requests.
package pkgmetrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "goadvice"

// Metrics owns its collectors and the registry they are registered on.
type Metrics struct {
	registry *prometheus.Registry
	failures *prometheus.CounterVec
	requests *prometheus.CounterVec
}

// New creates the collectors on a fresh registry, including the Go and
// process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "request_failures_total",
				Help:      "Total number of failures translated into error responses",
			},
			[]string{"kind", "code", "status"},
		),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "status"},
		),
	}

	reg.MustRegister(
		m.failures,
		m.requests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// RecordFailure counts one translated failure.
func (m *Metrics) RecordFailure(kind, code string, status int) {
	m.failures.WithLabelValues(kind, code, strconv.Itoa(status)).Inc()
}

// RecordRequest counts one handled request.
func (m *Metrics) RecordRequest(method string, status int) {
	m.requests.WithLabelValues(method, strconv.Itoa(status)).Inc()
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
