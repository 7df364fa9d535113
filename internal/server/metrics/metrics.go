// Package metrics holds the Prometheus collectors of the server.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "gqlblog"

type Metrics struct {
	httpRequests   *prometheus.CounterVec
	httpLatency    *prometheus.HistogramVec
	operations     *prometheus.CounterVec
	operationTimes prometheus.Histogram
	fields         *prometheus.HistogramVec
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route pattern, method and status code.",
		}, []string{"route", "method", "code"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "graphql",
			Name:      "operations_total",
			Help:      "GraphQL operations by outcome: ok, error (some field failed) or invalid (rejected by validation).",
		}, []string{"outcome"}),
		operationTimes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "graphql",
			Name:      "operation_duration_seconds",
			Help:      "Execution time of valid GraphQL operations.",
			Buckets:   prometheus.DefBuckets,
		}),
		fields: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "graphql",
			Name:      "field_duration_seconds",
			Help:      "Latency of resolvers that reach a service.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"type", "field", "outcome"}),
	}
	reg.MustRegister(m.httpRequests, m.httpLatency, m.operations, m.operationTimes, m.fields)
	return m
}

// ObserveRequest records one HTTP request. route is the matched chi pattern,
// "" for unmatched paths.
func (m *Metrics) ObserveRequest(route, method string, code int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(code)).Inc()
	m.httpLatency.WithLabelValues(route).Observe(elapsed.Seconds())
}

// ObserveOperation and ObserveField satisfy graph.Observer.
func (m *Metrics) ObserveOperation(outcome string, elapsed time.Duration) {
	m.operations.WithLabelValues(outcome).Inc()
	if outcome != "invalid" {
		m.operationTimes.Observe(elapsed.Seconds())
	}
}

func (m *Metrics) ObserveField(typeName, field, outcome string, elapsed time.Duration) {
	m.fields.WithLabelValues(typeName, field, outcome).Observe(elapsed.Seconds())
}
