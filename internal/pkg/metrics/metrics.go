// Package metrics holds the Prometheus collectors shared by the HTTP layer
// and the outbound provider clients.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "restaurant_explorer"

// Provider call outcomes.
const (
	OutcomeSuccess = "success"
	OutcomeEmpty   = "empty"
	OutcomeError   = "error"
)

var (
	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20},
		},
		[]string{"method", "path", "status"},
	)

	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	providerCallDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "provider_call_duration_seconds",
			Help:      "Outbound provider call duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"provider", "operation"},
	)

	providerCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_calls_total",
			Help:      "Total number of outbound provider calls by outcome",
		},
		[]string{"provider", "operation", "outcome"},
	)
)

func init() {
	prometheus.MustRegister(httpRequestDuration)
	prometheus.MustRegister(httpRequestsTotal)
	prometheus.MustRegister(providerCallDuration)
	prometheus.MustRegister(providerCallsTotal)
}

// ObserveHTTPRequest records one served request.
func ObserveHTTPRequest(method, path string, status int, elapsed time.Duration) {
	if path == "" {
		path = "unknown"
	}
	code := strconv.Itoa(status)
	httpRequestDuration.WithLabelValues(method, path, code).Observe(elapsed.Seconds())
	httpRequestsTotal.WithLabelValues(method, path, code).Inc()
}

// ObserveProviderCall records one outbound call to a provider endpoint.
func ObserveProviderCall(provider, operation, outcome string, elapsed time.Duration) {
	providerCallDuration.WithLabelValues(provider, operation).Observe(elapsed.Seconds())
	providerCallsTotal.WithLabelValues(provider, operation, outcome).Inc()
}
