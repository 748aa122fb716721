// Package metrics holds the Prometheus collectors exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "vastum"

var (
	// RequestsTotal counts HTTP requests by route, method and status code.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests processed, by route, method and status.",
	}, []string{"route", "method", "status"})

	// RequestDuration observes HTTP latency by route and method.
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})

	ContactsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contacts_created_total",
		Help:      "Contact submissions stored, by company type.",
	}, []string{"tipo_empresa"})

	LogosCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logos_created_total",
		Help:      "Logos added to the gallery.",
	})

	LogosDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logos_deleted_total",
		Help:      "Logos removed from the gallery.",
	})
)
