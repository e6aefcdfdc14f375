// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultBuckets are latency buckets in seconds.
var DefaultBuckets = []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1}

var (
	Evaluations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pwmeter",
		Name:      "evaluations_total",
		Help:      "Password strength evaluations by rating.",
	}, []string{"rating"})

	Generations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pwmeter",
		Name:      "generations_total",
		Help:      "Password generation requests by result.",
	}, []string{"result"})

	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "pwmeter",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   DefaultBuckets,
	}, []string{"method", "route", "status"})
)
