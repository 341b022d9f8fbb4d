package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	upstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "brandpulse_upstream_requests_total",
			Help: "Total number of upstream API calls by upstream, call type and status.",
		},
		[]string{"upstream", "call_type", "status"},
	)

	upstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "brandpulse_upstream_request_duration_seconds",
			Help:    "Latency of upstream API calls.",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20, 30},
		},
		[]string{"upstream", "call_type"},
	)

	llmExtractionFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "brandpulse_llm_extraction_failures_total",
			Help: "Total number of model replies that did not contain a parseable JSON object.",
		},
		[]string{"route"},
	)
)
