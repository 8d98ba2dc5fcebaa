// Package metrics provides Prometheus metrics for the query pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// QueriesProcessed counts processed queries by outcome
	// (answered, help, empty).
	QueriesProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_queries_processed_total",
			Help: "Total number of queries processed by outcome",
		},
		[]string{"outcome"},
	)

	// IntentsDetected counts fired intent flags per query.
	IntentsDetected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_intents_detected_total",
			Help: "Total number of intent flags detected",
		},
		[]string{"intent"},
	)

	// CollaboratorFailures counts collaborator errors by source and code.
	CollaboratorFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_collaborator_failures_total",
			Help: "Total number of collaborator failures",
		},
		[]string{"collaborator", "error_code"},
	)

	// QueryDuration tracks end-to-end query processing time.
	QueryDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "assistant_query_duration_seconds",
			Help:    "End-to-end query processing duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// SectionsComposed tracks how many sections each answer contained.
	SectionsComposed = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "assistant_sections_composed",
			Help:    "Number of sections composed per answered query",
			Buckets: []float64{1, 2, 3},
		},
	)

	// CacheHits counts health info cache lookups by result.
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_cache_lookups_total",
			Help: "Total number of health info cache lookups by result",
		},
		[]string{"result"},
	)

	// LLMCallDuration tracks upstream model call latency.
	LLMCallDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "assistant_llm_call_duration_seconds",
			Help:    "Duration of upstream model calls in seconds",
			Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30},
		},
	)
)

// RecordQuery records a processed query with its outcome.
func RecordQuery(outcome string, seconds float64) {
	QueriesProcessed.WithLabelValues(outcome).Inc()
	QueryDuration.Observe(seconds)
}

// RecordIntents records every fired intent flag for a query.
func RecordIntents(intents []string) {
	for _, it := range intents {
		IntentsDetected.WithLabelValues(it).Inc()
	}
}

// RecordCollaboratorFailure records a failed collaborator call.
func RecordCollaboratorFailure(collaborator, errorCode string) {
	CollaboratorFailures.WithLabelValues(collaborator, errorCode).Inc()
}
