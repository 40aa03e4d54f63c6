package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Search pipeline Prometheus metrics.
var (
	SearchRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bylaw_search",
			Name:      "requests_total",
			Help:      "Total number of search requests by outcome",
		},
		[]string{"outcome"}, // ok, refused, empty, invalid, error
	)

	StageDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "bylaw_search",
			Name:      "stage_duration_seconds",
			Help:      "Pipeline stage duration in seconds",
			Buckets:   []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"stage"}, // embed, retrieve, synthesize
	)

	AnswerFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bylaw_search",
			Name:      "answer_failures_total",
			Help:      "Answer generation failures that degraded the answer to null",
		},
		[]string{"reason"},
	)

	EmbeddingCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bylaw_search",
			Name:      "embedding_cache_total",
			Help:      "Embedding cache hits and misses",
		},
		[]string{"result"}, // hit, miss, error
	)
)

var registerOnce sync.Once

// Register registers all collectors with the default registry. Safe to call more than once.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(SearchRequestsTotal)
		prometheus.MustRegister(StageDuration)
		prometheus.MustRegister(AnswerFailuresTotal)
		prometheus.MustRegister(EmbeddingCacheTotal)
		prometheus.MustRegister(HTTPRequestsTotal)
	})
}
