// Package metrics defines the Prometheus collectors for the sentiment
// pipeline. Collectors are package-level promauto vars so any component can
// record without wiring.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Pipeline metrics
var (
	// PostsAnalyzedTotal counts classified posts by classification label.
	PostsAnalyzedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sentiment_posts_analyzed_total",
			Help: "Total posts classified, by classification",
		},
		[]string{"classification"},
	)

	// SpamFilteredTotal counts posts dropped by the spam filter.
	SpamFilteredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sentiment_spam_filtered_total",
			Help: "Total posts dropped by the spam filter",
		},
	)

	// BatchProcessingDuration tracks end-to-end batch processing latency.
	BatchProcessingDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sentiment_batch_processing_duration_seconds",
			Help:    "Duration of one fetch-filter-classify-aggregate cycle",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
	)
)

// Alerting metrics
var (
	// AlertsFiredTotal counts alerts by type and severity.
	AlertsFiredTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sentiment_alerts_fired_total",
			Help: "Total alerts fired, by type and severity",
		},
		[]string{"type", "severity"},
	)
)

// Source metrics
var (
	// SourceFetchFailures counts failed post-source fetches (including
	// fetches rejected by an open circuit).
	SourceFetchFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sentiment_source_fetch_failures_total",
			Help: "Total failed post source fetches",
		},
	)

	// SourceCircuitState is the source circuit breaker state
	// (0=closed, 1=half-open, 2=open).
	SourceCircuitState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "sentiment_source_circuit_state",
			Help: "Post source circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
	)
)

// Streaming metrics
var (
	// StreamSubscribers is the number of connected stream subscribers.
	StreamSubscribers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "sentiment_stream_subscribers",
			Help: "Currently connected stream subscribers",
		},
	)

	// StreamingKeywords is the number of keywords with an active loop.
	StreamingKeywords = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "sentiment_streaming_keywords",
			Help: "Keywords with an active streaming loop",
		},
	)

	// SlowClientsEvicted counts subscribers dropped for not keeping up.
	SlowClientsEvicted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sentiment_slow_clients_evicted_total",
			Help: "Subscribers dropped because their send buffer filled",
		},
	)

	// EventsBroadcastTotal counts events fanned out to subscribers, by type.
	EventsBroadcastTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sentiment_events_broadcast_total",
			Help: "Stream events delivered to subscriber send buffers, by type",
		},
		[]string{"type"},
	)
)
