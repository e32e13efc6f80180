package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// FeedMetrics holds the Prometheus instruments for the rate feed client.
type FeedMetrics struct {
	// Feed requests by endpoint, host role and outcome
	FetchesTotal *prometheus.CounterVec

	// Primary failures that triggered the mirror hop
	FallbacksTotal prometheus.Counter

	// Wall time of individual feed requests
	FetchDuration *prometheus.HistogramVec

	// Cache reads by cache name
	CacheHitsTotal   *prometheus.CounterVec
	CacheMissesTotal *prometheus.CounterVec

	// Conversions by currency pair
	ConversionsTotal *prometheus.CounterVec
}

// NewFeedMetrics registers and returns the feed client metrics.
func NewFeedMetrics() *FeedMetrics {
	return &FeedMetrics{
		FetchesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "feed_fetches_total",
				Help: "Number of HTTP requests issued against the rate feed",
			},
			[]string{"endpoint", "source", "outcome"},
		),

		FallbacksTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "feed_fallbacks_total",
				Help: "Number of primary feed failures retried against the mirror",
			},
		),

		FetchDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "feed_fetch_duration_seconds",
				Help:    "Duration of individual feed requests in seconds",
				Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
			},
			[]string{"endpoint"},
		),

		CacheHitsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "feed_cache_hits_total",
				Help: "Number of reads served from cache without network access",
			},
			[]string{"cache"},
		),

		CacheMissesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "feed_cache_misses_total",
				Help: "Number of reads that required a feed fetch",
			},
			[]string{"cache"},
		),

		ConversionsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "conversions_total",
				Help: "Number of currency conversions performed",
			},
			[]string{"from", "to"},
		),
	}
}

// RecordFetch records one feed request and its outcome.
func (m *FeedMetrics) RecordFetch(endpoint, source, outcome string) {
	m.FetchesTotal.WithLabelValues(endpoint, source, outcome).Inc()
}

// RecordFallback records a primary failure that triggered the mirror hop.
func (m *FeedMetrics) RecordFallback() {
	m.FallbacksTotal.Inc()
}

// ObserveFetchDuration records the wall time of one feed request.
func (m *FeedMetrics) ObserveFetchDuration(endpoint string, seconds float64) {
	m.FetchDuration.WithLabelValues(endpoint).Observe(seconds)
}

// RecordCacheHit records a read served from cache.
func (m *FeedMetrics) RecordCacheHit(cache string) {
	m.CacheHitsTotal.WithLabelValues(cache).Inc()
}

// RecordCacheMiss records a read that fell through to the feed.
func (m *FeedMetrics) RecordCacheMiss(cache string) {
	m.CacheMissesTotal.WithLabelValues(cache).Inc()
}

// RecordConversion records a completed conversion for a currency pair.
func (m *FeedMetrics) RecordConversion(from, to string) {
	m.ConversionsTotal.WithLabelValues(from, to).Inc()
}
