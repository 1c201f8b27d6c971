// Package metrics provides centralized Prometheus metrics for the fetch and cache layers.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Cache metrics track hit ratios per tier
var (
	// CacheLookupsTotal counts cache reads by tier and result (hit, miss, error)
	CacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsdesk_cache_lookups_total",
			Help: "Total number of cache lookups by tier and result",
		},
		[]string{"tier", "result"},
	)

	// CacheWritesTotal counts cache writes by tier and result (ok, error)
	CacheWritesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsdesk_cache_writes_total",
			Help: "Total number of cache writes by tier and result",
		},
		[]string{"tier", "result"},
	)
)

// Upstream metrics track the three source APIs
var (
	// UpstreamRequestsTotal counts adapter calls by source and outcome (success, failure, skipped)
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsdesk_upstream_requests_total",
			Help: "Total number of upstream API requests by source and outcome",
		},
		[]string{"source", "outcome"},
	)

	// UpstreamRequestDuration measures upstream latency in seconds
	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "newsdesk_upstream_request_duration_seconds",
			Help:    "Upstream API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"source"},
	)

	// ArticlesNormalizedTotal counts canonical articles produced per source
	ArticlesNormalizedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsdesk_articles_normalized_total",
			Help: "Total number of articles normalized into the canonical model",
		},
		[]string{"source"},
	)

	// ArticlesDiscardedTotal counts upstream records dropped during normalization
	ArticlesDiscardedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsdesk_articles_discarded_total",
			Help: "Total number of upstream records discarded by reason",
		},
		[]string{"source", "reason"},
	)
)
