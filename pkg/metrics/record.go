package metrics

import "time"

// Cache lookup results
const (
	ResultHit   = "hit"
	ResultMiss  = "miss"
	ResultError = "error"
	ResultOK    = "ok"
)

// Upstream outcomes
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeSkipped = "skipped"
)

// RecordCacheLookup records a read against a cache tier
func RecordCacheLookup(tier, result string) {
	CacheLookupsTotal.WithLabelValues(tier, result).Inc()
}

// RecordCacheWrite records a write against a cache tier
func RecordCacheWrite(tier string, err error) {
	result := ResultOK
	if err != nil {
		result = ResultError
	}
	CacheWritesTotal.WithLabelValues(tier, result).Inc()
}

// RecordUpstream records one adapter call. Skipped calls (missing
// configuration) carry no latency.
func RecordUpstream(source, outcome string, duration time.Duration) {
	UpstreamRequestsTotal.WithLabelValues(source, outcome).Inc()
	if outcome != OutcomeSkipped {
		UpstreamRequestDuration.WithLabelValues(source).Observe(duration.Seconds())
	}
}

// RecordArticles records how many canonical articles a source produced
func RecordArticles(source string, count int) {
	if count > 0 {
		ArticlesNormalizedTotal.WithLabelValues(source).Add(float64(count))
	}
}

// RecordDiscarded records upstream records dropped for reason
func RecordDiscarded(source, reason string, count int) {
	if count > 0 {
		ArticlesDiscardedTotal.WithLabelValues(source, reason).Add(float64(count))
	}
}
