// ABOUTME: CacheEntry domain model pairs a cached result with the time it was stored
// ABOUTME: Freshness is judged by age at read time, entries are never evicted eagerly

package domain

import "time"

// CacheEntry is a cached result and its write time in epoch milliseconds
type CacheEntry struct {
	Data      FetchResult `json:"data"`
	Timestamp int64       `json:"timestamp"`
}

// NewCacheEntry stamps data with now
func NewCacheEntry(data FetchResult, now time.Time) CacheEntry {
	return CacheEntry{
		Data:      data,
		Timestamp: now.UnixMilli(),
	}
}

// Age returns how long ago the entry was written
func (e CacheEntry) Age(now time.Time) time.Duration {
	return time.Duration(now.UnixMilli()-e.Timestamp) * time.Millisecond
}

// IsFresh reports whether the entry is strictly younger than window
func (e CacheEntry) IsFresh(now time.Time, window time.Duration) bool {
	return e.Age(now) < window
}
