// ABOUTME: Persistent cache tier stores results in the durable key-value store
// ABOUTME: Data and its timestamp live under sibling keys and are never evicted, only ignored once stale

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"newsdesk-api/core/domain"
	"newsdesk-api/core/interfaces"
	"newsdesk-api/pkg/metrics"
)

// TimestampSuffix is appended to a key to find its write time
const TimestampSuffix = "_time"

// Persistent serves results from the durable store while they are younger
// than the window. Store failures degrade to a miss so callers fetch live.
type Persistent struct {
	store  interfaces.Cache
	logger interfaces.Logger
	opts   options
}

// NewPersistent creates the persistent tier over store
func NewPersistent(store interfaces.Cache, logger interfaces.Logger, opts ...Option) *Persistent {
	if logger == nil {
		logger = interfaces.NopLogger{}
	}
	return &Persistent{
		store:  store,
		logger: logger,
		opts:   buildOptions(PersistentWindow, opts),
	}
}

// Name returns the tier name
func (p *Persistent) Name() string {
	return TierPersistent
}

// Window returns the freshness window
func (p *Persistent) Window() time.Duration {
	return p.opts.window
}

// Key is the serialized query key
func (p *Persistent) Key(q domain.QueryKey) string {
	return q.String()
}

// Get returns a hit only when both the data and timestamp entries exist,
// decode, and the entry is younger than the window
func (p *Persistent) Get(ctx context.Context, key string) (domain.FetchResult, bool) {
	if p.store == nil {
		metrics.RecordCacheLookup(TierPersistent, metrics.ResultMiss)
		return domain.FetchResult{}, false
	}

	stamp, err := p.store.Get(ctx, key+TimestampSuffix)
	if err != nil {
		p.lookupFailed(key, err)
		return domain.FetchResult{}, false
	}

	millis, err := strconv.ParseInt(string(stamp), 10, 64)
	if err != nil {
		p.logger.Warn("Discarding unreadable cache timestamp", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		metrics.RecordCacheLookup(TierPersistent, metrics.ResultMiss)
		return domain.FetchResult{}, false
	}

	entry := domain.CacheEntry{Timestamp: millis}
	if !entry.IsFresh(p.opts.now(), p.opts.window) {
		metrics.RecordCacheLookup(TierPersistent, metrics.ResultMiss)
		return domain.FetchResult{}, false
	}

	data, err := p.store.Get(ctx, key)
	if err != nil {
		p.lookupFailed(key, err)
		return domain.FetchResult{}, false
	}

	if err := json.Unmarshal(data, &entry.Data); err != nil {
		p.logger.Warn("Discarding unreadable cache entry", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		metrics.RecordCacheLookup(TierPersistent, metrics.ResultMiss)
		return domain.FetchResult{}, false
	}

	metrics.RecordCacheLookup(TierPersistent, metrics.ResultHit)
	return entry.Data, true
}

// Set writes the data entry then its timestamp. Failures are logged and
// swallowed; the next read simply misses.
func (p *Persistent) Set(ctx context.Context, key string, result domain.FetchResult) {
	if p.store == nil {
		return
	}

	entry := domain.NewCacheEntry(result, p.opts.now())

	data, err := json.Marshal(entry.Data)
	if err == nil {
		err = p.store.Set(ctx, key, data, 0)
	}
	if err == nil {
		err = p.store.Set(ctx, key+TimestampSuffix, []byte(strconv.FormatInt(entry.Timestamp, 10)), 0)
	}

	metrics.RecordCacheWrite(TierPersistent, err)
	if isCancelled(err) {
		p.logger.Debug("Cache write abandoned by caller", map[string]interface{}{
			"key":  key,
			"tier": TierPersistent,
		})
		return
	}
	if err != nil {
		p.logger.Error("Failed to write cache entry", map[string]interface{}{
			"key":   key,
			"tier":  TierPersistent,
			"error": err.Error(),
		})
	}
}

func (p *Persistent) lookupFailed(key string, err error) {
	if errors.Is(err, interfaces.ErrCacheMiss) || isCancelled(err) {
		metrics.RecordCacheLookup(TierPersistent, metrics.ResultMiss)
		return
	}

	metrics.RecordCacheLookup(TierPersistent, metrics.ResultError)
	p.logger.Error("Cache store unavailable, fetching live", map[string]interface{}{
		"key":   key,
		"tier":  TierPersistent,
		"error": err.Error(),
	})
}

// isCancelled reports whether err comes from the caller's context rather
// than the store
func isCancelled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
