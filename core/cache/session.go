// ABOUTME: Session cache tier keeps recent per-category results in process memory
// ABOUTME: Independent of the persistent tier and with a longer freshness window

package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"newsdesk-api/core/domain"
	"newsdesk-api/pkg/metrics"
)

// Session is an in-memory tier keyed by category alone
type Session struct {
	entries *gocache.Cache
	opts    options
}

// NewSession creates an empty session tier. Entries are purged from memory
// some time after they stop being servable; freshness is still judged by age.
func NewSession(opts ...Option) *Session {
	o := buildOptions(SessionWindow, opts)
	return &Session{
		entries: gocache.New(o.window, 2*o.window),
		opts:    o,
	}
}

// Name returns the tier name
func (s *Session) Name() string {
	return TierSession
}

// Window returns the freshness window
func (s *Session) Window() time.Duration {
	return s.opts.window
}

// Key is the query category only
func (s *Session) Key(q domain.QueryKey) string {
	return q.Category
}

// Get returns a hit while the entry is younger than the window
func (s *Session) Get(ctx context.Context, key string) (domain.FetchResult, bool) {
	value, found := s.entries.Get(key)
	if !found {
		metrics.RecordCacheLookup(TierSession, metrics.ResultMiss)
		return domain.FetchResult{}, false
	}

	entry, ok := value.(domain.CacheEntry)
	if !ok || !entry.IsFresh(s.opts.now(), s.opts.window) {
		metrics.RecordCacheLookup(TierSession, metrics.ResultMiss)
		return domain.FetchResult{}, false
	}

	metrics.RecordCacheLookup(TierSession, metrics.ResultHit)
	return entry.Data, true
}

// Set stores result under key, last write wins
func (s *Session) Set(ctx context.Context, key string, result domain.FetchResult) {
	s.entries.SetDefault(key, domain.NewCacheEntry(result, s.opts.now()))
	metrics.RecordCacheWrite(TierSession, nil)
}

// Len reports how many entries are held, fresh or not
func (s *Session) Len() int {
	return s.entries.ItemCount()
}
