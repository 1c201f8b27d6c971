// ABOUTME: News service routes logical queries to source adapters through the cache tiers
// ABOUTME: Provides business logic for article fetching independent of the HTTP layer

package news

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"newsdesk-api/core/cache"
	"newsdesk-api/core/domain"
	coreerrors "newsdesk-api/core/errors"
	"newsdesk-api/core/interfaces"
	"newsdesk-api/core/sources"
)

const (
	// SectionDedupWindow is how long an identical section request reuses the
	// previous result. Zero disables reuse; concurrent calls are still collapsed.
	SectionDedupWindow = 5 * time.Second

	// CategoryPageSize is the page size of the session-cached category path
	CategoryPageSize = 20

	// AllCategories is the category label meaning "no filter"
	AllCategories = "all"
)

// Landing page queries
var (
	LandingHeaderKey    = domain.QueryKey{Type: domain.QueryTypeHeader, Category: "technology", Page: 1, PageSize: 50}
	LandingLatestKey    = domain.QueryKey{Type: domain.QueryTypeNews, Category: "technology", Page: 1, PageSize: 6}
	LandingCommunityKey = domain.QueryKey{Type: domain.QueryTypeDev, Category: "latest", Page: 1, PageSize: 6}
)

// Source is an upstream adapter. Fetch never fails; problems produce an
// empty result.
type Source interface {
	Name() string
	Fetch(ctx context.Context, category string, page, pageSize int) domain.FetchResult
}

// Sources groups the three adapters
type Sources struct {
	Headlines Source
	Community Source
	Newspaper Source
}

// Landing is the composed landing page
type Landing struct {
	Header    domain.FetchResult `json:"header"`
	Latest    domain.FetchResult `json:"latest"`
	Community domain.FetchResult `json:"community"`
}

// Service dispatches queries to sources and caches the results
type Service struct {
	sources    Sources
	persistent cache.Policy
	session    cache.Policy
	logger     interfaces.Logger

	sections    singleflight.Group
	recent      *gocache.Cache
	mu          sync.RWMutex
	dedupWindow time.Duration
}

// NewService creates a news service. A nil policy disables that tier.
func NewService(src Sources, persistent, session cache.Policy, logger interfaces.Logger) *Service {
	if logger == nil {
		logger = interfaces.NopLogger{}
	}
	return &Service{
		sources:     src,
		persistent:  persistent,
		session:     session,
		logger:      logger,
		recent:      gocache.New(SectionDedupWindow, 2*SectionDedupWindow),
		dedupWindow: SectionDedupWindow,
	}
}

// SetSectionDedupWindow changes how long section results are reused
func (s *Service) SetSectionDedupWindow(window time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dedupWindow = window
	s.recent.Flush()
}

func (s *Service) sectionDedupWindow() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dedupWindow
}

// Fetch resolves a serialized query key through the persistent tier. Unknown
// query types are returned as *errors.UnknownQueryTypeError and never cached.
func (s *Service) Fetch(ctx context.Context, key string) (domain.FetchResult, error) {
	q := domain.ParseQueryKey(key)

	source, err := s.sourceFor(q, key)
	if err != nil {
		return domain.FetchResult{}, err
	}

	q = NormalizeQuery(q)

	cacheKey := q.String()
	if s.persistent != nil {
		if cached, ok := s.persistent.Get(ctx, cacheKey); ok {
			s.logger.Debug("Serving cached result", map[string]interface{}{
				"key":  cacheKey,
				"tier": s.persistent.Name(),
			})
			return cached, nil
		}
	}

	result := source.Fetch(ctx, q.Category, q.Page, q.PageSize)

	// A caller that went away got an empty result that says nothing about the upstream
	if s.persistent != nil && ctx.Err() == nil {
		s.persistent.Set(ctx, cacheKey, result)
	}

	return result, nil
}

// Refresh fetches q from its source without consulting the persistent tier
// and overwrites the stored entry, restarting its window. An empty result
// is not written so a transient upstream failure does not replace good data.
func (s *Service) Refresh(ctx context.Context, q domain.QueryKey) (domain.FetchResult, error) {
	key := q.String()
	source, err := s.sourceFor(q, key)
	if err != nil {
		return domain.FetchResult{}, err
	}

	q = NormalizeQuery(q)
	result := source.Fetch(ctx, q.Category, q.Page, q.PageSize)

	if s.persistent != nil && len(result.Articles) > 0 {
		s.persistent.Set(ctx, q.String(), result)
	}

	return result, nil
}

// NormalizeQuery fills defaults that change the cache identity of a query.
// Community queries without a page size use the community default.
func NormalizeQuery(q domain.QueryKey) domain.QueryKey {
	if q.Type == domain.QueryTypeDev && q.PageSize == 0 {
		q.PageSize = sources.DefaultCommunityPageSize
	}
	return q
}

// FetchQuery is Fetch for an already parsed key
func (s *Service) FetchQuery(ctx context.Context, q domain.QueryKey) (domain.FetchResult, error) {
	return s.Fetch(ctx, q.String())
}

func (s *Service) sourceFor(q domain.QueryKey, key string) (Source, error) {
	var source Source
	switch q.Type {
	case domain.QueryTypeNews, domain.QueryTypeHeader:
		source = s.sources.Headlines
	case domain.QueryTypeDev:
		source = s.sources.Community
	default:
		return nil, &coreerrors.UnknownQueryTypeError{Type: string(q.Type), Key: key}
	}

	if source == nil {
		return nil, fmt.Errorf("no source configured for query type %q", q.Type)
	}
	return source, nil
}

// FetchSection fetches a newspaper section page directly, bypassing the
// persistent tier. Identical concurrent calls share one upstream request and
// results are reused for the dedup window.
func (s *Service) FetchSection(ctx context.Context, category string, page, pageSize int) domain.FetchResult {
	if s.sources.Newspaper == nil {
		return domain.EmptyResult()
	}

	key := fmt.Sprintf("%s:%d:%d", strings.ToLower(strings.TrimSpace(category)), page, pageSize)
	window := s.sectionDedupWindow()

	if window > 0 {
		if cached, ok := s.recent.Get(key); ok {
			return cached.(domain.FetchResult)
		}
	}

	// The shared fetch outlives any single caller; the transport timeout bounds it
	fetchCtx := context.WithoutCancel(ctx)
	ch := s.sections.DoChan(key, func() (interface{}, error) {
		result := s.sources.Newspaper.Fetch(fetchCtx, category, page, pageSize)
		if window > 0 {
			s.recent.Set(key, result, window)
		}
		return result, nil
	})

	select {
	case res := <-ch:
		if res.Shared {
			s.logger.Debug("Shared in-flight section request", map[string]interface{}{
				"key": key,
			})
		}
		return res.Val.(domain.FetchResult)
	case <-ctx.Done():
		return domain.EmptyResult()
	}
}

// FetchCategory returns the first page of headlines for category through the
// session tier. "all" and "" mean the general category.
func (s *Service) FetchCategory(ctx context.Context, category string) domain.FetchResult {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" || category == AllCategories {
		category = sources.DefaultHeadlinesCategory
	}

	if s.sources.Headlines == nil {
		return domain.EmptyResult()
	}

	q := domain.QueryKey{Type: domain.QueryTypeHeader, Category: category, Page: 1, PageSize: CategoryPageSize}

	if s.session != nil {
		if cached, ok := s.session.Get(ctx, s.session.Key(q)); ok {
			return cached
		}
	}

	result := s.sources.Headlines.Fetch(ctx, q.Category, q.Page, q.PageSize)

	if s.session != nil {
		s.session.Set(ctx, s.session.Key(q), result)
	}

	return result
}

// FetchLanding loads the three landing page queries concurrently. Each goes
// through the keyed path, so a failing source only empties its own slot.
func (s *Service) FetchLanding(ctx context.Context) (Landing, error) {
	var landing Landing
	g, gctx := errgroup.WithContext(ctx)

	slots := []struct {
		key  domain.QueryKey
		dest *domain.FetchResult
	}{
		{LandingHeaderKey, &landing.Header},
		{LandingLatestKey, &landing.Latest},
		{LandingCommunityKey, &landing.Community},
	}

	for _, slot := range slots {
		slot := slot
		g.Go(func() error {
			result, err := s.FetchQuery(gctx, slot.key)
			if err != nil {
				return fmt.Errorf("landing %s: %w", slot.key, err)
			}
			*slot.dest = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Landing{}, err
	}

	return landing, nil
}
