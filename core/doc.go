// Package core contains the business logic for the Newsdesk API.
// It is framework-agnostic: nothing here imports the HTTP layer or a
// concrete store, so every service can be exercised in isolation.
//
// The core package is organized into several sub-packages:
//
// - domain: canonical Article, QueryKey, FetchResult and CacheEntry
// - sources: headlines, community and newspaper adapters that normalize upstream payloads
// - cache: persistent (60s) and session (5 minute) freshness tiers
// - news: the router that dispatches queries to adapters through the tiers
// - search: text filtering over a keyed fetch
// - favorites: saved articles kept in the durable store
// - workers: background refresher that keeps popular queries warm
// - errors: typed errors mapped to HTTP statuses by the api layer
// - interfaces: contracts for external dependencies (cache, HTTP, logger)
//
// # Failure model
//
// Adapters never return errors. A missing key, a transport failure, a
// non-2xx status or an unreadable body all yield an empty result, and that
// empty result is cached like any other. The only hard error on the keyed
// path is an unknown query type.
//
// # Usage Example
//
//	import (
//	    "newsdesk-api/core/cache"
//	    "newsdesk-api/core/interfaces"
//	    "newsdesk-api/core/news"
//	    "newsdesk-api/core/sources"
//	)
//
//	deps := interfaces.Dependencies{
//	    HTTPClient: httpClient, // implements interfaces.HTTPClient
//	    Logger:     logger,     // implements interfaces.Logger
//	}
//
//	svc := news.NewService(news.Sources{
//	    Headlines: sources.NewHeadlinesAdapter(deps, sources.HeadlinesConfig{BaseURL: url, APIKey: key}),
//	}, cache.NewPersistent(store, logger), cache.NewSession(), logger)
//
//	result, err := svc.Fetch(ctx, "news:technology:1:6")
package core
