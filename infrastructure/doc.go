// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as durable storage, HTTP communication, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache/sqlite: File-backed durable store (default)
// - cache/redis: Redis durable store with namespaced keys
// - cache/memory: In-process store using go-cache, for tests and local runs
// - http/standard: Single-attempt HTTP client for upstream APIs
// - http/breaker: Circuit breaker wrapper around any HTTP client
// - logger/structured: logrus-backed structured logger
//
// # Durable stores
//
// Every store returns interfaces.ErrCacheMiss for absent keys and treats a
// zero TTL as "keep forever":
//
//	store, err := sqlite.NewSQLiteCache("newsdesk.db")
//	err = store.Set(ctx, "news:technology:1:6", payload, 0)
//	value, err := store.Get(ctx, "news:technology:1:6")
//
// # HTTP Client
//
//	client := standard.NewStandardHTTPClient(30 * time.Second)
//	guarded := breaker.New(client, breaker.DefaultConfig("upstream"), logger)
//	resp, err := guarded.Get(ctx, "https://example.com")
//
// # Logger
//
//	logger, err := structured.New(structured.Options{Level: "info", Format: "json"})
//	logger.Info("Fetched articles", map[string]interface{}{
//	    "source": "NewsAPI",
//	    "count":  42,
//	})
package infrastructure
