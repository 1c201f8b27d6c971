// ABOUTME: Main entry point for the Newsdesk API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"newsdesk-api/api"
	"newsdesk-api/api/handlers"
	"newsdesk-api/api/middleware"
	"newsdesk-api/core/cache"
	"newsdesk-api/core/domain"
	"newsdesk-api/core/favorites"
	"newsdesk-api/core/interfaces"
	"newsdesk-api/core/news"
	"newsdesk-api/core/search"
	"newsdesk-api/core/sources"
	"newsdesk-api/core/workers"
	"newsdesk-api/infrastructure/cache/memory"
	"newsdesk-api/infrastructure/cache/redis"
	"newsdesk-api/infrastructure/cache/sqlite"
	"newsdesk-api/infrastructure/http/breaker"
	stdhttp "newsdesk-api/infrastructure/http/standard"
	"newsdesk-api/infrastructure/logger/structured"
	"newsdesk-api/pkg/config"
	"newsdesk-api/pkg/featureflags"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, err := structured.New(structured.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	flags := featureflags.NewEnvManager("")
	ctx := context.Background()

	logger.Info("Starting Newsdesk API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
		"flags":      flags.GetAllFlags(),
	})

	if missing := cfg.MissingSources(); len(missing) > 0 {
		logger.Warn("Upstream sources are not configured and will return empty results", map[string]interface{}{
			"missing": missing,
		})
	}

	store, closeStore := newStore(cfg, logger)
	defer closeStore()

	httpClient := stdhttp.NewStandardHTTPClientWithTransport(cfg.Server.HTTPTimeout, &middleware.LoggingRoundTripper{
		Transport: http.DefaultTransport,
		Logger:    logger,
	})

	// Each upstream gets its own breaker so one failing API does not block the others
	breakers := map[string]handlers.StateReporter{}
	clientFor := func(name string) interfaces.HTTPClient {
		if !flags.IsEnabled(ctx, featureflags.BreakerEnabled) {
			return httpClient
		}
		guarded := breaker.New(httpClient, breaker.DefaultConfig(name), logger)
		breakers[name] = guarded
		return guarded
	}

	depsFor := func(name string) interfaces.Dependencies {
		return interfaces.Dependencies{
			HTTPClient: clientFor(name),
			Logger:     logger,
		}
	}

	src := news.Sources{
		Headlines: sources.NewHeadlinesAdapter(depsFor(sources.HeadlinesSourceName), sources.HeadlinesConfig{
			BaseURL: cfg.Sources.Headlines.URL,
			APIKey:  cfg.Sources.Headlines.Key,
		}),
		Community: sources.NewCommunityAdapter(depsFor(sources.CommunitySourceName), sources.CommunityConfig{
			BaseURL: cfg.Sources.Community.URL,
			Tags:    cfg.Sources.Community.Tags,
		}),
		Newspaper: sources.NewNewspaperAdapter(depsFor(sources.NewspaperSourceName), sources.NewspaperConfig{
			BaseURL:  cfg.Sources.Newspaper.URL,
			APIKey:   cfg.Sources.Newspaper.Key,
			Sections: cfg.Sources.Newspaper.Sections,
		}),
	}

	var persistent cache.Policy
	if flags.IsEnabled(ctx, featureflags.CacheEnabled) {
		persistent = cache.NewPersistent(store, logger)
	} else {
		logger.Warn("Persistent cache disabled; every keyed query goes upstream", nil)
	}

	newsService := news.NewService(src, persistent, cache.NewSession(), logger)
	searchService := search.NewSearchService(newsService)
	favoritesService := favorites.NewFavoritesService(store)

	if cfg.Refresh.Interval > 0 && persistent != nil {
		refresher := workers.NewRefresher(newsService, logger, workers.RefresherConfig{
			Interval:   cfg.Refresh.Interval,
			MaxWorkers: cfg.Refresh.Workers,
			Keys:       refreshKeys(cfg.Refresh.Keys, logger),
		})
		if err := refresher.Start(); err != nil {
			logger.Error("Failed to start cache refresher", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			defer refresher.Stop()
			refresher.RefreshNow()
			logger.Info("Cache refresher started", map[string]interface{}{
				"interval": cfg.Refresh.Interval.String(),
			})
		}
	}

	humaAPI, router := api.NewAPIWithMiddleware(api.Config{
		Logger:      logger,
		Flags:       flags,
		RateLimit:   cfg.Server.RateLimit,
		RateBurst:   cfg.Server.RateBurst,
		CORSOrigins: cfg.Server.CORSOrigins,
	})

	handlers.NewNewsHandler(newsService).RegisterRoutes(humaAPI)
	handlers.NewSearchHandler(searchService, flags).RegisterRoutes(humaAPI)
	handlers.NewFavoritesHandler(favoritesService, flags).RegisterRoutes(humaAPI)
	handlers.NewStatusHandler(handlers.StatusConfig{
		MissingSources: cfg.MissingSources(),
		Store:          cfg.Cache.Type,
		Flags:          flags,
		Breakers:       breakers,
	}).RegisterRoutes(humaAPI)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Server.HTTPTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
	}

	logger.Info("Server stopped", nil)
}

// newStore opens the configured durable store. When sqlite or redis cannot
// be opened the service keeps running on the in-memory store.
func newStore(cfg *config.Config, logger interfaces.Logger) (interfaces.Cache, func()) {
	noop := func() {}

	switch cfg.Cache.Type {
	case config.CacheTypeSQLite:
		store, err := sqlite.NewSQLiteCacheWithLogger(cfg.Cache.SQLitePath, logger)
		if err == nil {
			logger.Info("Using SQLite store", map[string]interface{}{"path": cfg.Cache.SQLitePath})
			return store, closer(store, logger)
		}
		logger.Error("Failed to open SQLite store, falling back to memory", map[string]interface{}{
			"error": err.Error(),
		})

	case config.CacheTypeRedis:
		store, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err == nil {
			logger.Info("Using Redis store", map[string]interface{}{"address": cfg.Cache.Redis.Address})
			return store, closer(store, logger)
		}
		logger.Error("Failed to connect to Redis, falling back to memory", map[string]interface{}{
			"error": err.Error(),
		})
	}

	logger.Info("Using memory store", nil)
	return memory.NewMemoryCache(), noop
}

// refreshKeys returns the landing queries plus any configured extras.
// Extras with an unknown type are skipped.
func refreshKeys(extra []string, logger interfaces.Logger) []domain.QueryKey {
	keys := []domain.QueryKey{news.LandingHeaderKey, news.LandingLatestKey, news.LandingCommunityKey}
	for _, raw := range extra {
		q := news.NormalizeQuery(domain.ParseQueryKey(raw))
		if !q.Type.IsKnown() {
			logger.Warn("Ignoring refresh key with unknown type", map[string]interface{}{
				"key": raw,
			})
			continue
		}
		keys = append(keys, q)
	}
	return keys
}

func closer(c io.Closer, logger interfaces.Logger) func() {
	return func() {
		if err := c.Close(); err != nil {
			logger.Warn("Failed to close store", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
}
