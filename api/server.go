// ABOUTME: Huma API server configuration and setup
// ABOUTME: Provides OpenAPI documentation, middleware and the metrics endpoint

package api

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"newsdesk-api/api/middleware"
	"newsdesk-api/core/interfaces"
	"newsdesk-api/pkg/featureflags"
)

const (
	// Title is the OpenAPI title
	Title = "Newsdesk API"

	// Version is the OpenAPI version
	Version = "1.0.0"

	// MetricsPath serves the prometheus exposition
	MetricsPath = "/metrics"
)

// Config holds configuration for the API
type Config struct {
	Logger      interfaces.Logger
	Flags       featureflags.Manager
	RateLimit   float64 // sustained requests per second per client
	RateBurst   int
	CORSOrigins []string
}

// NewAPI creates and configures a new Huma API instance without middleware
func NewAPI() (huma.API, chi.Router) {
	return NewAPIWithMiddleware(Config{})
}

// NewAPIWithMiddleware creates a new API with middleware configured. Rate
// limiting and /metrics follow their feature flags; a nil flag manager
// uses the flag defaults.
func NewAPIWithMiddleware(cfg Config) (huma.API, chi.Router) {
	router := chi.NewRouter()

	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	// CORS runs first so preflight requests are not rate limited
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	if flagEnabled(cfg.Flags, featureflags.RateLimitEnabled) && cfg.RateLimit > 0 && cfg.RateBurst > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateBurst)
		router.Use(middleware.RateLimitMiddleware(limiter))
	}

	if flagEnabled(cfg.Flags, featureflags.MetricsEnabled) {
		router.Handle(MetricsPath, promhttp.Handler())
	}

	config := huma.DefaultConfig(Title, Version)
	config.Info.Description = "Fetches, normalizes and caches articles from headline, newspaper and community sources"

	// The OpenAPI spec is served at /openapi.json and the docs UI at /docs
	return humachi.New(router, config), router
}

func flagEnabled(flags featureflags.Manager, flag featureflags.FeatureFlag) bool {
	if flags == nil {
		return featureflags.Defaults[flag]
	}
	return flags.IsEnabled(context.Background(), flag)
}
