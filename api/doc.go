// Package api provides the HTTP API layer for the Newsdesk service.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Endpoints
//
//	GET    /news?key=news:technology:1:6       keyed fetch through the persistent cache
//	GET    /sections/{category}?page=&pageSize= newspaper section
//	GET    /headlines/{category}               headlines cached per session window
//	GET    /landing                            banner, latest and community in one call
//	GET    /search?key=&q=                     keyed fetch filtered by text
//	GET    /favorites                          saved articles
//	PUT    /favorites                          save an article
//	DELETE /favorites/{id}                     remove a saved article
//	GET    /status                             missing configuration and flags
//	GET    /metrics                            prometheus exposition
//
// List endpoints return articles, totalResults, page, pageSize and hasMore.
//
// # Usage Example
//
//	humaAPI, router := api.NewAPIWithMiddleware(api.Config{
//	    Logger:    logger,
//	    Flags:     flags,
//	    RateLimit: 10,
//	    RateBurst: 20,
//	})
//
//	handlers.NewNewsHandler(newsService).RegisterRoutes(humaAPI)
//
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// Errors use the RFC 7807 format. An unknown query type is a 400, a missing
// favorite is a 404; upstream failures never surface because the sources
// answer with empty results instead.
package api
