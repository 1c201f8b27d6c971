// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the core business logic

package interfaces

// Dependencies holds the external dependencies of a source adapter. The
// durable store is handed to the cache tiers directly.
type Dependencies struct {
	// HTTPClient performs upstream API requests
	HTTPClient HTTPClient

	// Logger provides structured logging
	Logger Logger
}
