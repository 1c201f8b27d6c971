// ABOUTME: Search handler for the Huma API
// ABOUTME: Filters a keyed fetch by a free-text query

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"newsdesk-api/api/dto/mappers"
	"newsdesk-api/core/domain"
	"newsdesk-api/core/news"
	"newsdesk-api/pkg/featureflags"
)

// SearchService is what the handler needs from the search service
type SearchService interface {
	Search(ctx context.Context, key, query string) (domain.FetchResult, error)
}

// SearchHandler handles search requests
type SearchHandler struct {
	search SearchService
	flags  featureflags.Manager
}

// NewSearchHandler creates a new search handler. A nil flag manager leaves
// search enabled.
func NewSearchHandler(service SearchService, flags featureflags.Manager) *SearchHandler {
	return &SearchHandler{search: service, flags: flags}
}

// RegisterRoutes registers the search route
func (h *SearchHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "searchArticles",
		Method:      http.MethodGet,
		Path:        "/search",
		Summary:     "Search articles",
		Description: "Fetches a query key and keeps articles whose title or description contains q, ignoring case",
		Tags:        []string{"Search"},
	}, h.Search)
}

// SearchInput defines the input for the Search operation
type SearchInput struct {
	Key   string `query:"key" required:"true" minLength:"1" doc:"Query key to search within"`
	Query string `query:"q" doc:"Text to look for; empty matches everything"`
}

// Search handles GET /search
func (h *SearchHandler) Search(ctx context.Context, input *SearchInput) (*ArticleListOutput, error) {
	if h.flags != nil && !h.flags.IsEnabled(ctx, featureflags.SearchEnabled) {
		return nil, errFeatureDisabled("search")
	}

	result, err := h.search.Search(ctx, input.Key, input.Query)
	if err != nil {
		return nil, toHumaError(err)
	}

	q := news.NormalizeQuery(domain.ParseQueryKey(input.Key))
	return &ArticleListOutput{Body: mappers.ToKeyedListResponse(result, q)}, nil
}
