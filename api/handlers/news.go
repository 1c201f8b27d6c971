// ABOUTME: News handlers for the Huma API
// ABOUTME: Exposes the keyed, section, category and landing fetch paths

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"newsdesk-api/api/dto/mappers"
	"newsdesk-api/api/dto/responses"
	"newsdesk-api/core/domain"
	"newsdesk-api/core/news"
)

// NewsService is what the handlers need from the news service
type NewsService interface {
	Fetch(ctx context.Context, key string) (domain.FetchResult, error)
	FetchSection(ctx context.Context, category string, page, pageSize int) domain.FetchResult
	FetchCategory(ctx context.Context, category string) domain.FetchResult
	FetchLanding(ctx context.Context) (news.Landing, error)
}

// NewsHandler handles article fetch requests
type NewsHandler struct {
	news NewsService
}

// NewNewsHandler creates a new news handler
func NewNewsHandler(service NewsService) *NewsHandler {
	return &NewsHandler{news: service}
}

// RegisterRoutes registers all news routes
func (h *NewsHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "fetchByKey",
		Method:      http.MethodGet,
		Path:        "/news",
		Summary:     "Fetch articles by query key",
		Description: "Resolves a type:category:page:pageSize key through the persistent cache. Types are news, header and dev.",
		Tags:        []string{"News"},
	}, h.FetchByKey)

	huma.Register(api, huma.Operation{
		OperationID: "fetchSection",
		Method:      http.MethodGet,
		Path:        "/sections/{category}",
		Summary:     "Fetch a newspaper section",
		Description: "Fetches a page of a newspaper section directly. Unmapped categories use the home section.",
		Tags:        []string{"News"},
	}, h.FetchSection)

	huma.Register(api, huma.Operation{
		OperationID: "fetchCategory",
		Method:      http.MethodGet,
		Path:        "/headlines/{category}",
		Summary:     "Fetch headlines for a category",
		Description: "Returns the first page of headlines for a category, cached for five minutes. 'all' means general.",
		Tags:        []string{"News"},
	}, h.FetchCategory)

	huma.Register(api, huma.Operation{
		OperationID: "fetchLanding",
		Method:      http.MethodGet,
		Path:        "/landing",
		Summary:     "Fetch the landing page",
		Description: "Loads banner headlines, latest headlines and community posts concurrently",
		Tags:        []string{"News"},
	}, h.FetchLanding)
}

// FetchByKeyInput defines the input for the FetchByKey operation
type FetchByKeyInput struct {
	Key string `query:"key" required:"true" minLength:"1" doc:"Query key, e.g. news:technology:1:6"`
}

// ArticleListOutput is a page of articles
type ArticleListOutput struct {
	Body responses.ArticleListResponse
}

// FetchByKey handles GET /news
func (h *NewsHandler) FetchByKey(ctx context.Context, input *FetchByKeyInput) (*ArticleListOutput, error) {
	result, err := h.news.Fetch(ctx, input.Key)
	if err != nil {
		return nil, toHumaError(err)
	}

	q := news.NormalizeQuery(domain.ParseQueryKey(input.Key))
	return &ArticleListOutput{Body: mappers.ToKeyedListResponse(result, q)}, nil
}

// FetchSectionInput defines the input for the FetchSection operation
type FetchSectionInput struct {
	Category string `path:"category" doc:"Category, mapped to a newspaper section"`
	Page     int    `query:"page" minimum:"1" maximum:"10000" default:"1" doc:"Page number (1-based)"`
	PageSize int    `query:"pageSize" minimum:"1" maximum:"100" default:"10" doc:"Articles per page"`
}

// FetchSection handles GET /sections/{category}
func (h *NewsHandler) FetchSection(ctx context.Context, input *FetchSectionInput) (*ArticleListOutput, error) {
	result := h.news.FetchSection(ctx, input.Category, input.Page, input.PageSize)
	return &ArticleListOutput{Body: mappers.ToArticleListResponse(result, input.Page, input.PageSize)}, nil
}

// FetchCategoryInput defines the input for the FetchCategory operation
type FetchCategoryInput struct {
	Category string `path:"category" doc:"Headline category, or 'all'"`
}

// FetchCategory handles GET /headlines/{category}
func (h *NewsHandler) FetchCategory(ctx context.Context, input *FetchCategoryInput) (*ArticleListOutput, error) {
	result := h.news.FetchCategory(ctx, input.Category)
	return &ArticleListOutput{Body: mappers.ToArticleListResponse(result, 1, news.CategoryPageSize)}, nil
}

// LandingOutput is the composed landing page
type LandingOutput struct {
	Body responses.LandingResponse
}

// FetchLanding handles GET /landing
func (h *NewsHandler) FetchLanding(ctx context.Context, input *struct{}) (*LandingOutput, error) {
	landing, err := h.news.FetchLanding(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &LandingOutput{Body: mappers.ToLandingResponse(landing)}, nil
}
