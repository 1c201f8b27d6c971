// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Provides clean separation between business logic and API layer

package mappers

import (
	"newsdesk-api/api/dto/requests"
	"newsdesk-api/api/dto/responses"
	"newsdesk-api/core/domain"
	"newsdesk-api/core/news"
)

// ToArticleResponse converts a domain Article to its DTO
func ToArticleResponse(article domain.Article) responses.ArticleResponse {
	return responses.ArticleResponse{
		ID:          article.ID,
		Title:       article.Title,
		Description: article.Description,
		URL:         article.URL,
		ImageURL:    article.ImageURL,
		Author:      article.Author,
		Content:     article.Content,
		PublishedAt: article.PublishedAt,
		Source: responses.SourceResponse{
			ID:   article.Source.ID,
			Name: article.Source.Name,
		},
		Category: article.Category,
	}
}

// ToArticleResponses converts a slice, never returning nil
func ToArticleResponses(articles []domain.Article) []responses.ArticleResponse {
	out := make([]responses.ArticleResponse, 0, len(articles))
	for _, article := range articles {
		out = append(out, ToArticleResponse(article))
	}
	return out
}

// ToArticleListResponse converts a result fetched at page and pageSize
func ToArticleListResponse(result domain.FetchResult, page, pageSize int) responses.ArticleListResponse {
	return responses.ArticleListResponse{
		Articles:     ToArticleResponses(result.Articles),
		TotalResults: result.TotalResults,
		Page:         page,
		PageSize:     pageSize,
		HasMore:      result.HasMore(page, pageSize),
	}
}

// ToKeyedListResponse converts a result fetched for q
func ToKeyedListResponse(result domain.FetchResult, q domain.QueryKey) responses.ArticleListResponse {
	return ToArticleListResponse(result, q.Page, q.PageSize)
}

// ToLandingResponse converts the composed landing page
func ToLandingResponse(landing news.Landing) responses.LandingResponse {
	return responses.LandingResponse{
		Header:    ToKeyedListResponse(landing.Header, news.LandingHeaderKey),
		Latest:    ToKeyedListResponse(landing.Latest, news.LandingLatestKey),
		Community: ToKeyedListResponse(landing.Community, news.LandingCommunityKey),
	}
}

// ToFavoritesResponse converts the saved list
func ToFavoritesResponse(saved []domain.Article) responses.FavoritesResponse {
	return responses.FavoritesResponse{
		Favorites: ToArticleResponses(saved),
		Count:     len(saved),
	}
}

// ArticleFromRequest converts a favorites request body to a domain Article
func ArticleFromRequest(req requests.SaveFavoriteRequest) domain.Article {
	return domain.Article{
		ID:          req.ID,
		Title:       req.Title,
		Description: req.Description,
		URL:         req.URL,
		ImageURL:    req.ImageURL,
		Author:      req.Author,
		Content:     req.Content,
		PublishedAt: req.PublishedAt,
		Source: domain.Source{
			ID:   req.Source.ID,
			Name: req.Source.Name,
		},
		Category: req.Category,
	}
}
