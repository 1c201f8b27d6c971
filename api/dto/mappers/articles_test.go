package mappers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"newsdesk-api/api/dto/requests"
	"newsdesk-api/core/domain"
	"newsdesk-api/core/news"
)

func testArticle(id string) domain.Article {
	return domain.Article{
		ID:          id,
		Title:       "Title " + id,
		Description: domain.StringPtr("Summary"),
		URL:         "https://example.com/" + id,
		PublishedAt: "Jan 5, 2024",
		Source:      domain.Source{ID: domain.StringPtr("the-verge"), Name: "The Verge"},
		Category:    "Technology",
	}
}

func TestToArticleResponse(t *testing.T) {
	resp := ToArticleResponse(testArticle("a"))

	assert.Equal(t, "a", resp.ID)
	assert.Equal(t, "Summary", *resp.Description)
	assert.Nil(t, resp.ImageURL)
	assert.Equal(t, "the-verge", *resp.Source.ID)
	assert.Equal(t, "The Verge", resp.Source.Name)
	assert.Equal(t, "Technology", resp.Category)
}

func TestToArticleListResponse_HasMore(t *testing.T) {
	result := domain.FetchResult{Articles: []domain.Article{testArticle("a")}, TotalResults: 25}

	assert.True(t, ToArticleListResponse(result, 2, 10).HasMore)
	assert.False(t, ToArticleListResponse(result, 3, 10).HasMore)

	resp := ToArticleListResponse(result, 1, 10)
	assert.Equal(t, 25, resp.TotalResults)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 10, resp.PageSize)
	assert.Len(t, resp.Articles, 1)
}

func TestToArticleListResponse_EmptyIsNotNil(t *testing.T) {
	resp := ToArticleListResponse(domain.FetchResult{}, 1, 10)

	assert.NotNil(t, resp.Articles)
	assert.Empty(t, resp.Articles)
	assert.False(t, resp.HasMore)
}

func TestToLandingResponse(t *testing.T) {
	landing := news.Landing{
		Header:    domain.FetchResult{Articles: []domain.Article{testArticle("h")}, TotalResults: 70},
		Latest:    domain.FetchResult{Articles: []domain.Article{testArticle("l")}, TotalResults: 6},
		Community: domain.EmptyResult(),
	}

	resp := ToLandingResponse(landing)

	assert.Equal(t, 50, resp.Header.PageSize)
	assert.True(t, resp.Header.HasMore)
	assert.Equal(t, 6, resp.Latest.PageSize)
	assert.False(t, resp.Latest.HasMore)
	assert.Empty(t, resp.Community.Articles)
}

func TestArticleFromRequest_RoundTrip(t *testing.T) {
	article := testArticle("x")
	resp := ToArticleResponse(article)

	req := requests.SaveFavoriteRequest{
		ID:          resp.ID,
		Title:       resp.Title,
		Description: resp.Description,
		URL:         resp.URL,
		PublishedAt: resp.PublishedAt,
		Source:      requests.SourceRequest{ID: resp.Source.ID, Name: resp.Source.Name},
		Category:    resp.Category,
	}

	assert.Equal(t, article, ArticleFromRequest(req))
}

func TestToFavoritesResponse(t *testing.T) {
	resp := ToFavoritesResponse(nil)
	assert.NotNil(t, resp.Favorites)
	assert.Zero(t, resp.Count)

	resp = ToFavoritesResponse([]domain.Article{testArticle("a"), testArticle("b")})
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, "b", resp.Favorites[1].ID)
}
