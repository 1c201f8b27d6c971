// ABOUTME: Search service filters fetched articles by a free-text query
// ABOUTME: Matching is a case-insensitive substring test on title and description

package search

import (
	"context"
	"strings"
	"unicode/utf8"

	"newsdesk-api/core/domain"
	coreerrors "newsdesk-api/core/errors"
)

// MaxQueryLength bounds the accepted query, in characters
const MaxQueryLength = 100

// Fetcher resolves a serialized query key to a result
type Fetcher interface {
	Fetch(ctx context.Context, key string) (domain.FetchResult, error)
}

// SearchService narrows keyed results down to matching articles
type SearchService struct {
	fetcher Fetcher
}

// NewSearchService creates a new search service instance
func NewSearchService(fetcher Fetcher) *SearchService {
	return &SearchService{
		fetcher: fetcher,
	}
}

// validateQuery rejects queries the filter should not run
func validateQuery(query string) error {
	if utf8.RuneCountInString(query) > MaxQueryLength {
		return &coreerrors.ValidationError{Field: "q", Message: "search query cannot exceed 100 characters"}
	}
	return nil
}

// Search fetches key and keeps the articles matching query. An empty query
// keeps everything. TotalResults is the number of matches.
func (s *SearchService) Search(ctx context.Context, key, query string) (domain.FetchResult, error) {
	if err := validateQuery(query); err != nil {
		return domain.FetchResult{}, err
	}

	result, err := s.fetcher.Fetch(ctx, key)
	if err != nil {
		return domain.FetchResult{}, err
	}

	return domain.NewListResult(Filter(result.Articles, query)), nil
}

// Filter returns the articles whose title or description contains query,
// ignoring case and surrounding whitespace, in their original order
func Filter(articles []domain.Article, query string) []domain.Article {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return articles
	}

	matched := make([]domain.Article, 0, len(articles))
	for _, article := range articles {
		if Matches(article, needle) {
			matched = append(matched, article)
		}
	}
	return matched
}

// Matches reports whether a lower-cased needle occurs in the article's title
// or description
func Matches(article domain.Article, needle string) bool {
	if strings.Contains(strings.ToLower(article.Title), needle) {
		return true
	}
	return article.Description != nil && strings.Contains(strings.ToLower(*article.Description), needle)
}
