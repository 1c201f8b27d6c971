package handlers

import (
	"context"
	"fmt"

	"newsdesk-api/core/domain"
	"newsdesk-api/core/news"
)

type mockNewsService struct {
	fetchFunc    func(ctx context.Context, key string) (domain.FetchResult, error)
	sectionCalls []string
	landing      news.Landing
	landingErr   error
	category     string
}

func (m *mockNewsService) Fetch(ctx context.Context, key string) (domain.FetchResult, error) {
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, key)
	}
	return domain.EmptyResult(), nil
}

func (m *mockNewsService) FetchSection(ctx context.Context, category string, page, pageSize int) domain.FetchResult {
	m.sectionCalls = append(m.sectionCalls, fmt.Sprintf("%s:%d:%d", category, page, pageSize))
	return domain.FetchResult{Articles: articles(pageSize), TotalResults: 25}
}

func (m *mockNewsService) FetchCategory(ctx context.Context, category string) domain.FetchResult {
	m.category = category
	return domain.FetchResult{Articles: articles(20), TotalResults: 38}
}

func (m *mockNewsService) FetchLanding(ctx context.Context) (news.Landing, error) {
	return m.landing, m.landingErr
}

func testArticle(i int) domain.Article {
	return domain.Article{
		ID:          fmt.Sprintf("https://example.com/%d", i),
		Title:       fmt.Sprintf("Robots take over %d", i),
		Description: domain.StringPtr("A story"),
		URL:         fmt.Sprintf("https://example.com/%d", i),
		PublishedAt: "Jan 5, 2024",
		Source:      domain.Source{Name: "NewsAPI"},
		Category:    "Technology",
	}
}

func articles(n int) []domain.Article {
	out := make([]domain.Article, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, testArticle(i))
	}
	return out
}
