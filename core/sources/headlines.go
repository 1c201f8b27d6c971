// ABOUTME: Headlines adapter translates the top-headlines API into canonical articles
// ABOUTME: Fails soft: any upstream problem yields an empty result instead of an error

package sources

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"newsdesk-api/core/domain"
	coreerrors "newsdesk-api/core/errors"
	"newsdesk-api/core/interfaces"
	"newsdesk-api/pkg/utils/html"
)

const (
	// HeadlinesSourceName identifies the headlines API in logs and metrics
	HeadlinesSourceName = "NewsAPI"

	// DefaultHeadlinesCategory is used when no category is given
	DefaultHeadlinesCategory = "general"

	// DefaultHeadlinesPageSize is used when the page size is not positive
	DefaultHeadlinesPageSize = 50
)

// HeadlinesConfig locates the headlines API
type HeadlinesConfig struct {
	BaseURL string
	APIKey  string
}

// HeadlinesAdapter fetches category headlines
type HeadlinesAdapter struct {
	upstream
	cfg HeadlinesConfig
}

// NewHeadlinesAdapter creates a headlines adapter
func NewHeadlinesAdapter(deps interfaces.Dependencies, cfg HeadlinesConfig) *HeadlinesAdapter {
	return &HeadlinesAdapter{
		upstream: newUpstream(HeadlinesSourceName, deps),
		cfg:      cfg,
	}
}

// headlinesResponse is the upstream payload
type headlinesResponse struct {
	Status       string             `json:"status"`
	TotalResults int                `json:"totalResults"`
	Articles     []headlinesArticle `json:"articles"`
	Code         string             `json:"code"`
	Message      string             `json:"message"`
}

type headlinesArticle struct {
	Source struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"source"`
	Author      string `json:"author"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	URLToImage  string `json:"urlToImage"`
	CoverImage  string `json:"cover_image"`
	SocialImage string `json:"social_image"`
	PublishedAt string `json:"publishedAt"`
	Content     string `json:"content"`
}

// Name returns the source name
func (a *HeadlinesAdapter) Name() string {
	return a.name
}

// Fetch returns one page of headlines for category. It never returns an
// error: failures are logged and produce an empty result.
func (a *HeadlinesAdapter) Fetch(ctx context.Context, category string, page, pageSize int) domain.FetchResult {
	if a.cfg.BaseURL == "" || a.cfg.APIKey == "" {
		a.skip(missingHeadlinesSettings(a.cfg)...)
		return domain.EmptyResult()
	}

	normalized := normalizeLabel(category, DefaultHeadlinesCategory)
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultHeadlinesPageSize
	}

	started := time.Now()
	fields := map[string]interface{}{"category": normalized, "page": page, "page_size": pageSize}

	endpoint, err := a.endpoint(normalized, page, pageSize)
	if err != nil {
		a.fail(err, started, fields)
		return domain.EmptyResult()
	}

	var payload headlinesResponse
	if err := a.getJSON(ctx, endpoint, &payload); err != nil {
		a.fail(err, started, fields)
		return domain.EmptyResult()
	}

	if payload.Status != "ok" {
		a.fail(&coreerrors.ExternalAPIError{
			Message: fmt.Sprintf("status %q: %s", payload.Status, payload.Message),
			API:     a.name,
		}, started, fields)
		return domain.EmptyResult()
	}

	label := CapitalizeFirst(normalized)
	articles := make([]domain.Article, 0, len(payload.Articles))
	for _, item := range payload.Articles {
		articles = append(articles, item.toDomain(label))
	}

	a.succeed(started, len(articles))

	return domain.FetchResult{
		Articles:     articles,
		TotalResults: payload.TotalResults,
	}
}

func (a *HeadlinesAdapter) endpoint(category string, page, pageSize int) (string, error) {
	u, err := url.Parse(a.cfg.BaseURL)
	if err != nil {
		return "", fmt.Errorf("invalid headlines base URL: %w", err)
	}

	q := u.Query()
	q.Set("category", category)
	q.Set("apiKey", a.cfg.APIKey)
	q.Set("pageSize", strconv.Itoa(pageSize))
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// toDomain copies identity, text and image fields through. The upstream has
// no article id, so the URL is the id.
func (item headlinesArticle) toDomain(category string) domain.Article {
	return domain.Article{
		ID:          item.URL,
		Title:       item.Title,
		Description: domain.StringPtr(html.StripHTML(item.Description)),
		URL:         item.URL,
		ImageURL:    domain.ResolveImage(item.URLToImage, item.CoverImage, item.SocialImage),
		Author:      domain.StringPtr(item.Author),
		Content:     domain.StringPtr(item.Content),
		PublishedAt: FormatDate(item.PublishedAt),
		Source: domain.Source{
			ID:   domain.StringPtr(item.Source.ID),
			Name: firstNonEmpty(item.Source.Name, HeadlinesSourceName),
		},
		Category: category,
	}
}

func missingHeadlinesSettings(cfg HeadlinesConfig) []string {
	var missing []string
	if cfg.BaseURL == "" {
		missing = append(missing, "HEADLINES_API_URL")
	}
	if cfg.APIKey == "" {
		missing = append(missing, "HEADLINES_API_KEY")
	}
	return missing
}
