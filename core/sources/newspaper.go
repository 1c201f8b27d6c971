// ABOUTME: Newspaper adapter translates per-section top stories into canonical articles
// ABOUTME: The upstream is unpaginated, so pages are sliced here after URL validation

package sources

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"newsdesk-api/core/domain"
	"newsdesk-api/core/interfaces"
	"newsdesk-api/pkg/metrics"
	"newsdesk-api/pkg/utils/html"
)

const (
	// NewspaperSourceName identifies the newspaper API in logs, metrics and articles
	NewspaperSourceName = "NYTimes"

	// DefaultSection is used for any category missing from the section table
	DefaultSection = "home"

	// DefaultNewspaperPageSize is used when the page size is not positive
	DefaultNewspaperPageSize = 10
)

// DefaultSections maps generic category labels to newspaper section names
var DefaultSections = map[string]string{
	"technology":    "technology",
	"business":      "business",
	"sports":        "sports",
	"science":       "science",
	"health":        "health",
	"entertainment": "arts",
	"politics":      "politics",
	"world":         "world",
	"general":       "home",
	"travel":        "travel",
	"fashion":       "fashion",
	"food":          "food",
	"opinion":       "opinion",
	"us":            "us",
}

// NewspaperConfig locates the newspaper API
type NewspaperConfig struct {
	BaseURL string
	APIKey  string

	// Sections overrides DefaultSections when non-empty
	Sections map[string]string
}

// NewspaperAdapter fetches section top stories
type NewspaperAdapter struct {
	upstream
	cfg NewspaperConfig
}

// NewNewspaperAdapter creates a newspaper adapter
func NewNewspaperAdapter(deps interfaces.Dependencies, cfg NewspaperConfig) *NewspaperAdapter {
	if len(cfg.Sections) == 0 {
		cfg.Sections = DefaultSections
	}
	return &NewspaperAdapter{
		upstream: newUpstream(NewspaperSourceName, deps),
		cfg:      cfg,
	}
}

type newspaperResponse struct {
	Status  string           `json:"status"`
	Section string           `json:"section"`
	Results []newspaperStory `json:"results"`
}

type newspaperStory struct {
	Section       string `json:"section"`
	Title         string `json:"title"`
	Abstract      string `json:"abstract"`
	URL           string `json:"url"`
	Byline        string `json:"byline"`
	PublishedDate string `json:"published_date"`
	Multimedia    []struct {
		URL string `json:"url"`
	} `json:"multimedia"`
}

// Name returns the source name
func (a *NewspaperAdapter) Name() string {
	return a.name
}

// SectionFor maps a category label to a section name, defaulting to home
func (a *NewspaperAdapter) SectionFor(category string) string {
	if section, ok := a.cfg.Sections[strings.ToLower(strings.TrimSpace(category))]; ok {
		return section
	}
	return DefaultSection
}

// Fetch returns one page of the section mapped from category. TotalResults
// counts every story with a valid URL in the section, not just this page.
// It never returns an error: failures are logged and produce an empty result.
func (a *NewspaperAdapter) Fetch(ctx context.Context, category string, page, pageSize int) domain.FetchResult {
	if a.cfg.BaseURL == "" || a.cfg.APIKey == "" {
		a.skip(missingNewspaperSettings(a.cfg)...)
		return domain.EmptyResult()
	}

	section := a.SectionFor(category)
	started := time.Now()
	fields := map[string]interface{}{"section": section, "page": page, "page_size": pageSize}

	endpoint, err := a.endpoint(section)
	if err != nil {
		a.fail(err, started, fields)
		return domain.EmptyResult()
	}

	var payload newspaperResponse
	if err := a.getJSON(ctx, endpoint, &payload); err != nil {
		a.fail(err, started, fields)
		return domain.EmptyResult()
	}

	label := CapitalizeFirst(section)
	valid := make([]domain.Article, 0, len(payload.Results))
	for _, story := range payload.Results {
		if !domain.IsValidURL(story.URL) {
			continue
		}
		valid = append(valid, story.toDomain(label))
	}
	metrics.RecordDiscarded(a.name, "invalid_url", len(payload.Results)-len(valid))

	paged := Paginate(valid, page, pageSize, DefaultNewspaperPageSize)
	a.succeed(started, len(paged))

	return domain.FetchResult{
		Articles:     paged,
		TotalResults: len(valid),
	}
}

// endpoint embeds the section in the path rather than the query string
func (a *NewspaperAdapter) endpoint(section string) (string, error) {
	u, err := url.Parse(strings.TrimRight(a.cfg.BaseURL, "/") + "/" + url.PathEscape(section) + ".json")
	if err != nil {
		return "", fmt.Errorf("invalid newspaper base URL: %w", err)
	}

	q := u.Query()
	q.Set("api-key", a.cfg.APIKey)
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// toDomain maps a story. This upstream has no body text and no publisher id.
func (s newspaperStory) toDomain(category string) domain.Article {
	var image string
	if len(s.Multimedia) > 0 {
		image = s.Multimedia[0].URL
	}

	return domain.Article{
		ID:          s.URL,
		Title:       s.Title,
		Description: domain.StringPtr(html.StripHTML(s.Abstract)),
		URL:         s.URL,
		ImageURL:    domain.StringPtr(image),
		Author:      domain.StringPtr(strings.TrimSpace(s.Byline)),
		Content:     nil,
		PublishedAt: FormatDate(s.PublishedDate),
		Source:      domain.Source{Name: NewspaperSourceName},
		Category:    category,
	}
}

func missingNewspaperSettings(cfg NewspaperConfig) []string {
	var missing []string
	if cfg.BaseURL == "" {
		missing = append(missing, "NEWSPAPER_API_URL")
	}
	if cfg.APIKey == "" {
		missing = append(missing, "NEWSPAPER_API_KEY")
	}
	return missing
}
