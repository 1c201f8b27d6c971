// ABOUTME: Community adapter translates developer-community posts into canonical articles
// ABOUTME: Over-fetches, keeps only technology-tagged posts, then truncates to the page size

package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"newsdesk-api/core/domain"
	"newsdesk-api/core/interfaces"
	"newsdesk-api/pkg/metrics"
	"newsdesk-api/pkg/utils/html"
)

const (
	// CommunitySourceName identifies the community API in logs and metrics
	CommunitySourceName = "Dev.to"

	// DefaultCommunityURL is the public articles endpoint
	DefaultCommunityURL = "https://dev.to/api/articles"

	// DefaultCommunityTag is used when no tag is given
	DefaultCommunityTag = "programming"

	// DefaultCommunityPageSize is used when the page size is not positive
	DefaultCommunityPageSize = 9

	// FallbackCommunityCategory labels a post with no allow-listed tag
	FallbackCommunityCategory = "Technology"

	// overFetchMultiplier compensates for posts dropped by the tag filter.
	// Tuned against DefaultTechTags; a much shorter allow-list starves pages.
	overFetchMultiplier = 2
)

// DefaultTechTags is the allow-list of technology tags a post must carry
var DefaultTechTags = []string{
	"programming", "javascript", "typescript", "python", "go", "golang",
	"rust", "java", "webdev", "react", "node", "devops", "docker",
	"kubernetes", "aws", "cloud", "ai", "machinelearning", "database",
	"security", "linux", "opensource", "frontend", "backend", "api",
}

// CommunityConfig locates the community API and its tag allow-list
type CommunityConfig struct {
	BaseURL string

	// Tags overrides DefaultTechTags when non-empty
	Tags []string
}

// CommunityAdapter fetches tagged community posts
type CommunityAdapter struct {
	upstream
	baseURL string
	allowed map[string]struct{}
}

// NewCommunityAdapter creates a community adapter
func NewCommunityAdapter(deps interfaces.Dependencies, cfg CommunityConfig) *CommunityAdapter {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultCommunityURL
	}

	tags := cfg.Tags
	if len(tags) == 0 {
		tags = DefaultTechTags
	}

	allowed := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		allowed[strings.ToLower(strings.TrimSpace(tag))] = struct{}{}
	}

	return &CommunityAdapter{
		upstream: newUpstream(CommunitySourceName, deps),
		baseURL:  baseURL,
		allowed:  allowed,
	}
}

// communityPost is one element of the upstream JSON array
type communityPost struct {
	ID           int64          `json:"id"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	URL          string         `json:"url"`
	CoverImage   string         `json:"cover_image"`
	SocialImage  string         `json:"social_image"`
	PublishedAt  string         `json:"published_at"`
	BodyMarkdown string         `json:"body_markdown"`
	TagList      tagList        `json:"tag_list"`
	User         communityUser  `json:"user"`
	Organization *communityUser `json:"organization"`
}

type communityUser struct {
	Name     string `json:"name"`
	Username string `json:"username"`
}

// tagList accepts both the array form of the list endpoint and the
// comma separated string returned for single posts
type tagList []string

// UnmarshalJSON implements json.Unmarshaler
func (t *tagList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*t = list
		return nil
	}

	var joined string
	if err := json.Unmarshal(data, &joined); err != nil {
		return fmt.Errorf("tag_list: %w", err)
	}

	*t = nil
	for _, tag := range strings.Split(joined, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			*t = append(*t, tag)
		}
	}
	return nil
}

// Name returns the source name
func (a *CommunityAdapter) Name() string {
	return a.name
}

// Fetch returns at most pageSize technology posts for tag. It never returns
// an error: failures are logged and produce an empty result.
func (a *CommunityAdapter) Fetch(ctx context.Context, tag string, page, pageSize int) domain.FetchResult {
	normalized := normalizeLabel(tag, DefaultCommunityTag)
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultCommunityPageSize
	}

	started := time.Now()
	fields := map[string]interface{}{"tag": normalized, "page": page, "page_size": pageSize}

	endpoint, err := a.endpoint(normalized, page, pageSize*overFetchMultiplier)
	if err != nil {
		a.fail(err, started, fields)
		return domain.EmptyResult()
	}

	var posts []communityPost
	if err := a.getJSON(ctx, endpoint, &posts); err != nil {
		a.fail(err, started, fields)
		return domain.EmptyResult()
	}

	kept := a.filter(posts)
	metrics.RecordDiscarded(a.name, "tag_not_allowed", len(posts)-len(kept))

	if len(kept) > pageSize {
		kept = kept[:pageSize]
	}

	articles := make([]domain.Article, 0, len(kept))
	for _, post := range kept {
		articles = append(articles, a.toDomain(post))
	}

	a.succeed(started, len(articles))

	return domain.NewListResult(articles)
}

func (a *CommunityAdapter) endpoint(tag string, page, perPage int) (string, error) {
	u, err := url.Parse(a.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid community base URL: %w", err)
	}

	q := u.Query()
	q.Set("tag", tag)
	q.Set("page", strconv.Itoa(page))
	q.Set("per_page", strconv.Itoa(perPage))
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// filter keeps posts with at least one allow-listed tag, preserving order
func (a *CommunityAdapter) filter(posts []communityPost) []communityPost {
	kept := make([]communityPost, 0, len(posts))
	for _, post := range posts {
		if a.firstAllowedTag(post.TagList) != "" {
			kept = append(kept, post)
		}
	}
	return kept
}

func (a *CommunityAdapter) firstAllowedTag(tags []string) string {
	for _, tag := range tags {
		if _, ok := a.allowed[strings.ToLower(tag)]; ok {
			return tag
		}
	}
	return ""
}

// categoryFor labels a post by its first allow-listed tag. The filter
// guarantees such a tag exists, the fallback only guards direct callers.
func (a *CommunityAdapter) categoryFor(tags []string) string {
	if tag := a.firstAllowedTag(tags); tag != "" {
		return CapitalizeFirst(tag)
	}
	return FallbackCommunityCategory
}

func (a *CommunityAdapter) toDomain(post communityPost) domain.Article {
	sourceID := post.User.Username
	sourceName := firstNonEmpty(post.User.Name, CommunitySourceName)
	if post.Organization != nil {
		sourceID = firstNonEmpty(post.Organization.Username, sourceID)
		sourceName = firstNonEmpty(post.Organization.Name, post.User.Name, CommunitySourceName)
	}

	return domain.Article{
		ID:          strconv.FormatInt(post.ID, 10),
		Title:       post.Title,
		Description: domain.StringPtr(html.StripHTML(post.Description)),
		URL:         post.URL,
		ImageURL:    domain.ResolveImage("", post.CoverImage, post.SocialImage),
		Author:      domain.StringPtr(post.User.Name),
		Content:     domain.StringPtr(post.BodyMarkdown),
		PublishedAt: FormatDate(post.PublishedAt),
		Source: domain.Source{
			ID:   domain.StringPtr(sourceID),
			Name: sourceName,
		},
		Category: a.categoryFor(post.TagList),
	}
}
