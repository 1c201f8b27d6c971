// ABOUTME: Response DTOs for article endpoints
// ABOUTME: List responses carry pagination so clients know whether to ask for more

package responses

// SourceResponse identifies the publisher of an article
type SourceResponse struct {
	ID   *string `json:"id" doc:"Upstream publisher identifier, null when the upstream has none"`
	Name string  `json:"name" doc:"Publisher display name"`
}

// ArticleResponse represents an article in API responses
type ArticleResponse struct {
	ID          string         `json:"id" doc:"Stable article identifier"`
	Title       string         `json:"title" doc:"Headline"`
	Description *string        `json:"description" doc:"Plain-text summary"`
	URL         string         `json:"url" doc:"Absolute link to the article"`
	ImageURL    *string        `json:"imageUrl" doc:"Lead image; null means use a placeholder"`
	Author      *string        `json:"author" doc:"Byline"`
	Content     *string        `json:"content" doc:"Full body when the upstream supplies one"`
	PublishedAt string         `json:"publishedAt" doc:"Display date, e.g. Jan 5, 2024"`
	Source      SourceResponse `json:"source" doc:"Publisher"`
	Category    string         `json:"category" doc:"Capitalized category label"`
}

// ArticleListResponse is one page of articles
type ArticleListResponse struct {
	Articles     []ArticleResponse `json:"articles" doc:"Articles on this page"`
	TotalResults int               `json:"totalResults" doc:"Articles available across all pages"`
	Page         int               `json:"page" doc:"Page number (1-based)"`
	PageSize     int               `json:"pageSize" doc:"Requested page size"`
	HasMore      bool              `json:"hasMore" doc:"Whether a later page has articles"`
}

// LandingResponse is the composed landing page
type LandingResponse struct {
	Header    ArticleListResponse `json:"header" doc:"Banner headlines"`
	Latest    ArticleListResponse `json:"latest" doc:"Latest headlines"`
	Community ArticleListResponse `json:"community" doc:"Community posts"`
}

// FavoritesResponse lists saved articles
type FavoritesResponse struct {
	Favorites []ArticleResponse `json:"favorites" doc:"Saved articles in the order they were added"`
	Count     int               `json:"count" doc:"Number of saved articles"`
}

// FavoriteChangeResponse reports the outcome of a favorites write
type FavoriteChangeResponse struct {
	ID      string `json:"id" doc:"Article identifier"`
	Changed bool   `json:"changed" doc:"False when the request left the list as it was"`
}

// StatusResponse reports configuration problems and flag state
type StatusResponse struct {
	Status         string            `json:"status" doc:"ok, or degraded when an upstream is unconfigured"`
	MissingSources []string          `json:"missingSources" doc:"Configuration variables still required by upstream sources"`
	Flags          map[string]bool   `json:"flags" doc:"Feature flag state"`
	Store          string            `json:"store" doc:"Durable store backend"`
	Breakers       map[string]string `json:"breakers,omitempty" doc:"Circuit breaker state per upstream"`
}
