// ABOUTME: Request DTOs for the favorites endpoints
// ABOUTME: Huma validates the body against these tags before handlers run

package requests

// SourceRequest identifies the publisher of a saved article
type SourceRequest struct {
	ID   *string `json:"id,omitempty" doc:"Upstream publisher identifier"`
	Name string  `json:"name" minLength:"1" doc:"Publisher display name"`
}

// SaveFavoriteRequest is an article to save, in the shape the list
// endpoints return
type SaveFavoriteRequest struct {
	ID          string        `json:"id" minLength:"1" doc:"Stable article identifier"`
	Title       string        `json:"title" minLength:"1" doc:"Headline"`
	Description *string       `json:"description,omitempty" doc:"Plain-text summary"`
	URL         string        `json:"url" minLength:"1" doc:"Absolute http(s) link to the article"`
	ImageURL    *string       `json:"imageUrl,omitempty" doc:"Lead image"`
	Author      *string       `json:"author,omitempty" doc:"Byline"`
	Content     *string       `json:"content,omitempty" doc:"Full body"`
	PublishedAt string        `json:"publishedAt,omitempty" doc:"Display date"`
	Source      SourceRequest `json:"source" doc:"Publisher"`
	Category    string        `json:"category,omitempty" doc:"Category label"`
}
