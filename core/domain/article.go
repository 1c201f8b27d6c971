// ABOUTME: Article domain model is the canonical shape every source adapter converges to
// ABOUTME: Provides URL validation and image resolution shared by all adapters

package domain

import "net/url"

// Source identifies the publisher of an article
type Source struct {
	// ID is the upstream identifier of the publisher, if it has one
	ID *string `json:"id"`

	// Name is the display name of the publisher and is always set
	Name string `json:"name"`
}

// Article is the canonical article representation
type Article struct {
	// ID is stable across fetches of the same item (URL when the upstream has no id)
	ID string `json:"id"`

	// Title is the article headline
	Title string `json:"title"`

	// Description is a short summary
	Description *string `json:"description"`

	// URL is the absolute link to the article
	URL string `json:"url"`

	// ImageURL is the resolved lead image; nil means the caller uses a placeholder
	ImageURL *string `json:"imageUrl"`

	// Author is the byline
	Author *string `json:"author"`

	// Content is the full body when the upstream supplies one
	Content *string `json:"content"`

	// PublishedAt is already formatted for display, e.g. "Jan 5, 2024"
	PublishedAt string `json:"publishedAt"`

	// Source is the publisher
	Source Source `json:"source"`

	// Category is a capitalized label assigned by the adapter
	Category string `json:"category"`
}

// IsValid checks if the article has the fields every consumer relies on
func (a *Article) IsValid() bool {
	if a.ID == "" || a.Title == "" {
		return false
	}

	if a.Source.Name == "" {
		return false
	}

	return IsValidURL(a.URL)
}

// IsValidURL reports whether raw is a well-formed absolute URL
func IsValidURL(raw string) bool {
	if raw == "" {
		return false
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}

	return parsed.Scheme != "" && parsed.Host != ""
}

// ResolveImage picks the first non-empty candidate in the fixed order
// direct image, cover image, social image.
func ResolveImage(direct, cover, social string) *string {
	for _, candidate := range []string{direct, cover, social} {
		if candidate != "" {
			return StringPtr(candidate)
		}
	}
	return nil
}

// StringPtr returns a pointer to s, or nil when s is empty
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// StringValue dereferences p, returning "" for nil
func StringValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
