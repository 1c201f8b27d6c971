// ABOUTME: FetchResult is the single return contract of every adapter and the orchestrator
// ABOUTME: Replaces the mix of bare article lists and envelopes with one shape

package domain

// FetchResult is a page of articles plus the total across all pages
type FetchResult struct {
	// Articles is the current page
	Articles []Article `json:"articles"`

	// TotalResults counts every item available upstream, not just this page
	TotalResults int `json:"totalResults"`
}

// EmptyResult is the fail-soft result returned when an upstream cannot be read
func EmptyResult() FetchResult {
	return FetchResult{
		Articles:     []Article{},
		TotalResults: 0,
	}
}

// NewListResult wraps a bare list whose total is its own length
func NewListResult(articles []Article) FetchResult {
	if articles == nil {
		articles = []Article{}
	}
	return FetchResult{
		Articles:     articles,
		TotalResults: len(articles),
	}
}

// HasMore reports whether pages beyond page remain at the given page size
func (r FetchResult) HasMore(page, pageSize int) bool {
	if page < 1 || pageSize < 1 || r.TotalResults < 1 {
		return false
	}
	// page*pageSize < TotalResults without overflowing
	return page <= (r.TotalResults-1)/pageSize
}
