// ABOUTME: Pagination utilities for adapters whose upstream is not paginated
// ABOUTME: Slices a full result set into pages after filtering

package sources

// Paginate returns items[(page-1)*perPage : page*perPage], clamped to the slice.
// Invalid page or perPage values fall back to page 1 and defaultPerPage.
func Paginate[T any](items []T, page, perPage, defaultPerPage int) []T {
	if page < 1 {
		page = 1
	}

	if perPage < 1 {
		perPage = defaultPerPage
	}

	if len(items) == 0 || page-1 > (len(items)-1)/perPage {
		return []T{}
	}

	start := (page - 1) * perPage
	end := len(items)
	if perPage < end-start {
		end = start + perPage
	}

	return items[start:end]
}
