package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestQueryKey_String(t *testing.T) {
	key := QueryKey{Type: QueryTypeNews, Category: "technology", Page: 1, PageSize: 50}
	assert.Equal(t, "news:technology:1:50", key.String())
}

func TestParseQueryKey_RoundTrip(t *testing.T) {
	keys := []QueryKey{
		{Type: QueryTypeNews, Category: "technology", Page: 1, PageSize: 50},
		{Type: QueryTypeHeader, Category: "technology", Page: 1, PageSize: 50},
		{Type: QueryTypeDev, Category: "latest", Page: 3, PageSize: 6},
		{Type: QueryTypeDev, Category: "", Page: 2, PageSize: 9},
		{Type: "bogus", Category: "sports", Page: 7, PageSize: 1},
	}

	for _, want := range keys {
		t.Run(want.String(), func(t *testing.T) {
			assert.Equal(t, want, ParseQueryKey(want.String()))
		})
	}
}

func TestParseQueryKey_Defaults(t *testing.T) {
	tests := []struct {
		key  string
		want QueryKey
	}{
		{"news:technology::", QueryKey{Type: QueryTypeNews, Category: "technology", Page: 1, PageSize: 10}},
		{"news:technology:abc:xyz", QueryKey{Type: QueryTypeNews, Category: "technology", Page: 1, PageSize: 10}},
		{"dev:latest:2", QueryKey{Type: QueryTypeDev, Category: "latest", Page: 2, PageSize: 10}},
		{"dev", QueryKey{Type: QueryTypeDev, Page: 1, PageSize: 10}},
		{"", QueryKey{Page: 1, PageSize: 10}},
		{"news:a:2:5:extra", QueryKey{Type: QueryTypeNews, Category: "a", Page: 2, PageSize: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseQueryKey(tt.key))
		})
	}
}

func TestCacheEntry_IsFresh(t *testing.T) {
	stored := time.UnixMilli(1_700_000_000_000)
	entry := NewCacheEntry(NewListResult(nil), stored)

	assert.True(t, entry.IsFresh(stored, time.Minute))
	assert.True(t, entry.IsFresh(stored.Add(59999*time.Millisecond), time.Minute))
	assert.False(t, entry.IsFresh(stored.Add(time.Minute), time.Minute), "age equal to window is stale")
	assert.False(t, entry.IsFresh(stored.Add(2*time.Minute), time.Minute))
}

func TestQueryType_IsKnown(t *testing.T) {
	assert.True(t, QueryTypeNews.IsKnown())
	assert.True(t, QueryTypeHeader.IsKnown())
	assert.True(t, QueryTypeDev.IsKnown())
	assert.False(t, QueryType("weather").IsKnown())
	assert.False(t, QueryType("").IsKnown())
}
