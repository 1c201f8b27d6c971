// ABOUTME: QueryKey domain model is the logical identity of a keyed fetch
// ABOUTME: Its serialized form is the cache key, so field order and delimiter are fixed

package domain

import (
	"fmt"
	"strings"

	"newsdesk-api/pkg/utils/parse"
)

// QueryType selects the adapter a keyed query is dispatched to
type QueryType string

const (
	// QueryTypeNews routes to the headlines adapter
	QueryTypeNews QueryType = "news"

	// QueryTypeHeader routes to the headlines adapter (banner usage)
	QueryTypeHeader QueryType = "header"

	// QueryTypeDev routes to the community adapter
	QueryTypeDev QueryType = "dev"
)

// IsKnown reports whether the type routes to an adapter
func (t QueryType) IsKnown() bool {
	switch t {
	case QueryTypeNews, QueryTypeHeader, QueryTypeDev:
		return true
	}
	return false
}

const (
	// KeyDelimiter separates the fields of a serialized QueryKey
	KeyDelimiter = ":"

	// DefaultKeyPage applies when the page field is empty or non-numeric
	DefaultKeyPage = 1

	// DefaultKeyPageSize applies when the page size field is empty or non-numeric
	DefaultKeyPageSize = 10
)

// QueryKey is the composite identity (type, category, page, pageSize)
type QueryKey struct {
	Type     QueryType
	Category string
	Page     int
	PageSize int
}

// String serializes the key as type:category:page:pageSize
func (k QueryKey) String() string {
	return fmt.Sprintf("%s%s%s%s%d%s%d",
		k.Type, KeyDelimiter,
		k.Category, KeyDelimiter,
		k.Page, KeyDelimiter,
		k.PageSize)
}

// ParseQueryKey splits a serialized key into its four ordered fields.
// Missing fields are empty; fields past the fourth are ignored.
func ParseQueryKey(key string) QueryKey {
	fields := strings.Split(key, KeyDelimiter)

	field := func(i int) string {
		if i < len(fields) {
			return fields[i]
		}
		return ""
	}

	return QueryKey{
		Type:     QueryType(field(0)),
		Category: field(1),
		Page:     parse.IntOrDefault(field(2), DefaultKeyPage),
		PageSize: parse.IntOrDefault(field(3), DefaultKeyPageSize),
	}
}
