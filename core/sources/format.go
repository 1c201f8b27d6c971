// ABOUTME: Formatting helpers shared by the source adapters
// ABOUTME: Dates and category labels are formatted once, at normalization time

package sources

import (
	"strings"
	"unicode"
	"unicode/utf8"

	timeutil "newsdesk-api/pkg/utils/time"
)

// CapitalizeFirst upper-cases the first letter and leaves the rest untouched
func CapitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// FormatDate renders an upstream timestamp as a display date such as "Jan 5, 2024"
func FormatDate(raw string) string {
	return timeutil.FormatDisplay(raw)
}

// normalizeLabel lowercases and trims a caller supplied category, falling
// back to def when nothing is left
func normalizeLabel(label, def string) string {
	label = strings.ToLower(strings.TrimSpace(label))
	if label == "" {
		return def
	}
	return label
}

// firstNonEmpty returns the first argument that is not blank
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
