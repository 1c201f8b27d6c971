// ABOUTME: Utility functions for parsing integers from strings
// ABOUTME: Provides safe parsing with default values

package parse

import (
	"strconv"
	"strings"
)

// IntOrZero safely parses an integer from a string, returning 0 if parsing fails
func IntOrZero(s string) int {
	return IntOrDefault(s, 0)
}

// IntOrDefault parses s as a base-10 integer, returning def when s is
// empty or not a number
func IntOrDefault(s string, def int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

// PositiveOrDefault returns v when it is at least 1, otherwise def
func PositiveOrDefault(v, def int) int {
	if v < 1 {
		return def
	}
	return v
}
