// Package util holds small shared helpers with no domain knowledge.
package util

import "strings"

// FirstNonEmpty returns the first value whose trimmed form is non-empty, or
// the empty string when every candidate is blank.
func FirstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

// SanitizeList trims every element, drops blanks, and removes duplicates
// while preserving first-seen order. Comparison is case sensitive.
func SanitizeList(values []string) []string {
	out := []string{}
	seen := map[string]struct{}{}
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	return out
}
