// Package slugs produces URL-safe identifiers and resolves collisions.
package slugs

import (
	"fmt"
	"strings"

	slug "github.com/goliatone/go-slug"
)

// Slugify lowercases the input, collapses runs of non-alphanumeric
// characters into single hyphens, and strips leading/trailing hyphens.
// Empty input yields an empty string; the function is total.
func Slugify(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ""
	}
	if normalized, err := slug.Normalize(trimmed); err == nil {
		return normalized
	}
	return fallbackSlug(trimmed)
}

// IsValid reports whether value already satisfies the slug rules.
func IsValid(value string) bool {
	return slug.IsValid(value)
}

// UniqueSuffix returns candidate unchanged when taken reports it unused,
// otherwise appends -1, -2, ... until an unused identifier is found. Only
// membership matters; the ordering of the existing set is irrelevant.
func UniqueSuffix(candidate string, taken func(id string) bool) string {
	if !taken(candidate) {
		return candidate
	}
	for suffix := 1; ; suffix++ {
		next := fmt.Sprintf("%s-%d", candidate, suffix)
		if !taken(next) {
			return next
		}
	}
}

// fallbackSlug applies the collapse-and-trim rules directly for inputs the
// normalizer rejects.
func fallbackSlug(value string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(value) {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if isAlnum {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.Trim(b.String(), "-")
}
