// Package ident generates identifiers for entities without a user-meaningful
// name: toasts, activity entries, submissions, and anonymous media, forms,
// and pages. Suffixes are collision-resistant within a session, not
// cryptographically strong.
package ident

import (
	"strings"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

const suffixLength = 6

// New returns prefix joined with a short random suffix, e.g. "toast-9f3c2a".
func New(prefix string) string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + "-" + raw[:suffixLength]
}

// Sortable returns prefix joined with a lexicographically time-ordered
// suffix. Used for the append-only activity log so entry identifiers sort in
// creation order.
func Sortable(prefix string) string {
	return prefix + "-" + strings.ToLower(ulid.Make().String())
}

// Generator produces identifiers for a given prefix. Services accept one so
// tests can substitute deterministic sequences.
type Generator func(prefix string) string
