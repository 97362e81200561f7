package match

import (
	"strings"
)

// Roster is an immutable allow-list of entity names (top-ranked
// players, top national teams) used as an inclusion filter. Tokens are
// normalized once at construction; membership is substring containment,
// which covers the "Last", "F. Last" and full-name forms providers mix
// without a fielded name parser.
type Roster struct {
	tokens []string
}

// NewRoster builds a roster from configured names. Names that
// normalize to empty are dropped.
func NewRoster(names ...string) Roster {
	tokens := make([]string, 0, len(names))
	for _, n := range names {
		if t := Normalize(n); t != "" {
			tokens = append(tokens, t)
		}
	}
	return Roster{tokens: tokens}
}

// Contains reports whether the normalized name contains any roster
// token as a substring. Short tokens can match inside unrelated longer
// names; that false-positive rate is accepted for this use case.
func (r Roster) Contains(name string) bool {
	n := Normalize(name)
	if n == "" {
		return false
	}
	for _, t := range r.tokens {
		if strings.Contains(n, t) {
			return true
		}
	}
	return false
}

// Len returns the number of usable tokens in the roster.
func (r Roster) Len() int {
	return len(r.tokens)
}
