// Package classify implements the rule-based line classification engine:
// keyword-scoring categorization, euro amount extraction, gap-detection
// flags and confidence scoring. Everything in this package is a bounded,
// pure computation over a single line; the dictionaries are immutable, so
// concurrent use needs no locking.
package classify

import (
	"strings"

	"github.com/aCarinato/housewise/internal/model"
	"github.com/aCarinato/housewise/internal/textutil"
)

// Match is the result of scoring one line against the keyword dictionary.
type Match struct {
	Category model.Category
	Hits     int
}

// FindLikelyCategory scores a raw text line against every category's keyword
// list and returns the best match. Categories are scored in the fixed
// ontology order; ties keep the earliest category, so the result is
// deterministic. Zero hits map to CategoryUnknown.
func FindLikelyCategory(line string) Match {
	normalized := textutil.NormalizeForMatch(line)
	if normalized == "" {
		return Match{Category: model.CategoryUnknown, Hits: 0}
	}

	best := Match{Category: model.CategoryUnknown, Hits: 0}
	for _, cat := range model.WorkCategories() {
		hits := 0
		for _, kw := range normalizedKeywords[cat] {
			if strings.Contains(normalized, kw) {
				hits++
			}
		}
		if hits > best.Hits {
			best = Match{Category: cat, Hits: hits}
		}
	}

	return best
}

// HasAnyToken reports whether any of the tokens appears as a substring of
// the line, after normalizing both sides the same way category matching
// does. Empty tokens never match.
func HasAnyToken(line string, tokens []string) bool {
	normalized := textutil.NormalizeForMatch(line)
	if normalized == "" {
		return false
	}

	for _, tok := range tokens {
		n := textutil.NormalizeForMatch(tok)
		if n != "" && strings.Contains(normalized, n) {
			return true
		}
	}
	return false
}
