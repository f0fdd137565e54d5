package classify

import (
	"strings"

	"github.com/aCarinato/housewise/internal/model"
	"github.com/aCarinato/housewise/internal/textutil"
)

// detectFlags runs every gap-detection heuristic against a cleaned line and
// returns the deduplicated set of flags, in a fixed detection order.
func detectFlags(line string, category model.Category) []model.Flag {
	var flags []model.Flag
	seen := make(map[model.Flag]bool)
	add := func(f model.Flag) {
		if !seen[f] {
			seen[f] = true
			flags = append(flags, f)
		}
	}

	normalized := textutil.NormalizeForMatch(line)
	hasDigit := strings.ContainsAny(line, "0123456789")

	if HasAnyToken(line, exclusionTokens) {
		add(model.FlagExclusionsPresent)
	}

	// Demolition quoted without any mention of debris disposal.
	if category == model.CategoryDemolizioniSmaltimenti &&
		containsAny(normalized, coreDemolitionKeywords) &&
		!strings.Contains(normalized, disposalRoot) {
		add(model.FlagDisposalNotMentioned)
	}

	if HasAnyToken(line, supplyTokens) && !HasAnyToken(line, brandTokens) {
		add(model.FlagMissingBrandMaterial)
	}

	if quantitySensitive[category] && !hasDigit && !HasAnyToken(line, quantityTokens) {
		add(model.FlagQuantityUnclear)
	}

	if authorizationSensitive[category] && !HasAnyToken(line, authorizationTokens) {
		add(model.FlagAuthorizationNotMentioned)
	}

	// A schedule or warranty promise with no number attached is a gap.
	// Only lines classified into a work category are checked; unclassified
	// lines are too noisy to flag.
	if category != model.CategoryUnknown && !hasDigit {
		if HasAnyToken(line, timelineTokens) {
			add(model.FlagTimelineNotMentioned)
		}
		if HasAnyToken(line, warrantyTokens) {
			add(model.FlagWarrantyNotMentioned)
		}
	}

	return flags
}

// containsAny reports whether any of the already-normalized needles is a
// substring of the normalized haystack.
func containsAny(normalized string, needles []string) bool {
	for _, n := range needles {
		if n != "" && strings.Contains(normalized, n) {
			return true
		}
	}
	return false
}
