package classify

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// euroAmountRe matches a European-formatted numeric token with optional
// currency markers on either side: groups of 1-3 digits separated by dots or
// spaces as thousands, optionally followed by a two-digit decimal part with
// comma or dot.
var euroAmountRe = regexp.MustCompile(`(?i)(?:€|\beuro?\b)?\s*((?:\d{1,3}(?:[. ]\d{3})+|\d+)(?:[.,]\d{2})?)\s*(?:€|\beuro?\b)?`)

// thousandsOnlyRe recognizes a token whose dots are all thousands separators.
var thousandsOnlyRe = regexp.MustCompile(`^\d{1,3}(\.\d{3})+$`)

// dotDecimalRe recognizes a token using the dot as decimal separator.
var dotDecimalRe = regexp.MustCompile(`^\d+\.\d{2}$`)

// ExtractEuroAmount finds every monetary amount on a line and returns the
// largest one, rounded to two decimals. Lines usually mix quantities, unit
// prices and totals; taking the maximum favors the total figure. This is a
// documented heuristic, not a guarantee. The second return value is false
// when no parseable amount exists.
func ExtractEuroAmount(line string) (float64, bool) {
	matches := euroAmountRe.FindAllStringSubmatch(line, -1)
	if matches == nil {
		return 0, false
	}

	best := math.Inf(-1)
	found := false
	for _, m := range matches {
		v, ok := parseEuroToken(m[1])
		if !ok {
			continue
		}
		found = true
		if v > best {
			best = v
		}
	}

	if !found {
		return 0, false
	}
	return math.Round(best*100) / 100, true
}

// parseEuroToken converts a captured numeric token to a float, resolving the
// European ambiguity between thousands and decimal separators.
func parseEuroToken(tok string) (float64, bool) {
	tok = strings.ReplaceAll(tok, " ", "")
	tok = strings.ReplaceAll(tok, " ", "")

	switch {
	case strings.Contains(tok, ","):
		// Comma is the decimal separator; dots are thousands separators.
		tok = strings.ReplaceAll(tok, ".", "")
		tok = strings.Replace(tok, ",", ".", 1)
	case thousandsOnlyRe.MatchString(tok):
		tok = strings.ReplaceAll(tok, ".", "")
	case dotDecimalRe.MatchString(tok):
		// Single dot followed by two digits: already a decimal point.
	default:
		tok = strings.ReplaceAll(tok, ".", "")
	}

	v, err := strconv.ParseFloat(tok, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
