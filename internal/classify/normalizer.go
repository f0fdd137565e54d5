package classify

import (
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/aCarinato/housewise/internal/model"
	"github.com/aCarinato/housewise/internal/textutil"
)

// minLineRunes is the shortest line worth classifying; anything below is
// noise such as page numbers or bullet glyphs.
const minLineRunes = 3

// maxSummaryWords bounds the normalized text shown in reports.
const maxSummaryWords = 15

// NormalizeLine classifies a single raw line and builds its NormalizedItem.
// The second return value is false when the line is skipped as noise.
// Malformed input never produces an error: degenerate cases resolve to
// neutral values (unknown category, nil amount, empty flag set).
func NormalizeLine(line string) (model.NormalizedItem, bool) {
	cleaned := textutil.NormalizeSpaces(line)
	if utf8.RuneCountInString(cleaned) < minLineRunes {
		return model.NormalizedItem{}, false
	}

	match := FindLikelyCategory(cleaned)

	var amountPtr *float64
	amount, hasAmount := ExtractEuroAmount(cleaned)
	if hasAmount {
		amountPtr = &amount
	}

	item := model.NormalizedItem{
		ID:             uuid.NewString(),
		OriginalText:   cleaned,
		NormalizedText: textutil.TruncateWords(cleaned, maxSummaryWords),
		Category:       match.Category,
		AmountEUR:      amountPtr,
		Flags:          detectFlags(cleaned, match.Category),
		Confidence:     ComputeConfidence(match.Hits, hasAmount),
	}
	return item, true
}

// NormalizeLines classifies an ordered sequence of raw lines into items,
// preserving input order. Lines that normalize to fewer than three
// characters are silently dropped. An empty input yields an empty (non-nil)
// result; this function never fails.
func NormalizeLines(lines []string) []model.NormalizedItem {
	items := make([]model.NormalizedItem, 0, len(lines))
	for _, line := range lines {
		if item, ok := NormalizeLine(line); ok {
			items = append(items, item)
		}
	}
	return items
}
