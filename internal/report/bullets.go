package report

import "github.com/aCarinato/housewise/internal/model"

// FillBullets returns the inclusion and exclusion bullet lists for a quote.
// Externally supplied non-empty lists are passed through untouched; empty
// ones are filled from keyword-presence heuristics over the classified
// items. Inclusions list the categories that carry priced work, in ontology
// order; exclusions list the lines flagged as excluded, in input order.
func FillBullets(items []model.NormalizedItem, aiInclusions, aiExclusions []string) (inclusions, exclusions []string) {
	inclusions = aiInclusions
	if len(inclusions) == 0 {
		priced := make(map[model.Category]bool)
		for _, item := range items {
			if item.AmountEUR != nil && item.Category != model.CategoryUnknown {
				priced[item.Category] = true
			}
		}
		for _, cat := range model.WorkCategories() {
			if priced[cat] {
				inclusions = append(inclusions, cat.DisplayName())
			}
		}
	}

	exclusions = aiExclusions
	if len(exclusions) == 0 {
		for _, item := range items {
			if item.HasFlag(model.FlagExclusionsPresent) {
				exclusions = append(exclusions, item.NormalizedText)
			}
		}
	}

	return inclusions, exclusions
}
