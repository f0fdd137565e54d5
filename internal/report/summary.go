package report

import "github.com/aCarinato/housewise/internal/model"

// QuoteSummary is the complete analysis of one quote: the classified items,
// the reconciled per-category totals and the narrative bullet lists.
type QuoteSummary struct {
	Items      []model.NormalizedItem `json:"items"`
	Totals     model.CategoryTotals   `json:"totals"`
	GrandTotal float64                `json:"grand_total"`
	Inclusions []string               `json:"inclusions"`
	Exclusions []string               `json:"exclusions"`
}

// Summarize builds the full quote summary from classified items and an
// optional external proposal.
func Summarize(items []model.NormalizedItem, external *ExternalProposal) QuoteSummary {
	var (
		proposedTotals map[model.Category]float64
		aiInclusions   []string
		aiExclusions   []string
	)
	if external != nil {
		proposedTotals = external.Totals
		aiInclusions = external.Inclusions
		aiExclusions = external.Exclusions
	}

	reconciled := ReconcileTotals(items, proposedTotals)
	inclusions, exclusions := FillBullets(items, aiInclusions, aiExclusions)

	return QuoteSummary{
		Items:      items,
		Totals:     reconciled.Totals,
		GrandTotal: reconciled.GrandTotal,
		Inclusions: inclusions,
		Exclusions: exclusions,
	}
}
