// Package report aggregates classified line items into per-category totals
// and reconciles them against externally proposed figures, keeping the
// output numerically consistent with the classified lines.
package report

import (
	"math"

	"github.com/aCarinato/housewise/internal/model"
)

// ExternalProposal carries totals and descriptive bullets proposed by an
// independent classification path (typically a language model). It is
// consumed as an untrusted suggestion: computed figures always win.
type ExternalProposal struct {
	Totals     map[model.Category]float64 `json:"totals"`
	Inclusions []string                   `json:"inclusions"`
	Exclusions []string                   `json:"exclusions"`
}

// Reconciled is the result of merging computed and proposed totals.
type Reconciled struct {
	Totals     model.CategoryTotals `json:"totals"`
	GrandTotal float64              `json:"grand_total"`
}

// ReconcileTotals sums item amounts per category and reconciles each total
// against the optional external proposal. Every category is present in the
// result, zero-initialized, so the grand total always equals the sum of the
// per-category totals regardless of what the external path proposed.
func ReconcileTotals(items []model.NormalizedItem, external map[model.Category]float64) Reconciled {
	computed := model.NewCategoryTotals()
	for _, item := range items {
		if item.AmountEUR != nil {
			computed[item.Category] += *item.AmountEUR
		}
	}

	totals := model.NewCategoryTotals()
	for cat := range totals {
		proposed, hasProposed := external[cat]
		totals[cat] = reconcileValue(computed[cat], proposed, hasProposed)
	}

	return Reconciled{
		Totals:     totals,
		GrandTotal: totals.GrandTotal(),
	}
}

// reconcileValue applies the three-tier fallback: the computed sum when
// finite, otherwise the external proposal when finite, otherwise zero.
// Kept as its own function so the merge rule stays auditable in isolation.
func reconcileValue(computed, proposed float64, hasProposed bool) float64 {
	if isFinite(computed) {
		return computed
	}
	if hasProposed && isFinite(proposed) {
		return proposed
	}
	return 0
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
