package report

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aCarinato/housewise/internal/model"
)

func amount(v float64) *float64 { return &v }

func item(cat model.Category, amt *float64) model.NormalizedItem {
	return model.NormalizedItem{
		ID:           "test-id",
		OriginalText: "riga di test",
		Category:     cat,
		AmountEUR:    amt,
	}
}

func TestReconcileTotals_EveryCategoryPresent(t *testing.T) {
	got := ReconcileTotals(nil, nil)

	assert.Len(t, got.Totals, len(model.AllCategories()))
	for _, cat := range model.AllCategories() {
		total, ok := got.Totals[cat]
		require.True(t, ok, "category %s missing from totals", cat)
		assert.Zero(t, total)
	}
	assert.Zero(t, got.GrandTotal)
}

func TestReconcileTotals_SumsPerCategory(t *testing.T) {
	items := []model.NormalizedItem{
		item(model.CategoryImpiantoElettrico, amount(1000)),
		item(model.CategoryImpiantoElettrico, amount(250.50)),
		item(model.CategoryBagnoSanitari, amount(1250)),
		item(model.CategoryBagnoSanitari, nil), // nil amount contributes zero
		item(model.CategoryUnknown, amount(99)),
	}

	got := ReconcileTotals(items, nil)

	assert.InDelta(t, 1250.50, got.Totals[model.CategoryImpiantoElettrico], 0.001)
	assert.InDelta(t, 1250.00, got.Totals[model.CategoryBagnoSanitari], 0.001)
	assert.InDelta(t, 99.00, got.Totals[model.CategoryUnknown], 0.001)
	assert.Zero(t, got.Totals[model.CategoryPorteInterne])
}

func TestReconcileTotals_GrandTotalInvariant(t *testing.T) {
	cases := [][]model.NormalizedItem{
		nil,
		{item(model.CategoryOpereMurarie, amount(100))},
		{
			item(model.CategoryOpereMurarie, amount(100)),
			item(model.CategoryPorteInterne, amount(450.75)),
			item(model.CategoryUnknown, nil),
		},
	}

	for _, items := range cases {
		got := ReconcileTotals(items, nil)

		var sum float64
		for _, total := range got.Totals {
			sum += total
		}
		assert.InDelta(t, sum, got.GrandTotal, 0.001)
	}
}

func TestReconcileTotals_ComputedWinsOverProposed(t *testing.T) {
	items := []model.NormalizedItem{
		item(model.CategoryImpiantoElettrico, amount(1000)),
	}
	external := map[model.Category]float64{
		model.CategoryImpiantoElettrico: 9999,
		model.CategoryBagnoSanitari:     500,
	}

	got := ReconcileTotals(items, external)

	// Computed sums are always finite, so the proposal never overrides them,
	// not even for categories the quote does not price.
	assert.InDelta(t, 1000, got.Totals[model.CategoryImpiantoElettrico], 0.001)
	assert.Zero(t, got.Totals[model.CategoryBagnoSanitari])
}

func TestReconcileValue_ThreeTierFallback(t *testing.T) {
	tests := []struct {
		name        string
		computed    float64
		proposed    float64
		hasProposed bool
		want        float64
	}{
		{name: "finite computed wins", computed: 100, proposed: 200, hasProposed: true, want: 100},
		{name: "zero computed is still computed", computed: 0, proposed: 200, hasProposed: true, want: 0},
		{name: "non-finite computed falls back to proposal", computed: math.NaN(), proposed: 200, hasProposed: true, want: 200},
		{name: "infinite computed falls back to proposal", computed: math.Inf(1), proposed: 200, hasProposed: true, want: 200},
		{name: "both unusable yields zero", computed: math.NaN(), proposed: math.Inf(-1), hasProposed: true, want: 0},
		{name: "no proposal yields zero", computed: math.NaN(), hasProposed: false, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, reconcileValue(tt.computed, tt.proposed, tt.hasProposed), 0.001)
		})
	}
}

func TestFillBullets(t *testing.T) {
	items := []model.NormalizedItem{
		item(model.CategoryImpiantoElettrico, amount(1000)),
		item(model.CategoryUnknown, amount(50)),
		{
			ID:             "excl-1",
			OriginalText:   "Opere esterne escluse",
			NormalizedText: "Opere esterne escluse",
			Category:       model.CategoryUnknown,
			Flags:          []model.Flag{model.FlagExclusionsPresent},
		},
	}

	t.Run("fills empty lists from heuristics", func(t *testing.T) {
		inclusions, exclusions := FillBullets(items, nil, nil)

		assert.Equal(t, []string{model.CategoryImpiantoElettrico.DisplayName()}, inclusions)
		assert.Equal(t, []string{"Opere esterne escluse"}, exclusions)
	})

	t.Run("never overwrites supplied lists", func(t *testing.T) {
		aiInclusions := []string{"dal modello"}
		aiExclusions := []string{"anche questo dal modello"}

		inclusions, exclusions := FillBullets(items, aiInclusions, aiExclusions)

		assert.Equal(t, aiInclusions, inclusions)
		assert.Equal(t, aiExclusions, exclusions)
	})
}

func TestSummarize(t *testing.T) {
	items := []model.NormalizedItem{
		item(model.CategoryBagnoSanitari, amount(1250)),
	}

	summary := Summarize(items, &ExternalProposal{
		Totals:     map[model.Category]float64{model.CategoryBagnoSanitari: 777},
		Inclusions: []string{"sanitari completi"},
	})

	assert.InDelta(t, 1250, summary.Totals[model.CategoryBagnoSanitari], 0.001)
	assert.InDelta(t, 1250, summary.GrandTotal, 0.001)
	assert.Equal(t, []string{"sanitari completi"}, summary.Inclusions)
	assert.Empty(t, summary.Exclusions)
	assert.Len(t, summary.Items, 1)
}

func TestSummarize_NilProposal(t *testing.T) {
	summary := Summarize(nil, nil)

	assert.Zero(t, summary.GrandTotal)
	assert.Empty(t, summary.Inclusions)
	assert.Empty(t, summary.Exclusions)
}
