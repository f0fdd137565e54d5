package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkCategories_StableOrder(t *testing.T) {
	cats := WorkCategories()

	require.Len(t, cats, 20)
	// Tie-breaking in the classifier depends on this order; pin the ends.
	assert.Equal(t, CategoryDemolizioniSmaltimenti, cats[0])
	assert.Equal(t, CategoryPraticheTecniche, cats[len(cats)-1])
	assert.NotContains(t, cats, CategoryUnknown)
}

func TestAllCategories_IncludesUnknownLast(t *testing.T) {
	all := AllCategories()

	require.Len(t, all, 21)
	assert.Equal(t, CategoryUnknown, all[len(all)-1])
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Category
	}{
		{name: "known category", input: "impianto_elettrico", want: CategoryImpiantoElettrico},
		{name: "unknown keyword", input: "unknown", want: CategoryUnknown},
		{name: "unrecognized identifier", input: "giardinaggio", want: CategoryUnknown},
		{name: "empty string", input: "", want: CategoryUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCategory(tt.input))
		})
	}
}

func TestCategory_DisplayName(t *testing.T) {
	assert.Equal(t, "Impianto elettrico", CategoryImpiantoElettrico.DisplayName())
	assert.Equal(t, "Non classificato", CategoryUnknown.DisplayName())
	assert.Equal(t, "giardinaggio", Category("giardinaggio").DisplayName())
}

func TestNewCategoryTotals(t *testing.T) {
	totals := NewCategoryTotals()

	require.Len(t, totals, 21)
	for cat, total := range totals {
		assert.Zero(t, total, "category %s not zero-initialized", cat)
	}

	totals[CategoryOpereMurarie] = 100
	totals[CategoryPorteInterne] = 50.5
	assert.InDelta(t, 150.5, totals.GrandTotal(), 0.001)
}

func TestNormalizedItem_Validate(t *testing.T) {
	amount := func(v float64) *float64 { return &v }

	valid := NormalizedItem{
		ID:           "abc",
		OriginalText: "Fornitura sanitari",
		Category:     CategoryBagnoSanitari,
		AmountEUR:    amount(1250),
		Flags:        []Flag{FlagMissingBrandMaterial},
		Confidence:   0.85,
	}

	tests := []struct {
		name    string
		mutate  func(*NormalizedItem)
		wantErr string
	}{
		{
			name:   "valid item",
			mutate: func(*NormalizedItem) {},
		},
		{
			name:    "missing id",
			mutate:  func(i *NormalizedItem) { i.ID = "" },
			wantErr: "ID is required",
		},
		{
			name:    "short original text",
			mutate:  func(i *NormalizedItem) { i.OriginalText = "ab" },
			wantErr: "at least 3 characters",
		},
		{
			name:    "short accented text counts runes not bytes",
			mutate:  func(i *NormalizedItem) { i.OriginalText = "àè" },
			wantErr: "at least 3 characters",
		},
		{
			name:   "three accented runes pass",
			mutate: func(i *NormalizedItem) { i.OriginalText = "àèì" },
		},
		{
			name:    "invalid category",
			mutate:  func(i *NormalizedItem) { i.Category = "giardinaggio" },
			wantErr: "unknown category",
		},
		{
			name:    "negative amount",
			mutate:  func(i *NormalizedItem) { i.AmountEUR = amount(-1) },
			wantErr: "non-negative",
		},
		{
			name:    "confidence out of range",
			mutate:  func(i *NormalizedItem) { i.Confidence = 1.5 },
			wantErr: "between 0.0 and 1.0",
		},
		{
			name:    "unknown flag",
			mutate:  func(i *NormalizedItem) { i.Flags = []Flag{"nonsense"} },
			wantErr: "unknown flag",
		},
		{
			name: "duplicate flag",
			mutate: func(i *NormalizedItem) {
				i.Flags = []Flag{FlagQuantityUnclear, FlagQuantityUnclear}
			},
			wantErr: "duplicate flag",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := valid
			tt.mutate(&item)

			err := item.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
