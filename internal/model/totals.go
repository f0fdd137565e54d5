package model

// CategoryTotals maps every category in the ontology to a non-negative sum
// of extracted amounts. Every category is present, including CategoryUnknown,
// so downstream rendering never needs to handle missing keys.
type CategoryTotals map[Category]float64

// NewCategoryTotals returns totals initialized to zero for every category.
func NewCategoryTotals() CategoryTotals {
	totals := make(CategoryTotals, len(workCategories)+1)
	for _, c := range AllCategories() {
		totals[c] = 0
	}
	return totals
}

// GrandTotal returns the sum over all categories.
func (t CategoryTotals) GrandTotal() float64 {
	var sum float64
	for _, v := range t {
		sum += v
	}
	return sum
}
