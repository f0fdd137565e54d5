package model

import (
	"fmt"
	"unicode/utf8"
)

// NormalizedItem is the structured result of classifying one quote line.
// Items are created once by the classifier and never mutated afterwards.
type NormalizedItem struct {
	ID             string   `json:"id"`
	OriginalText   string   `json:"original_text"`
	NormalizedText string   `json:"normalized_text"`
	Category       Category `json:"category"`
	AmountEUR      *float64 `json:"amount_eur"`
	Flags          []Flag   `json:"flags"`
	Confidence     float64  `json:"confidence"`
}

// HasFlag reports whether the item carries the given flag.
func (i *NormalizedItem) HasFlag(f Flag) bool {
	for _, have := range i.Flags {
		if have == f {
			return true
		}
	}
	return false
}

// Validate ensures the item satisfies the structural invariants.
func (i *NormalizedItem) Validate() error {
	if i.ID == "" {
		return fmt.Errorf("item ID is required")
	}

	if utf8.RuneCountInString(i.OriginalText) < 3 {
		return fmt.Errorf("original text must be at least 3 characters, got %q", i.OriginalText)
	}

	if !i.Category.IsValid() {
		return fmt.Errorf("unknown category %q", i.Category)
	}

	if i.AmountEUR != nil && *i.AmountEUR < 0 {
		return fmt.Errorf("amount must be non-negative, got %.2f", *i.AmountEUR)
	}

	if i.Confidence < 0.0 || i.Confidence > 1.0 {
		return fmt.Errorf("confidence must be between 0.0 and 1.0, got %.2f", i.Confidence)
	}

	seen := make(map[Flag]bool, len(i.Flags))
	for _, f := range i.Flags {
		if !f.IsValid() {
			return fmt.Errorf("unknown flag %q", f)
		}
		if seen[f] {
			return fmt.Errorf("duplicate flag %q", f)
		}
		seen[f] = true
	}

	return nil
}
