package textutil

import (
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// MoneyPlaceholder is rendered in place of a missing or non-finite amount.
const MoneyPlaceholder = "—"

var euroPrinter = message.NewPrinter(language.Italian)

// FormatEuro renders an amount as an Italian-locale euro string with exactly
// two decimal digits, e.g. "1.250,00 €". A nil or non-finite amount renders
// as the placeholder dash. Non-breaking spaces emitted by the locale data are
// collapsed to regular spaces so output is stable across terminals.
func FormatEuro(amount *float64) string {
	if amount == nil || math.IsNaN(*amount) || math.IsInf(*amount, 0) {
		return MoneyPlaceholder
	}

	s := euroPrinter.Sprintf("%.2f €", *amount)
	s = strings.ReplaceAll(s, " ", " ")
	return strings.ReplaceAll(s, " ", " ")
}
