package financials

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Monetary totals are always rendered with two decimals, en-US grouping and
// a trailing currency unit; the numeric aggregate itself is never rounded.
var printer = message.NewPrinter(language.English)

func Amount(v float64, unit string) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	s := printer.Sprintf("%.2f", v)
	if unit == "" {
		return s
	}
	return s + " " + unit
}

// AmountBAM renders the dashboard's default currency ("1,234.50 KM").
func AmountBAM(v float64) string {
	return Amount(v, "KM")
}
