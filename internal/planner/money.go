// internal/planner/money.go
package planner

import (
	"math"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	phpPrinter = message.NewPrinter(language.English)

	// PHP is the planner's currency.
	PHP = currency.MustParseISO("PHP")

	// PesoSign is the narrow symbol for PHP, e.g. "₱".
	PesoSign = phpPrinter.Sprint(currency.NarrowSymbol(PHP))
)

// FormatPHP renders an amount as whole pesos with thousands grouping,
// e.g. "₱250,000" or "-₱1,500".
func FormatPHP(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	whole := int64(math.Floor(amount + 0.5))
	if whole == 0 {
		sign = ""
	}
	return sign + PesoSign + phpPrinter.Sprintf("%d", whole)
}
