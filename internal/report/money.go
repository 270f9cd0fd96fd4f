// Package report turns computed ledgers into display text.
package report

import "github.com/shopspring/decimal"

// DefaultCurrency is the symbol used when none is configured.
const DefaultCurrency = "₹"

// Round2 rounds an amount to two decimal places, half away from zero.
func Round2(amount float64) float64 {
	return decimal.NewFromFloat(amount).Round(2).InexactFloat64()
}

// Money formats an amount with two decimals and the given currency symbol.
// Negative amounts keep their sign after the symbol ("₹-5.00").
func Money(symbol string, amount float64) string {
	if symbol == "" {
		symbol = DefaultCurrency
	}
	return symbol + decimal.NewFromFloat(amount).StringFixed(2)
}

// WholeMoney formats an amount rounded to whole currency units.
func WholeMoney(symbol string, amount float64) string {
	if symbol == "" {
		symbol = DefaultCurrency
	}
	return symbol + decimal.NewFromFloat(amount).StringFixed(0)
}
