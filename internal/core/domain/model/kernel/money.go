package kernel

import "github.com/shopspring/decimal"

// moneyPlaces is the number of decimal places monetary values are stored
// with. All amounts in the domain are rounded to cents.
const moneyPlaces = 2

// RoundMoney rounds a decimal to 2 places using half-up rounding.
// Derived monetary values must be rounded exactly once, on the final
// result, so that mathematically equivalent inputs produce identical
// stored amounts.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(moneyPlaces)
}

// MustMoneyFromString parses a decimal literal and panics on failure.
// Intended for constants and tests, never for user input.
func MustMoneyFromString(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
