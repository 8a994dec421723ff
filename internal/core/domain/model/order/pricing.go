package order

import (
	"errors"
	"fmt"

	"sale/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// ErrInvalidPricingInput is the sentinel for pricing normalization
// failures, usable with errors.Is.
var ErrInvalidPricingInput = errors.New("invalid pricing input")

// InvalidPricingInputError is raised when line pricing cannot derive a
// consistent price from the supplied inputs: no price field given, or a
// non-positive quantity. It is raised synchronously and never retried.
type InvalidPricingInputError struct {
	Reason string
}

// NewInvalidPricingInputError creates an InvalidPricingInputError with the
// given rejection reason.
func NewInvalidPricingInputError(reason string) *InvalidPricingInputError {
	return &InvalidPricingInputError{Reason: reason}
}

func (e *InvalidPricingInputError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidPricingInput, e.Reason)
}

func (e *InvalidPricingInputError) Unwrap() error {
	return ErrInvalidPricingInput
}

var (
	percentBase = decimal.NewFromInt(100)
	one         = decimal.NewFromInt(1)
)

// taxMultiplier converts a percentage tax rate into the factor between
// untaxed and tax-inclusive prices: 1 + rate/100.
func taxMultiplier(unitTax decimal.Decimal) decimal.Decimal {
	return one.Add(unitTax.Div(percentBase))
}

// linePricing holds the canonical monetary fields of a normalized line.
type linePricing struct {
	unitPrice        decimal.Decimal
	unitPriceUntaxed decimal.Decimal
	amountUntaxed    decimal.Decimal
	amountTotal      decimal.Decimal
}

// normalizePricing derives a consistent untaxed price, tax-inclusive price,
// and line amounts from partial, possibly redundant inputs.
//
// When the untaxed price is supplied it is authoritative: the tax-inclusive
// price is recomputed from it even if one was also given. Otherwise the
// untaxed price is derived from the tax-inclusive one. The derived
// counterpart is rounded exactly once, on the final result, so inputs that
// are mathematically equivalent before rounding normalize to identical
// stored values.
func normalizePricing(quantity, unitTax decimal.Decimal, unitPrice, unitPriceUntaxed *decimal.Decimal) (linePricing, error) {
	if quantity.Sign() <= 0 {
		return linePricing{}, NewInvalidPricingInputError("quantity must be greater than 0")
	}
	if unitTax.Sign() < 0 {
		return linePricing{}, NewInvalidPricingInputError("unit tax must not be negative")
	}
	if unitPrice == nil && unitPriceUntaxed == nil {
		return linePricing{}, NewInvalidPricingInputError("either unit price or untaxed unit price must be supplied")
	}

	multiplier := taxMultiplier(unitTax)

	var price, untaxed decimal.Decimal
	if unitPriceUntaxed != nil {
		untaxed = *unitPriceUntaxed
		price = kernel.RoundMoney(untaxed.Mul(multiplier))
	} else {
		price = *unitPrice
		untaxed = kernel.RoundMoney(price.Div(multiplier))
	}

	return linePricing{
		unitPrice:        price,
		unitPriceUntaxed: untaxed,
		amountUntaxed:    kernel.RoundMoney(untaxed.Mul(quantity)),
		amountTotal:      kernel.RoundMoney(price.Mul(quantity)),
	}, nil
}
