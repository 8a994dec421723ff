package order

import (
	"errors"

	"sale/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// ErrLineIsNotConstructed is returned when a Line instance was not created
// through Order.AddLine or RestoreLine.
var ErrLineIsNotConstructed = errors.New("Line must be created via Order.AddLine or RestoreLine")

// LineInput carries the caller-supplied fields for a new order line.
// At least one of UnitPrice and UnitPriceUntaxed must be set; when both
// are set, UnitPriceUntaxed is authoritative and the tax-inclusive price
// is recomputed from it. UnitTax is a percentage (20 means 20%).
type LineInput struct {
	Quantity         decimal.Decimal
	UnitPrice        *decimal.Decimal
	UnitPriceUntaxed *decimal.Decimal
	UnitTax          decimal.Decimal
	Properties       map[string]string
}

// Line is one catalog item quantity/price entry belonging to an Order.
// Lines are owned by their order (composition) and reference a catalog
// product by identity only. Pricing fields are normalized once, at
// creation, by the pricing engine.
type Line struct {
	// id is the unique identifier for the line
	id kernel.UUID

	// orderID references the owning order
	orderID kernel.UUID

	// productID references the catalog item; the line does not own it
	productID kernel.UUID

	// quantity is the positive amount of the item sold
	quantity decimal.Decimal

	// unitPrice is the tax-inclusive single-unit price
	unitPrice decimal.Decimal

	// unitPriceUntaxed is the tax-exclusive single-unit price
	unitPriceUntaxed decimal.Decimal

	// unitTax is the tax rate as a percentage
	unitTax decimal.Decimal

	// amountUntaxed is quantity x unitPriceUntaxed
	amountUntaxed decimal.Decimal

	// amountTotal is quantity x unitPrice
	amountTotal decimal.Decimal

	// properties is an open key-value bag with no computational role
	properties map[string]string

	// isConstructed ensures the line was created via a constructor
	isConstructed bool
}

// newLine builds a line from caller input, running pricing normalization
// immediately. Only the owning order creates lines.
func newLine(id, orderID, productID kernel.UUID, input LineInput) (*Line, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		productID.Validate(),
	); err != nil {
		return nil, err
	}

	pricing, err := normalizePricing(input.Quantity, input.UnitTax, input.UnitPrice, input.UnitPriceUntaxed)
	if err != nil {
		return nil, err
	}

	return &Line{
		id:               id,
		orderID:          orderID,
		productID:        productID,
		quantity:         input.Quantity,
		unitPrice:        pricing.unitPrice,
		unitPriceUntaxed: pricing.unitPriceUntaxed,
		unitTax:          input.UnitTax,
		amountUntaxed:    pricing.amountUntaxed,
		amountTotal:      pricing.amountTotal,
		properties:       copyProperties(input.Properties),
		isConstructed:    true,
	}, nil
}

// RestoreLine rehydrates a line from persistence with its already
// normalized monetary fields. Pricing normalization is not re-run.
func RestoreLine(
	id, orderID, productID kernel.UUID,
	quantity, unitPrice, unitPriceUntaxed, unitTax, amountUntaxed, amountTotal decimal.Decimal,
	properties map[string]string,
) (*Line, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		productID.Validate(),
	); err != nil {
		return nil, err
	}

	return &Line{
		id:               id,
		orderID:          orderID,
		productID:        productID,
		quantity:         quantity,
		unitPrice:        unitPrice,
		unitPriceUntaxed: unitPriceUntaxed,
		unitTax:          unitTax,
		amountUntaxed:    amountUntaxed,
		amountTotal:      amountTotal,
		properties:       copyProperties(properties),
		isConstructed:    true,
	}, nil
}

// Validate ensures the Line was created through a constructor.
func (l *Line) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

// ID returns the line's unique identifier.
func (l *Line) ID() kernel.UUID {
	return l.id
}

// OrderID returns the identifier of the owning order.
func (l *Line) OrderID() kernel.UUID {
	return l.orderID
}

// ProductID returns the identity of the referenced catalog item.
func (l *Line) ProductID() kernel.UUID {
	return l.productID
}

// Quantity returns the quantity sold.
func (l *Line) Quantity() decimal.Decimal {
	return l.quantity
}

// UnitPrice returns the tax-inclusive single-unit price.
func (l *Line) UnitPrice() decimal.Decimal {
	return l.unitPrice
}

// UnitPriceUntaxed returns the tax-exclusive single-unit price.
func (l *Line) UnitPriceUntaxed() decimal.Decimal {
	return l.unitPriceUntaxed
}

// UnitTax returns the tax rate as a percentage.
func (l *Line) UnitTax() decimal.Decimal {
	return l.unitTax
}

// AmountUntaxed returns quantity x untaxed unit price, rounded to cents.
func (l *Line) AmountUntaxed() decimal.Decimal {
	return l.amountUntaxed
}

// AmountTotal returns quantity x tax-inclusive unit price, rounded to cents.
func (l *Line) AmountTotal() decimal.Decimal {
	return l.amountTotal
}

// Properties returns a copy of the line's key-value bag.
func (l *Line) Properties() map[string]string {
	return copyProperties(l.properties)
}

func copyProperties(src map[string]string) map[string]string {
	dst := make(map[string]string, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
