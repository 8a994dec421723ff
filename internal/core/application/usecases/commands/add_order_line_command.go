package commands

import (
	"errors"

	"sale/internal/core/domain/model/order"
	"sale/internal/pkg/errs"
	"sale/internal/pkg/guard"
)

var ErrAddOrderLineCommandIsNotConstructed = errors.New(
	"AddOrderLineCommand must be created via NewAddOrderLineCommand constructor",
)

// AddOrderLineCommand represents a request to add a priced line to an
// existing sale order. The referenced catalog item is resolved by code;
// the pricing input is normalized by the domain when the line is created.
//
// Example:
//
//	price := decimal.RequireFromString("100")
//	cmd, err := NewAddOrderLineCommand("SO-000001", "plop", order.LineInput{
//	    Quantity:  decimal.NewFromInt(1),
//	    UnitPrice: &price,
//	    UnitTax:   decimal.NewFromInt(20),
//	})
type AddOrderLineCommand struct { //nolint:recvcheck //using for validation
	orderCode   string
	productCode string
	lineInput   order.LineInput

	guard guard.ConstructorGuard
}

// NewAddOrderLineCommand creates a command to add a line to an order.
// Order and product codes are required; pricing input is validated by the
// pricing engine when the line is created.
func NewAddOrderLineCommand(orderCode, productCode string, lineInput order.LineInput) (AddOrderLineCommand, error) {
	lineCommand := AddOrderLineCommand{
		lineInput: lineInput,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		lineCommand.setOrderCode(orderCode),
		lineCommand.setProductCode(productCode),
	); err != nil {
		return AddOrderLineCommand{}, err
	}

	return lineCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddOrderLineCommandIsNotConstructed if validation fails.
func (c AddOrderLineCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderLineCommandIsNotConstructed)
}

// OrderCode returns the business code of the order receiving the line.
func (c AddOrderLineCommand) OrderCode() string {
	return c.orderCode
}

// ProductCode returns the catalog code of the referenced item.
func (c AddOrderLineCommand) ProductCode() string {
	return c.productCode
}

// LineInput returns the caller-supplied pricing input for the new line.
func (c AddOrderLineCommand) LineInput() order.LineInput {
	return c.lineInput
}

func (c *AddOrderLineCommand) setOrderCode(orderCode string) error {
	if orderCode == "" {
		return errs.NewValueIsRequiredError("orderCode")
	}

	c.orderCode = orderCode
	return nil
}

func (c *AddOrderLineCommand) setProductCode(productCode string) error {
	if productCode == "" {
		return errs.NewValueIsRequiredError("productCode")
	}

	c.productCode = productCode
	return nil
}
