package commands

import (
	"errors"

	"sale/internal/pkg/errs"
	"sale/internal/pkg/guard"
)

var ErrComputeOrderTotalsCommandIsNotConstructed = errors.New(
	"ComputeOrderTotalsCommand must be created via NewComputeOrderTotalsCommand constructor",
)

// ComputeOrderTotalsCommand represents a request to aggregate an order's
// line amounts into its stored totals. Totals are a snapshot: they change
// only when this command runs, never as a side effect of line mutations.
type ComputeOrderTotalsCommand struct { //nolint:recvcheck //using for validation
	orderCode string

	guard guard.ConstructorGuard
}

// NewComputeOrderTotalsCommand creates a command to recompute order
// totals. Requires a non-empty order code.
func NewComputeOrderTotalsCommand(orderCode string) (ComputeOrderTotalsCommand, error) {
	totalsCommand := ComputeOrderTotalsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := totalsCommand.setOrderCode(orderCode); err != nil {
		return ComputeOrderTotalsCommand{}, err
	}

	return totalsCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrComputeOrderTotalsCommandIsNotConstructed if validation fails.
func (c ComputeOrderTotalsCommand) Validate() error {
	return c.guard.Validate(ErrComputeOrderTotalsCommandIsNotConstructed)
}

// OrderCode returns the business code of the order to recompute.
func (c ComputeOrderTotalsCommand) OrderCode() string {
	return c.orderCode
}

func (c *ComputeOrderTotalsCommand) setOrderCode(orderCode string) error {
	if orderCode == "" {
		return errs.NewValueIsRequiredError("orderCode")
	}

	c.orderCode = orderCode
	return nil
}
