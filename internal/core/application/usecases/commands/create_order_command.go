package commands

import (
	"errors"

	"sale/internal/core/domain/model/kernel"
	"sale/internal/pkg/errs"
	"sale/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to create a new sale order.
// It is the validated-input boundary: a request missing code or channel
// is rejected here with a field-mapped ValidationError before it reaches
// the domain.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), "SO-000001", "WEBSITE")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	code    string
	channel string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new sale order.
// Validates that the order ID is valid and that code and channel are
// present, collecting every missing required field into one
// ValidationError.
func NewCreateOrderCommand(orderID kernel.UUID, code, channel string) (CreateOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CreateOrderCommand{}, err
	}

	validation := errs.NewValidationError()
	if code == "" {
		validation.AddMissingField("code")
	}
	if channel == "" {
		validation.AddMissingField("channel")
	}
	if validation.HasMessages() {
		return CreateOrderCommand{}, validation
	}

	return CreateOrderCommand{
		orderID: orderID,
		code:    code,
		channel: channel,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Code returns the order's business code.
func (c CreateOrderCommand) Code() string {
	return c.code
}

// Channel returns the order's origin channel.
func (c CreateOrderCommand) Channel() string {
	return c.channel
}
