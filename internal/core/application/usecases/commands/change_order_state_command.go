package commands

import (
	"errors"

	"sale/internal/core/domain/model/order"
	"sale/internal/pkg/errs"
	"sale/internal/pkg/guard"
)

var ErrChangeOrderStateCommandIsNotConstructed = errors.New(
	"ChangeOrderStateCommand must be created via NewChangeOrderStateCommand constructor",
)

// ChangeOrderStateCommand represents a request to move a sale order to a
// new workflow state. The transition itself is validated by the workflow
// engine against the rule table; this command only carries a well-formed
// request.
//
// Example:
//
//	cmd, err := NewChangeOrderStateCommand("SO-000001", order.Quotation)
//	if err != nil {
//	    return err
//	}
//	handler := NewChangeOrderStateCommandHandler(uowFactory)
//	err = handler.Handle(ctx, cmd) // WorkflowTransitionError on illegal edge
type ChangeOrderStateCommand struct { //nolint:recvcheck //using for validation
	orderCode   string
	targetState order.State

	guard guard.ConstructorGuard
}

// NewChangeOrderStateCommand creates a command to transition an order.
// Requires a non-empty order code and a declared workflow state.
func NewChangeOrderStateCommand(orderCode string, targetState order.State) (ChangeOrderStateCommand, error) {
	stateCommand := ChangeOrderStateCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		stateCommand.setOrderCode(orderCode),
		stateCommand.setTargetState(targetState),
	); err != nil {
		return ChangeOrderStateCommand{}, err
	}

	return stateCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrChangeOrderStateCommandIsNotConstructed if validation fails.
func (c ChangeOrderStateCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStateCommandIsNotConstructed)
}

// OrderCode returns the business code of the order to transition.
func (c ChangeOrderStateCommand) OrderCode() string {
	return c.orderCode
}

// TargetState returns the requested workflow state.
func (c ChangeOrderStateCommand) TargetState() order.State {
	return c.targetState
}

func (c *ChangeOrderStateCommand) setOrderCode(orderCode string) error {
	if orderCode == "" {
		return errs.NewValueIsRequiredError("orderCode")
	}

	c.orderCode = orderCode
	return nil
}

func (c *ChangeOrderStateCommand) setTargetState(targetState order.State) error {
	if err := targetState.Validate(); err != nil {
		return err
	}

	c.targetState = targetState
	return nil
}
