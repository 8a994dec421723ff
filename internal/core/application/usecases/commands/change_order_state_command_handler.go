package commands

import (
	"context"
)

// ChangeOrderStateCommandHandler handles workflow transitions on sale
// orders. The workflow engine validates the requested edge; an illegal
// transition surfaces as a WorkflowTransitionError and the transaction is
// rolled back, leaving the stored state unchanged. Serialization of
// concurrent transitions on the same order happens at the transaction
// commit.
type ChangeOrderStateCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeOrderStateCommandHandler creates a handler for order state
// transitions. Requires an OrderUoWFactory for transactional persistence.
func NewChangeOrderStateCommandHandler(uowFactory OrderUoWFactory) ChangeOrderStateCommandHandler {
	return ChangeOrderStateCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the state change command.
// The mutation is applied in memory by the workflow engine and made
// durable by the commit.
func (h *ChangeOrderStateCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStateCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetByCode(ctx, cmd.OrderCode())
	if err != nil {
		return err
	}

	if err = aggregate.ChangeState(cmd.TargetState()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
