package commands

import (
	"context"
)

// ComputeOrderTotalsCommandHandler handles explicit total aggregation for
// sale orders. Summation runs over already-normalized line amounts, so no
// additional rounding is introduced here.
type ComputeOrderTotalsCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewComputeOrderTotalsCommandHandler creates a handler for totals
// recomputation. Requires an OrderUoWFactory for transactional
// persistence.
func NewComputeOrderTotalsCommandHandler(uowFactory OrderUoWFactory) ComputeOrderTotalsCommandHandler {
	return ComputeOrderTotalsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the totals recomputation command.
// The refreshed snapshot is persisted with the aggregate in one
// transaction.
func (h *ComputeOrderTotalsCommandHandler) Handle(ctx context.Context, cmd ComputeOrderTotalsCommand) error {
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

	aggregate.Compute()

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
