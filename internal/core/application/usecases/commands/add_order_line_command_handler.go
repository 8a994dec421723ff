package commands

import (
	"context"
)

// AddOrderLineCommandHandler handles the business logic for adding lines
// to sale orders. It resolves the catalog item through the product
// repository, lets the order normalize the line pricing, and persists the
// updated aggregate. Order totals are not recomputed here: they remain a
// snapshot until an explicit compute command.
type AddOrderLineCommandHandler struct {
	uowFactory UoWFactory
}

// NewAddOrderLineCommandHandler creates a handler for line creation
// operations. Requires a UoWFactory spanning order and product
// repositories.
func NewAddOrderLineCommandHandler(uowFactory UoWFactory) AddOrderLineCommandHandler {
	return AddOrderLineCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the line creation command.
// The order and the catalog item are loaded in one transaction; the line
// is normalized by the pricing engine and persisted with its order.
func (h *AddOrderLineCommandHandler) Handle(ctx context.Context, cmd AddOrderLineCommand) error {
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

	item, err := uow.ProductRepository().GetByCode(ctx, cmd.ProductCode())
	if err != nil {
		return err
	}

	if _, err = aggregate.AddLine(item.ID(), cmd.LineInput()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
