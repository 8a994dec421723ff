package ports

import (
	"context"

	"sale/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for sale order
// aggregates. Orders are stored together with their owned lines.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, including
	// lines added since it was loaded.
	Update(ctx context.Context, aggregate *order.Order) error

	// GetByCode retrieves an order aggregate by its unique business code,
	// with its lines loaded.
	GetByCode(ctx context.Context, code string) (*order.Order, error)
}
