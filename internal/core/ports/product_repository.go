package ports

import (
	"context"

	"sale/internal/core/domain/model/product"
)

// ProductRepository defines the catalog lookup contract. The sale core
// resolves an item reference by code to an opaque product identity usable
// as a line's item reference.
type ProductRepository interface {
	// Add persists a new catalog item.
	Add(ctx context.Context, aggregate *product.Product) error

	// GetByCode resolves a catalog item by its unique code.
	GetByCode(ctx context.Context, code string) (*product.Product, error)
}
