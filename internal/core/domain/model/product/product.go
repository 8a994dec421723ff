// Package product contains the catalog item entity referenced by sale
// order lines. The sale core treats a product as an opaque identity
// resolved by code; catalog and pricing-rule management live elsewhere.
package product

import (
	"errors"

	"sale/internal/core/domain/model/kernel"
	"sale/internal/pkg/errs"
)

// Domain errors for product operations.
var (
	// ErrCodeIsRequired is returned when creating a product without a code.
	ErrCodeIsRequired = errs.NewValueIsRequiredError("code")
	// ErrNameIsRequired is returned when creating a product without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrProductIsNotConstructed is returned when using an improperly initialized Product.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
)

// Product represents a catalog item that order lines reference by identity.
// The sale domain never inspects a product beyond its code and name.
type Product struct {
	// id uniquely identifies the product
	id kernel.UUID
	// code is the unique catalog code, e.g. "plop"
	code string
	// name is the human-readable catalog name
	name string
	// isConstructed ensures the product was created via a constructor
	isConstructed bool
}

// NewProduct creates a Product with the given identity, code, and name.
// Code and name are required.
func NewProduct(id kernel.UUID, code, name string) (*Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if code == "" {
		return nil, ErrCodeIsRequired
	}
	if name == "" {
		return nil, ErrNameIsRequired
	}

	return &Product{
		id:            id,
		code:          code,
		name:          name,
		isConstructed: true,
	}, nil
}

// RestoreProduct rehydrates a product from persistence.
func RestoreProduct(id kernel.UUID, code, name string) (*Product, error) {
	return NewProduct(id, code, name)
}

// Validate ensures the Product was created through a constructor.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// IsEqual compares two products by their unique identifiers.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Code returns the product's catalog code.
func (p *Product) Code() string {
	return p.code
}

// Name returns the product's catalog name.
func (p *Product) Name() string {
	return p.name
}
