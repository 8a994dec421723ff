// Package productrepo provides data transfer objects and mapping functions
// for catalog item persistence. This package implements the repository
// pattern for the product aggregate, handling the conversion between domain
// entities and database representations.
package productrepo

import (
	"sale/internal/core/domain/model/kernel"
	"sale/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for persisting catalog
// items. The code carries a unique index because order lines reference
// items by code.
type ProductDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	Name string    `gorm:"type:varchar(255);not null"`
}

// TableName specifies the database table name for product entities.
// Overrides GORM's default naming convention to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product domain aggregate to its database
// representation.
func fromDomain(item *product.Product) ProductDTO {
	return ProductDTO{
		ID:   item.ID().Bytes(),
		Code: item.Code(),
		Name: item.Name(),
	}
}

// toDomain converts a database DTO to a product domain aggregate using
// RestoreProduct.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, dto.Code, dto.Name)
}
