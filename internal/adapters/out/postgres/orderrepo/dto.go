// Package orderrepo provides data transfer objects and mapping functions for
// sale order persistence. This package implements the repository pattern for
// the order aggregate, handling the conversion between domain entities and
// database representations.
package orderrepo

import (
	"encoding/json"
	"time"

	"sale/internal/core/domain/model/kernel"
	"sale/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order
// aggregates. The business code carries a unique index so that commands and
// queries can address orders by code, and updated_at feeds the quotation
// expiry lookup.
type OrderDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Code          string          `gorm:"type:varchar(64);not null;uniqueIndex"`
	Channel       string          `gorm:"type:varchar(64);not null"`
	State         int             `gorm:"type:int;not null;index"`
	AmountUntaxed decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	AmountTax     decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	AmountTotal   decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	Lines         []LineDTO       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// LineDTO represents the database structure for persisting order lines.
// Monetary fields are stored already normalized; unit fields keep extra
// scale because callers may supply prices with more than two decimals.
type LineDTO struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity         decimal.Decimal `gorm:"type:numeric(18,6);not null"`
	UnitPrice        decimal.Decimal `gorm:"type:numeric(18,6);not null"`
	UnitPriceUntaxed decimal.Decimal `gorm:"type:numeric(18,6);not null"`
	UnitTax          decimal.Decimal `gorm:"type:numeric(18,6);not null"`
	AmountUntaxed    decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	AmountTotal      decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	Properties       string          `gorm:"type:jsonb;not null;default:'{}'"`
}

// TableName specifies the database table name for order line entities.
// Overrides GORM's default naming convention to use "order_lines".
func (LineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order domain aggregate to its database
// representation, including all owned lines.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	lines := aggregate.Lines()
	lineDTOs := make([]LineDTO, 0, len(lines))
	for _, line := range lines {
		lineDTO, err := lineFromDomain(line)
		if err != nil {
			return OrderDTO{}, err
		}
		lineDTOs = append(lineDTOs, lineDTO)
	}

	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		Code:          aggregate.Code(),
		Channel:       aggregate.Channel(),
		State:         int(aggregate.State()),
		AmountUntaxed: aggregate.AmountUntaxed(),
		AmountTax:     aggregate.AmountTax(),
		AmountTotal:   aggregate.AmountTotal(),
		Lines:         lineDTOs,
	}, nil
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including lines using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]*order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		line, lineErr := lineToDomain(lineDTO)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(
		id,
		dto.Code,
		dto.Channel,
		order.State(dto.State),
		dto.AmountUntaxed,
		dto.AmountTax,
		dto.AmountTotal,
		lines,
	)
}

func lineFromDomain(line *order.Line) (LineDTO, error) {
	properties, err := json.Marshal(line.Properties())
	if err != nil {
		return LineDTO{}, err
	}

	return LineDTO{
		ID:               line.ID().Bytes(),
		OrderID:          line.OrderID().Bytes(),
		ProductID:        line.ProductID().Bytes(),
		Quantity:         line.Quantity(),
		UnitPrice:        line.UnitPrice(),
		UnitPriceUntaxed: line.UnitPriceUntaxed(),
		UnitTax:          line.UnitTax(),
		AmountUntaxed:    line.AmountUntaxed(),
		AmountTotal:      line.AmountTotal(),
		Properties:       string(properties),
	}, nil
}

// lineToDomain converts a line DTO to a domain entity. Uses RestoreLine so
// the pricing engine does not re-run on already normalized fields.
func lineToDomain(dto LineDTO) (*order.Line, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	properties := make(map[string]string)
	if dto.Properties != "" {
		if err = json.Unmarshal([]byte(dto.Properties), &properties); err != nil {
			return nil, err
		}
	}

	return order.RestoreLine(
		id, orderID, productID,
		dto.Quantity,
		dto.UnitPrice,
		dto.UnitPriceUntaxed,
		dto.UnitTax,
		dto.AmountUntaxed,
		dto.AmountTotal,
		properties,
	)
}
