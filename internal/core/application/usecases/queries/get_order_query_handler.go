package queries

import (
	"context"

	"sale/internal/core/domain/model/kernel"
	"sale/internal/core/domain/model/order"
	"sale/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads sale orders straight from the database,
// bypassing the aggregate. State is translated to its workflow name and
// totals come back exactly as last persisted.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query for one order by code.
// Returns errs.ErrObjectNotFound when no order carries the code.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			code,
			channel,
			state,
			amount_untaxed,
			amount_tax,
			amount_total
		FROM orders
		WHERE code = ?
	`, query.OrderCode()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetOrderQueryResponse{}, err
		}
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("code", query.OrderCode())
	}

	var response GetOrderQueryResponse
	var id uuid.UUID
	var state int
	var amountUntaxed, amountTax, amountTotal decimal.Decimal

	err = rows.Scan(
		&id,
		&response.Code,
		&response.Channel,
		&state,
		&amountUntaxed,
		&amountTax,
		&amountTotal,
	)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	orderID, idErr := kernel.UUIDFromBytes(id[:])
	if idErr != nil {
		return GetOrderQueryResponse{}, idErr
	}
	response.ID = orderID

	orderState := order.State(state)
	if err = orderState.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}
	response.State = orderState.String()

	response.AmountUntaxed = amountUntaxed
	response.AmountTax = amountTax
	response.AmountTotal = amountTotal

	return response, nil
}
