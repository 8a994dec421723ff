package queries

import (
	"errors"

	"sale/internal/core/domain/model/kernel"
	"sale/internal/pkg/errs"
	"sale/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single sale order by its business code.
// The read goes straight to the database and reflects committed state
// only: totals are whatever snapshot the last compute persisted.
//
// Example:
//
//	query, err := NewGetOrderQuery("SO-000001")
//	if err != nil {
//	    return err
//	}
//	handler := NewGetOrderQueryHandler(db)
//	response, err := handler.Handle(ctx, query)
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderCode string

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to read one order.
// Requires a non-empty order code.
func NewGetOrderQuery(orderCode string) (GetOrderQuery, error) {
	query := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOrderCode(orderCode); err != nil {
		return GetOrderQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderCode returns the business code of the order to read.
func (q GetOrderQuery) OrderCode() string {
	return q.orderCode
}

func (q *GetOrderQuery) setOrderCode(orderCode string) error {
	if orderCode == "" {
		return errs.NewValueIsRequiredError("orderCode")
	}

	q.orderCode = orderCode
	return nil
}

// GetOrderQueryResponse represents one sale order as stored. State is
// reported by its workflow name and the three amounts are the persisted
// totals snapshot.
type GetOrderQueryResponse struct {
	ID            kernel.UUID
	Code          string
	Channel       string
	State         string
	AmountUntaxed decimal.Decimal
	AmountTax     decimal.Decimal
	AmountTotal   decimal.Decimal
}
