package queries

import (
	"context"

	"sale/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetExpiredQuotationsQueryHandler finds quotations whose last update
// predates the cutoff. Only the quotation state is eligible: drafts never
// expire and confirmed orders are out of the workflow's reach.
type GetExpiredQuotationsQueryHandler struct {
	db *gorm.DB
}

// NewGetExpiredQuotationsQueryHandler creates a handler for expired
// quotation lookups. Requires a GORM database connection for query
// execution.
func NewGetExpiredQuotationsQueryHandler(db *gorm.DB) GetExpiredQuotationsQueryHandler {
	return GetExpiredQuotationsQueryHandler{db: db}
}

// Handle executes the query for stale quotations.
// Results are sorted by code for consistent output.
func (h GetExpiredQuotationsQueryHandler) Handle(
	ctx context.Context,
	query GetExpiredQuotationsQuery,
) ([]GetExpiredQuotationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	quotations := make([]GetExpiredQuotationsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			code
		FROM orders
		WHERE state = ?
		  AND updated_at < ?
		ORDER BY code
	`, order.Quotation, query.Cutoff()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var quotation GetExpiredQuotationsQueryResponse
		if err = rows.Scan(&quotation.Code); err != nil {
			return nil, err
		}
		quotations = append(quotations, quotation)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return quotations, nil
}
