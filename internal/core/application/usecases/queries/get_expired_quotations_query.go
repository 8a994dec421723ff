package queries

import (
	"errors"
	"time"

	"sale/internal/pkg/errs"
	"sale/internal/pkg/guard"
)

var ErrGetExpiredQuotationsQueryIsNotConstructed = errors.New(
	"GetExpiredQuotationsQuery must be created via NewGetExpiredQuotationsQuery constructor",
)

// GetExpiredQuotationsQuery retrieves the codes of quotations that have
// not been touched since the given cutoff. Feeds the expiry job, which
// cancels them through the regular workflow transition.
type GetExpiredQuotationsQuery struct { //nolint:recvcheck //using for validation
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewGetExpiredQuotationsQuery creates a query for stale quotations.
// Requires a non-zero cutoff instant.
func NewGetExpiredQuotationsQuery(cutoff time.Time) (GetExpiredQuotationsQuery, error) {
	query := GetExpiredQuotationsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setCutoff(cutoff); err != nil {
		return GetExpiredQuotationsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetExpiredQuotationsQueryIsNotConstructed if validation
// fails.
func (q GetExpiredQuotationsQuery) Validate() error {
	return q.guard.Validate(ErrGetExpiredQuotationsQueryIsNotConstructed)
}

// Cutoff returns the staleness threshold: quotations last updated before
// this instant are considered expired.
func (q GetExpiredQuotationsQuery) Cutoff() time.Time {
	return q.cutoff
}

func (q *GetExpiredQuotationsQuery) setCutoff(cutoff time.Time) error {
	if cutoff.IsZero() {
		return errs.NewValueIsRequiredError("cutoff")
	}

	q.cutoff = cutoff
	return nil
}

// GetExpiredQuotationsQueryResponse identifies one expired quotation by
// its business code.
type GetExpiredQuotationsQueryResponse struct {
	Code string
}
