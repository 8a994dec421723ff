package order

import (
	"errors"

	"sale/internal/core/domain/model/kernel"
	"sale/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not
// created through the NewOrder factory method.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order represents a commercial sale order. It is the aggregate root that
// owns the order lines and carries the workflow state and the aggregate
// monetary totals.
//
// Order follows these invariants:
//   - Code and channel are required, assigned at creation, immutable after
//   - State changes only through ChangeState, validated by the workflow
//     rule table
//   - Totals are a snapshot: they stay at zero until an explicit Compute
//     call and are never recomputed on line mutation
//   - Lines cannot outlive their order (composition)
//
// Order does not serialize concurrent mutators: callers must serialize
// ChangeState and Compute calls on the same order identity, typically at
// the unit-of-work commit boundary.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// code is the required unique business identifier, e.g. "SO-000001"
	code string

	// channel classifies the order origin, e.g. "WEBSITE"
	channel string

	// state is the current workflow state
	state State

	// amountUntaxed, amountTax, amountTotal are the aggregate totals,
	// recomputed only by Compute
	amountUntaxed decimal.Decimal
	amountTax     decimal.Decimal
	amountTotal   decimal.Decimal

	// lines are the owned order lines
	lines []*Line

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates a new Order in the draft state with zero totals.
// This is the validated constructor boundary: a request missing code or
// channel is rejected with a ValidationError mapping each missing field
// to the standard missing-required-field reason.
func NewOrder(id kernel.UUID, code, channel string) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	validation := errs.NewValidationError()
	if code == "" {
		validation.AddMissingField("code")
	}
	if channel == "" {
		validation.AddMissingField("channel")
	}
	if validation.HasMessages() {
		return nil, validation
	}

	return &Order{
		id:            id,
		code:          code,
		channel:       channel,
		state:         Draft,
		amountUntaxed: decimal.Zero,
		amountTax:     decimal.Zero,
		amountTotal:   decimal.Zero,
		isConstructed: true,
	}, nil
}

// RestoreOrder rehydrates an order from persistence with its stored state,
// totals, and lines. The state must be one of the declared workflow states.
func RestoreOrder(
	id kernel.UUID,
	code, channel string,
	state State,
	amountUntaxed, amountTax, amountTotal decimal.Decimal,
	lines []*Line,
) (*Order, error) {
	restored, err := NewOrder(id, code, channel)
	if err != nil {
		return nil, err
	}

	if err = state.Validate(); err != nil {
		return nil, err
	}

	for _, line := range lines {
		if err = line.Validate(); err != nil {
			return nil, err
		}
	}

	restored.state = state
	restored.amountUntaxed = amountUntaxed
	restored.amountTax = amountTax
	restored.amountTotal = amountTotal
	restored.lines = lines
	return restored, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Code returns the order's business code.
func (o *Order) Code() string {
	return o.code
}

// Channel returns the order's origin channel.
func (o *Order) Channel() string {
	return o.channel
}

// State returns the current workflow state.
func (o *Order) State() State {
	return o.state
}

// AmountUntaxed returns the last computed untaxed total.
func (o *Order) AmountUntaxed() decimal.Decimal {
	return o.amountUntaxed
}

// AmountTax returns the last computed tax total.
func (o *Order) AmountTax() decimal.Decimal {
	return o.amountTax
}

// AmountTotal returns the last computed tax-inclusive total.
func (o *Order) AmountTotal() decimal.Decimal {
	return o.amountTotal
}

// Lines returns the order's lines. The slice is a copy; the lines
// themselves are shared.
func (o *Order) Lines() []*Line {
	lines := make([]*Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// AddLine creates a line for the given catalog item and appends it to the
// order. The pricing engine normalizes the line immediately; the order
// totals are not touched until Compute is called.
//
// Returns an InvalidPricingInputError when the input supplies no price
// field or a non-positive quantity; the order is left unchanged.
func (o *Order) AddLine(productID kernel.UUID, input LineInput) (*Line, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	line, err := newLine(kernel.NewUUID(), o.id, productID, input)
	if err != nil {
		return nil, err
	}

	o.lines = append(o.lines, line)
	return line, nil
}

// ChangeState transitions the order to the target state after validating
// the edge against the workflow rule table.
//
// On a missing edge it returns a WorkflowTransitionError carrying both
// state names and leaves the state unchanged; the caller must treat it as
// a hard rejection. The mutation is in-memory only: durability is the
// caller's responsibility via the unit-of-work commit, which also
// serializes concurrent transition attempts on the same order.
func (o *Order) ChangeState(target State) error {
	newState, err := o.state.TransitionTo(target)
	if err != nil {
		return err
	}

	o.state = newState
	return nil
}

// Compute re-aggregates the current line snapshot into the order totals:
// the untaxed and tax-inclusive amounts are summed across lines and the
// tax total is their difference. Lines added after Compute returns are not
// reflected until the next call. An order with no lines yields zero totals.
func (o *Order) Compute() {
	untaxed := decimal.Zero
	total := decimal.Zero
	for _, line := range o.lines {
		untaxed = untaxed.Add(line.amountUntaxed)
		total = total.Add(line.amountTotal)
	}

	o.amountUntaxed = untaxed
	o.amountTax = total.Sub(untaxed)
	o.amountTotal = total
}
