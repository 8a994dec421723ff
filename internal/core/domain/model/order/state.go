package order

import (
	"errors"
	"fmt"

	"sale/internal/pkg/errs"
)

// State represents the lifecycle state of a sale order. It implements a
// state machine whose legal transitions are declared in a single rule
// table rather than per-state branching, so states and edges can be added
// without touching control flow and the table itself is unit-testable.
//
// State transitions:
//
//	draft ──> quotation ──┬──> order
//	                      └──> cancelled
//
// Done is reserved: it is a declared state with no inbound or outbound
// edges yet.
type State int

const (
	// Unknown represents an invalid or undefined state.
	// This value (0) helps catch uninitialized State values.
	Unknown State = iota

	// Draft is the initial state assigned at order creation.
	Draft

	// Quotation indicates the order has been priced and offered to the
	// customer.
	Quotation

	// Ordered indicates the customer confirmed the quotation. Its wire
	// name is "order".
	Ordered

	// Cancelled indicates the quotation was withdrawn. Terminal.
	Cancelled

	// Done is reserved for fulfilled orders. No transition rules reference
	// it yet.
	Done
)

// ErrNoTransitionRule is the sentinel for workflow transition rejections,
// usable with errors.Is.
var ErrNoTransitionRule = errors.New("no rules found to change state")

// transitionRules is the legal-edge table for the order workflow. It is
// process-wide, read-only configuration: established here at startup and
// never mutated. Transitions absent from the table are illegal, including
// reflexive ones.
var transitionRules = map[State][]State{
	Draft:     {Quotation},
	Quotation: {Ordered, Cancelled},
}

// getStateStrings returns a map of State values to their string
// representations.
func getStateStrings() map[State]string {
	return map[State]string{
		Unknown:   "unknown",
		Draft:     "draft",
		Quotation: "quotation",
		Ordered:   "order",
		Cancelled: "cancelled",
		Done:      "done",
	}
}

// getValidStateStrings returns a map of only valid State values.
func getValidStateStrings() map[State]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[State]string{
		Draft:     "draft",
		Quotation: "quotation",
		Ordered:   "order",
		Cancelled: "cancelled",
		Done:      "done",
	}
}

// Validate checks that the State value is one of the declared states.
// Unknown (0) and out-of-range values are invalid. Used when rehydrating
// state from the database or accepting it from callers.
func (s State) Validate() error {
	if _, ok := getValidStateStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("state is invalid", fmt.Errorf("%d is not a valid state", s))
	}
	return nil
}

// String returns the wire name of the state ("draft", "quotation", "order",
// "cancelled", "done"). Implements fmt.Stringer and is safe on any value.
func (s State) String() string {
	if str, ok := getStateStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// CanTransitionTo reports whether the edge s -> target is declared in the
// rule table, without performing the transition.
func (s State) CanTransitionTo(target State) bool {
	for _, allowed := range transitionRules[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// AllowedTransitions returns the declared target states reachable from s.
// The result is a copy; mutating it does not affect the rule table.
func (s State) AllowedTransitions() []State {
	allowed := transitionRules[s]
	out := make([]State, len(allowed))
	copy(out, allowed)
	return out
}

// TransitionTo validates the edge s -> target against the rule table and
// returns the new state. On a missing edge it returns a
// WorkflowTransitionError carrying both state names.
func (s State) TransitionTo(target State) (State, error) {
	if !s.CanTransitionTo(target) {
		return Unknown, NewWorkflowTransitionError(s, target)
	}
	return target, nil
}

// WorkflowTransitionError is raised when a requested state change has no
// edge in the rule table. Its message format is part of the observable
// contract: external consumers pattern-match on it.
type WorkflowTransitionError struct {
	From State
	To   State
}

// NewWorkflowTransitionError creates a WorkflowTransitionError for the
// rejected edge from -> to.
func NewWorkflowTransitionError(from, to State) *WorkflowTransitionError {
	return &WorkflowTransitionError{
		From: from,
		To:   to,
	}
}

func (e *WorkflowTransitionError) Error() string {
	return fmt.Sprintf("No rules found to change state from '%s' to '%s'", e.From, e.To)
}

func (e *WorkflowTransitionError) Unwrap() error {
	return ErrNoTransitionRule
}
