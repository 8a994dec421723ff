package errs

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrValidation is the sentinel for entity-construction validation failures.
var ErrValidation = errors.New("validation error")

// MissingRequiredField is the reason recorded for a required field that is
// absent from a creation request. External consumers match on this literal,
// so it must not change.
const MissingRequiredField = "Missing data for required field."

// ValidationError reports structural completeness failures raised at entity
// construction time. It carries a mapping of field name to human-readable
// reasons so callers can test for specific missing fields. It is never used
// for business-rule violations.
type ValidationError struct {
	Messages map[string][]string
}

// NewValidationError creates an empty ValidationError ready to collect
// per-field messages.
func NewValidationError() *ValidationError {
	return &ValidationError{
		Messages: make(map[string][]string),
	}
}

// AddFieldMessage records a validation reason against a field.
func (e *ValidationError) AddFieldMessage(field, reason string) {
	e.Messages[field] = append(e.Messages[field], reason)
}

// AddMissingField records the standard missing-required-field reason
// against a field.
func (e *ValidationError) AddMissingField(field string) {
	e.AddFieldMessage(field, MissingRequiredField)
}

// HasMessages reports whether any field collected a validation reason.
func (e *ValidationError) HasMessages() bool {
	return len(e.Messages) > 0
}

// FieldMessages returns the reasons recorded for a field, or nil if the
// field passed validation.
func (e *ValidationError) FieldMessages(field string) []string {
	return e.Messages[field]
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Messages))
	for field := range e.Messages {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(e.Messages[field], "; ")))
	}

	return sanitize(fmt.Sprintf("%s: %s", ErrValidation, strings.Join(parts, ", ")))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
