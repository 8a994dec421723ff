// Package errs provides standardized error types for the sale application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package includes error types for common failure scenarios:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value fails a validation rule
//   - ObjectNotFoundError: an object cannot be found
//   - ValidationError: an entity creation request is structurally incomplete,
//     keyed by field name so callers can test for specific missing fields
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// This standardized approach keeps error reporting uniform and enables
// error classification with errors.Is across the application.
package errs
