// Package errs provides standardized error types shared across the application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping.
//
// Each error kind follows the same shape:
//   - A sentinel error variable (e.g. ErrValueIsRequired) for errors.Is checks
//   - A struct type carrying the error details
//   - Constructor functions with and without an underlying cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// The kinds map to the failure categories surfaced to API clients:
// missing/invalid values (rejected input), objects that cannot be found,
// and operations forbidden to the acting user.
package errs
