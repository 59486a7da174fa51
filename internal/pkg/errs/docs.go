// Package errs provides standardized error types for the checkout
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping used throughout the codebase.
//
// Each error type follows the same shape:
//   - a sentinel error variable (e.g. ErrValueIsRequired)
//   - a struct type carrying error details
//   - constructor functions with and without a cause
//   - Error() for formatting and Unwrap() for errors.Is support
//
// This lets callers classify failures with errors.Is against the sentinels
// while still surfacing the offending parameter and underlying cause.
package errs
