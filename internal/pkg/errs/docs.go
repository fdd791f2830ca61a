// Package errs provides standardized error types for the order management service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes two families:
//   - Validation errors (ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError,
//     ObjectNotFoundError) raised locally, before any backend round-trip
//   - TransportError, which wraps a failed call to the order/product backend and is
//     classified by one of ErrSubmissionFailed, ErrLoadFailed, ErrDeleteFailed or
//     ErrStatusChangeFailed
//
// Each validation error type follows the same pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() returning the sentinel, Is() matching against the cause
//
// Domain packages keep their own sentinels (for example order.ErrDuplicateProduct) and
// pass them as the cause, so callers can test for either level with errors.Is.
package errs
