// Package errs provides standardized error types for the cleanings service.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package includes error types for the common failure scenarios:
//   - ObjectNotFoundError: an expected "no such record" outcome, returned as
//     a value so handlers can map it to a 404 without treating it as a fault
//   - ValueIsRequiredError: a required value is missing or explicitly null
//   - ValueIsInvalidError: a value failed validation
//   - Other specialized types for specific validation failures
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// Domain and application code create these errors once; the HTTP boundary
// translates them to status codes exactly once.
package errs
