// Package errs provides standardized error types for the fulfillment engine.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid (validation kind)
//   - ValueIsOutOfRangeError: For when a value falls outside of its allowed range
//   - ObjectNotFoundError: For when an object cannot be found
//   - ConflictError: For when a concurrent writer changed the state an operation relied on
//   - PersistenceError: For when the underlying store fails
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// KindOf classifies any error into one of the kinds above so that adapters
// can branch on the kind without knowing the concrete type.
package errs
