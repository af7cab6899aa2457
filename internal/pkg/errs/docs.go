// Package errs provides standardized error types for the order board.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for the failure classes the service exposes:
//   - ValueIsRequiredError / ValueIsInvalidError: client input is blank or malformed
//   - ObjectNotFoundError: an operation targets an absent order
//   - ObjectAlreadyExistsError: creation collides with an existing order id
//   - StorageFailureError: the backing store could not complete a read or write
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for errors.Is classification
//
// The HTTP adapter classifies errors only through errors.Is against the sentinels,
// so wrapping with fmt.Errorf("...: %w", err) anywhere in between is safe.
package errs
