// Package order provides the Order aggregate of the order board.
//
// The package includes:
//   - Order: identity, description, timestamps and lifecycle of a single order
//   - Status: the two-state machine Waiting -> Completed
//
// Key business rules:
//   - Orders carry an externally supplied, non-blank id that is never reassigned
//   - Items are a non-blank free-form description, immutable after creation
//   - Completion is monotonic and idempotent: completing a Completed order changes nothing
//   - Timestamps are kept with millisecond precision; updatedAt never precedes createdAt
//
// Uniqueness of ids is not a property of a single aggregate; it is enforced by the
// record store at creation time.
package order
