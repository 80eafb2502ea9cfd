package domain

import "errors"

// ErrValidation is returned when caller-supplied data violates a field-level
// or simple-input rule (blank search term, out-of-range rating, bad date).
// Always recoverable by correcting the input.
var ErrValidation = errors.New("validation error")

// ErrNotFound is returned by repo and service functions when the requested
// record does not exist in the database. Absence is an expected, user-facing
// condition, not an infrastructure fault.
var ErrNotFound = errors.New("not found")

// ErrBusinessRule is returned by service functions when an operation is
// individually valid but conflicts with a cross-entity invariant: a second
// visit for the same restaurant, or deleting a restaurant that still has one.
var ErrBusinessRule = errors.New("business rule violation")

// ErrStorage is returned by repo functions when the underlying database
// operation fails. The driver error is preserved in the message but the
// operation is not retried.
var ErrStorage = errors.New("storage error")
