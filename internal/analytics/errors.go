package analytics

import "errors"

// Domain-specific errors for the analytics package.
var (
	ErrEmptyContact   = errors.New("contact id is required")
	ErrUnknownContact = errors.New("unknown contact")
)
