package report

import "errors"

// Domain-specific errors for the report package.
var (
	ErrDayAlreadyCompleted = errors.New("day already completed")
	ErrUnknownTherapist    = errors.New("unknown therapist contact")
)
