package journal

import "errors"

// Domain-specific errors for the journal package.
var (
	ErrEmptyLabel       = errors.New("label is empty")
	ErrInvalidIntensity = errors.New("intensity must be between 1 and 5")
	ErrEmptyMessage     = errors.New("message text is empty")
	ErrEmptyContact     = errors.New("contact id is empty")
	ErrUnknownContact   = errors.New("contact not found")
	ErrRoutineNotFound  = errors.New("routine not found")
	ErrQuestionNotFound = errors.New("question not found")
	ErrQuestionAnswered = errors.New("question already answered")
	ErrEmptyAnswer      = errors.New("answer text is empty")
)
