package assistant

import "errors"

// Domain-specific errors for the assistant package.
var (
	ErrEmptyTranscript = errors.New("transcript is empty")
)
