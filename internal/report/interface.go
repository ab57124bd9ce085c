package report

import (
	"context"

	"neuro-assist/internal/model"
)

// UseCase defines the business logic interface for end-of-day report
// synthesis.
type UseCase interface {
	// CompleteDay synthesizes the caregiver feedback report for the scope's
	// current day and delivers it as a feedback message from the therapist.
	// Synthesis is total: LLM failures degrade to a canned report, never to
	// an error. A day can only be completed once per user; a second call
	// returns ErrDayAlreadyCompleted.
	CompleteDay(ctx context.Context, sc model.Scope, input CompleteDayInput) (CompleteDayOutput, error)
}
