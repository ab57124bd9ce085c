package assistant

import (
	"context"

	"neuro-assist/internal/model"
)

// UseCase defines the business logic interface for the assistant domain:
// transcript intent classification and daily check-in question generation.
type UseCase interface {
	// ProcessTranscript classifies a free-form transcript into a structured
	// action and persists the resulting record. Classification itself is
	// total: any failure of the external service routes to a deterministic
	// local fallback and is never visible in the result. The only errors
	// returned are caller validation (empty transcript) and persistence
	// failures.
	ProcessTranscript(ctx context.Context, sc model.Scope, input ProcessTranscriptInput) (ProcessTranscriptOutput, error)

	// DailyQuestions returns the user's check-in question set for today,
	// generating it on first call. A day's set is never regenerated.
	DailyQuestions(ctx context.Context, sc model.Scope) (DailyQuestionsOutput, error)
}
