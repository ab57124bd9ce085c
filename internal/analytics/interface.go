package analytics

import (
	"context"

	"neuro-assist/internal/model"
)

// UseCase defines the business logic interface for chart-ready analytics.
// Every series is derived on demand; nothing here is persisted.
type UseCase interface {
	// EmotionSummary buckets the user's logged emotions by label in
	// first-seen order and attaches the top-emotion insight narrative.
	EmotionSummary(ctx context.Context, sc model.Scope) (EmotionSummaryOutput, error)

	// RoutineAdherence returns one completed/total stat per weekday, with
	// the current weekday computed live from today's routines.
	RoutineAdherence(ctx context.Context, sc model.Scope) (RoutineAdherenceOutput, error)

	// WellnessIndex blends conversation sentiment with routine adherence
	// into one score per weekday for a 5-day window.
	WellnessIndex(ctx context.Context, sc model.Scope, input WellnessIndexInput) (WellnessIndexOutput, error)
}
