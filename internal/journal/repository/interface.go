package repository

import (
	"context"

	"neuro-assist/internal/model"
)

// Repository is the storage interface for journal records. The backing
// implementation (memory or postgres) is selected once at startup; no call
// site branches on the storage mode.
type Repository interface {
	// CreateRoutine persists a fully-constructed routine record.
	CreateRoutine(ctx context.Context, routine model.Routine) (model.Routine, error)

	// UpdateRoutineCompleted sets the completed flag of a routine.
	// Returns zero-value Routine (ID == "") when not found — no error.
	UpdateRoutineCompleted(ctx context.Context, opt UpdateRoutineCompletedOptions) (model.Routine, error)

	// ListRoutines returns all routines for a user ordered by timestamp ascending.
	ListRoutines(ctx context.Context, userID string) ([]model.Routine, error)

	// CreateEmotion persists a fully-constructed emotion record.
	CreateEmotion(ctx context.Context, emotion model.Emotion) (model.Emotion, error)

	// ListEmotions returns all emotions for a user ordered by timestamp ascending.
	ListEmotions(ctx context.Context, userID string) ([]model.Emotion, error)

	// CreateMessage persists a fully-constructed chat message.
	CreateMessage(ctx context.Context, msg model.Message) (model.Message, error)

	// ListMessages returns one (user, contact) conversation ordered by
	// timestamp ascending.
	ListMessages(ctx context.Context, opt ListMessagesOptions) ([]model.Message, error)

	// SaveDailyQuestions stores a day's generated question set. Existing
	// questions for the same (user, day) are left untouched.
	SaveDailyQuestions(ctx context.Context, questions []model.DailyQuestion) error

	// ListDailyQuestions returns the question set for a (user, day).
	ListDailyQuestions(ctx context.Context, opt DailyQuestionsOptions) ([]model.DailyQuestion, error)

	// AnswerDailyQuestion sets the answer of one question.
	// Returns zero-value DailyQuestion (ID == "") when not found — no error.
	AnswerDailyQuestion(ctx context.Context, opt AnswerDailyQuestionOptions) (model.DailyQuestion, error)
}
