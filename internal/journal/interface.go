package journal

import (
	"context"

	"neuro-assist/internal/model"
)

// UseCase defines the business logic interface for the journal domain:
// routines, emotions, daily questions, and chat messages.
type UseCase interface {
	// AddRoutine creates a new uncompleted routine for the user.
	AddRoutine(ctx context.Context, sc model.Scope, input AddRoutineInput) (AddRoutineOutput, error)

	// ToggleRoutine marks a routine completed or uncompleted.
	ToggleRoutine(ctx context.Context, sc model.Scope, input ToggleRoutineInput) (ToggleRoutineOutput, error)

	// ListRoutines returns all routines for the user.
	ListRoutines(ctx context.Context, sc model.Scope) (ListRoutinesOutput, error)

	// AddEmotion logs an emotional state for the user.
	AddEmotion(ctx context.Context, sc model.Scope, input AddEmotionInput) (AddEmotionOutput, error)

	// ListEmotions returns all logged emotions for the user.
	ListEmotions(ctx context.Context, sc model.Scope) (ListEmotionsOutput, error)

	// SendMessage appends a text message to a (user, contact) conversation.
	SendMessage(ctx context.Context, sc model.Scope, input SendMessageInput) (SendMessageOutput, error)

	// ListMessages returns a conversation ordered by timestamp ascending.
	ListMessages(ctx context.Context, sc model.Scope, input ListMessagesInput) (ListMessagesOutput, error)

	// Contacts returns the fixed contact directory.
	Contacts(ctx context.Context) []model.Contact

	// AnswerQuestion sets the answer of one of today's questions.
	// A question can be answered at most once.
	AnswerQuestion(ctx context.Context, sc model.Scope, input AnswerQuestionInput) (AnswerQuestionOutput, error)
}
