package assistant

import "neuro-assist/internal/model"

// Intent is the structured action classified from a transcript.
type Intent string

const (
	IntentAddRoutine Intent = "ADD_ROUTINE"
	IntentAddEmotion Intent = "ADD_EMOTION"
	IntentAnswer     Intent = "ANSWER"
)

// ProcessTranscriptInput carries the raw transcript. The transcript is
// ephemeral: it is never persisted, only the derived record is.
type ProcessTranscriptInput struct {
	Transcript string
}

// ProcessTranscriptOutput is the classified action. Exactly one of
// Routine/Emotion is set for the ADD_* intents; Reply is set for ANSWER.
type ProcessTranscriptOutput struct {
	Intent  Intent
	Routine *model.Routine
	Emotion *model.Emotion
	Reply   string
}

// DailyQuestionsOutput is today's check-in question set (2-3 questions).
type DailyQuestionsOutput struct {
	Questions []model.DailyQuestion
}
