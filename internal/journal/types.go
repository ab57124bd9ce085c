package journal

import "neuro-assist/internal/model"

// --- Routines ---

type AddRoutineInput struct {
	Label string
	Emoji string
}

type AddRoutineOutput struct {
	Routine model.Routine
}

type ToggleRoutineInput struct {
	ID        string
	Completed bool
}

type ToggleRoutineOutput struct {
	Routine model.Routine
}

type ListRoutinesOutput struct {
	Routines []model.Routine
}

// --- Emotions ---

type AddEmotionInput struct {
	Label     string
	Emoji     string
	Intensity int // 1-5
}

type AddEmotionOutput struct {
	Emotion model.Emotion
}

type ListEmotionsOutput struct {
	Emotions []model.Emotion
}

// --- Messages ---

type SendMessageInput struct {
	ContactID string
	Text      string
}

type SendMessageOutput struct {
	Message model.Message
}

type ListMessagesInput struct {
	ContactID string
}

type ListMessagesOutput struct {
	Messages []model.Message
}

// --- Daily questions ---

type AnswerQuestionInput struct {
	QuestionID string
	Answer     string
}

type AnswerQuestionOutput struct {
	Question model.DailyQuestion
}
