package repository

// UpdateRoutineCompletedOptions identifies the routine to toggle.
type UpdateRoutineCompletedOptions struct {
	UserID    string
	RoutineID string
	Completed bool
}

// ListMessagesOptions identifies one conversation.
type ListMessagesOptions struct {
	UserID    string
	ContactID string
}

// DailyQuestionsOptions identifies one user-day question set.
type DailyQuestionsOptions struct {
	UserID string
	Day    string // formatted 2006-01-02
}

// AnswerDailyQuestionOptions identifies the question to answer.
type AnswerDailyQuestionOptions struct {
	UserID     string
	Day        string
	QuestionID string
	Answer     string
}
