package report

import "neuro-assist/internal/model"

// CompleteDayInput selects the therapist contact the report is delivered to.
// An empty TherapistID picks the first therapist in the contact directory.
type CompleteDayInput struct {
	TherapistID string
}

// CompleteDayOutput carries the synthesized report and the persisted
// feedback message.
type CompleteDayOutput struct {
	Report  model.FeedbackReport
	Message model.Message
}
