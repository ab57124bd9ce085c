package model

// FeedbackReport is the synthesized end-of-day caregiver report.
// Points is always within [0,100]; the synthesizer clamps whatever the
// external service returns.
type FeedbackReport struct {
	Text   string
	Points int
}
