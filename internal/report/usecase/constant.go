package usecase

// Canned reports for degraded synthesis paths.
const (
	// NoCredentialReportText is delivered when no API key is configured.
	NoCredentialReportText = "Daily Report: Good effort on routines today. I noticed some happy emotions logged. Keep practicing the morning schedule."
	NoCredentialPoints     = 50

	// FallbackReportText is delivered when the language service fails.
	FallbackReportText = "Activity log received. Great job today!"
	FallbackPoints     = 20
)

// Generation settings.
const (
	FeedbackTemperature = 0.6
	FeedbackMaxTokens   = 1024
)
