package gemini

import "time"

const (
	// DefaultModel serves every generation in this service; the outputs
	// are short and schema-constrained, so the flash tier is enough.
	DefaultModel = "gemini-2.5-flash"

	// DefaultAPIURL is the Generative Language REST endpoint. Tests
	// override it through SetAPIURL.
	DefaultAPIURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultTimeout bounds a single generateContent round trip.
	DefaultTimeout = 30 * time.Second
)
