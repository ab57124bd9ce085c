package model

import "time"

// Emotion is a logged emotional state.
// Intensity is declared as 1-5; it is validated at the delivery boundary and
// stored, but no downstream consumer reads it yet.
type Emotion struct {
	ID        string
	UserID    string
	Label     string
	Emoji     string
	Intensity int
	Timestamp time.Time
}
