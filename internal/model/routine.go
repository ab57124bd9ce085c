package model

import "time"

// Routine is a single routine item for one user-day.
type Routine struct {
	ID        string
	UserID    string
	Label     string
	Emoji     string
	Completed bool
	Timestamp time.Time
}
