package usecase

import "time"

// dayKey returns the calendar-day bucket for daily questions.
func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
