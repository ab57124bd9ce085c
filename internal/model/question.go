package model

// DailyQuestion is a check-in question generated once per user per day.
// Everything but Answer is immutable after creation; Answer is set at most
// once by caregiver input.
type DailyQuestion struct {
	ID     string
	UserID string
	Day    string // calendar day key, formatted 2006-01-02
	Text   string
	Emoji  string
	Answer string // empty until answered
}
