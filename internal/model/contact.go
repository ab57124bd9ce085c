package model

// ContactRole classifies a chat contact.
type ContactRole string

const (
	RoleTherapist ContactRole = "Therapist"
	RoleParent    ContactRole = "Parent"
	RoleSupport   ContactRole = "Support"
)

// Contact is an entry in the fixed contact directory.
type Contact struct {
	ID          string
	Name        string
	Role        ContactRole
	LastMessage string
}

// DefaultContacts is the built-in contact directory served to every user.
// The directory is static; conversations are stored per (user, contact).
var DefaultContacts = []Contact{
	{ID: "1", Name: "Dr. Sandeep", Role: RoleTherapist, LastMessage: "Great job with the morning routine!"},
	{ID: "2", Name: "Dr. Sujatha", Role: RoleTherapist, LastMessage: "Please track anxiety levels today."},
	{ID: "5", Name: "Dr. George Stephen", Role: RoleTherapist, LastMessage: "Looking forward to our next session."},
	{ID: "6", Name: "Dr. Fathima Rasool", Role: RoleTherapist, LastMessage: "How was sleep last night?"},
	{ID: "3", Name: "Mom", Role: RoleParent, LastMessage: "Don't forget your lunch box."},
	{ID: "4", Name: "Mr. Jones", Role: RoleSupport, LastMessage: "See you at 3 PM."},
}
