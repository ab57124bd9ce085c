package memory

import (
	"sync"

	"neuro-assist/internal/journal/repository"
	"neuro-assist/internal/model"
	"neuro-assist/pkg/log"
)

// implRepository is an in-memory Repository used for the preview/demo mode
// and in tests. Safe for concurrent use.
type implRepository struct {
	mu sync.RWMutex
	l  log.Logger

	routines  map[string][]model.Routine       // userID → routines
	emotions  map[string][]model.Emotion       // userID → emotions
	messages  map[string][]model.Message       // userID|contactID → conversation
	questions map[string][]model.DailyQuestion // userID|day → question set
}

// New creates a new in-memory Repository.
func New(l log.Logger) repository.Repository {
	return &implRepository{
		l:         l,
		routines:  make(map[string][]model.Routine),
		emotions:  make(map[string][]model.Emotion),
		messages:  make(map[string][]model.Message),
		questions: make(map[string][]model.DailyQuestion),
	}
}

func conversationKey(userID, contactID string) string {
	return userID + "|" + contactID
}

func questionKey(userID, day string) string {
	return userID + "|" + day
}
