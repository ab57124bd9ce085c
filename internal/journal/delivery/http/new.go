package http

import (
	"github.com/gin-gonic/gin"

	"neuro-assist/internal/journal"
	"neuro-assist/pkg/log"
)

// Handler is the public interface for the journal HTTP delivery layer.
type Handler interface {
	AddRoutine(c *gin.Context)
	ListRoutines(c *gin.Context)
	ToggleRoutine(c *gin.Context)
	AddEmotion(c *gin.Context)
	ListEmotions(c *gin.Context)
	Contacts(c *gin.Context)
	SendMessage(c *gin.Context)
	ListMessages(c *gin.Context)
	AnswerQuestion(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc journal.UseCase
}

// New creates a new HTTP handler for the journal domain.
func New(l log.Logger, uc journal.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
