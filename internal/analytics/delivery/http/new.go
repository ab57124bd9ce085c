package http

import (
	"github.com/gin-gonic/gin"

	"neuro-assist/internal/analytics"
	"neuro-assist/pkg/log"
)

// Handler is the public interface for the analytics HTTP delivery layer.
type Handler interface {
	EmotionSummary(c *gin.Context)
	RoutineAdherence(c *gin.Context)
	WellnessIndex(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc analytics.UseCase
}

// New creates a new HTTP handler for the analytics domain.
func New(l log.Logger, uc analytics.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
