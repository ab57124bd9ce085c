package http

import (
	"github.com/gin-gonic/gin"

	"neuro-assist/internal/report"
	"neuro-assist/pkg/log"
)

// Handler is the public interface for the report HTTP delivery layer.
type Handler interface {
	CompleteDay(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc report.UseCase
}

// New creates a new HTTP handler for the report domain.
func New(l log.Logger, uc report.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
