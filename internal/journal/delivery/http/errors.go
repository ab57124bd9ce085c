package http

import (
	"github.com/gin-gonic/gin"

	"neuro-assist/internal/journal"
	"neuro-assist/pkg/response"
)

// respondError translates domain errors into HTTP responses. Unknown errors
// become an opaque 500 so storage details never leak to clients.
func (h *handler) respondError(c *gin.Context, err error) {
	switch err {
	case journal.ErrEmptyLabel,
		journal.ErrInvalidIntensity,
		journal.ErrEmptyMessage,
		journal.ErrEmptyContact,
		journal.ErrEmptyAnswer:
		response.Error(c, err, nil)
	case journal.ErrRoutineNotFound,
		journal.ErrQuestionNotFound,
		journal.ErrUnknownContact:
		response.NotFound(c, err)
	case journal.ErrQuestionAnswered:
		response.Conflict(c, err)
	default:
		response.InternalError(c, err)
	}
}
