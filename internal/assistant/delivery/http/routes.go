package http

import (
	"github.com/gin-gonic/gin"

	"neuro-assist/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	assistant := rg.Group("/assistant")
	{
		assistant.POST("/transcript", mw.UserScope(), h.ProcessTranscript)
		assistant.GET("/questions", mw.UserScope(), h.DailyQuestions)
	}
}
