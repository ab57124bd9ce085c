package http

import (
	"github.com/gin-gonic/gin"

	"neuro-assist/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	reports := rg.Group("/reports")
	{
		reports.POST("/complete-day", mw.UserScope(), h.CompleteDay)
	}
}
