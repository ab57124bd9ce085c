package http

import (
	"github.com/gin-gonic/gin"

	"neuro-assist/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	charts := rg.Group("/analytics")
	{
		charts.GET("/emotions", mw.UserScope(), h.EmotionSummary)
		charts.GET("/routines", mw.UserScope(), h.RoutineAdherence)
		charts.GET("/wellness", mw.UserScope(), h.WellnessIndex)
	}
}
