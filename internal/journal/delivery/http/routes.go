package http

import (
	"github.com/gin-gonic/gin"

	"neuro-assist/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	routines := rg.Group("/routines")
	{
		routines.POST("", mw.UserScope(), h.AddRoutine)
		routines.GET("", mw.UserScope(), h.ListRoutines)
		routines.PATCH("/:id/toggle", mw.UserScope(), h.ToggleRoutine)
	}

	emotions := rg.Group("/emotions")
	{
		emotions.POST("", mw.UserScope(), h.AddEmotion)
		emotions.GET("", mw.UserScope(), h.ListEmotions)
	}

	contacts := rg.Group("/contacts")
	{
		contacts.GET("", h.Contacts)
		contacts.GET("/:id/messages", mw.UserScope(), h.ListMessages)
		contacts.POST("/:id/messages", mw.UserScope(), h.SendMessage)
	}

	questions := rg.Group("/questions")
	{
		questions.POST("/:id/answer", mw.UserScope(), h.AnswerQuestion)
	}
}
