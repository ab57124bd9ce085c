package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	assistantHTTP "neuro-assist/internal/assistant/delivery/http"
	assistantUC "neuro-assist/internal/assistant/usecase"
	"neuro-assist/internal/middleware"
)

// setupAssistantDomain initializes the assistant domain and registers its
// routes.
func (srv HTTPServer) setupAssistantDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	uc := assistantUC.New(srv.l, srv.llm, srv.repo)
	h := assistantHTTP.New(srv.l, uc)

	assistantHTTP.RegisterRoutes(api, h, mw)
	srv.l.Infof(ctx, "Assistant domain registered")
}
