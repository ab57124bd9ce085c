package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"neuro-assist/internal/middleware"
	reportHTTP "neuro-assist/internal/report/delivery/http"
	reportUC "neuro-assist/internal/report/usecase"
)

// setupReportDomain initializes the report domain and registers its routes.
func (srv HTTPServer) setupReportDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	uc := reportUC.New(srv.l, srv.llm, srv.repo)
	h := reportHTTP.New(srv.l, uc)

	reportHTTP.RegisterRoutes(api, h, mw)
	srv.l.Infof(ctx, "Report domain registered")
}
