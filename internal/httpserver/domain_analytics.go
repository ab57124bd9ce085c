package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	analyticsHTTP "neuro-assist/internal/analytics/delivery/http"
	analyticsUC "neuro-assist/internal/analytics/usecase"
	"neuro-assist/internal/middleware"
)

// setupAnalyticsDomain initializes the analytics domain and registers its
// routes.
func (srv HTTPServer) setupAnalyticsDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	uc := analyticsUC.New(srv.l, srv.repo)
	h := analyticsHTTP.New(srv.l, uc)

	analyticsHTTP.RegisterRoutes(api, h, mw)
	srv.l.Infof(ctx, "Analytics domain registered")
}
