package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	journalHTTP "neuro-assist/internal/journal/delivery/http"
	journalUC "neuro-assist/internal/journal/usecase"
	"neuro-assist/internal/middleware"
)

// setupJournalDomain initializes the journal domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create UseCase:      uc := mydomainUC.New(srv.l, srv.repo)
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv HTTPServer) setupJournalDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	uc := journalUC.New(srv.l, srv.repo)
	h := journalHTTP.New(srv.l, uc)

	journalHTTP.RegisterRoutes(api, h, mw)
	srv.l.Infof(ctx, "Journal domain registered")
}
