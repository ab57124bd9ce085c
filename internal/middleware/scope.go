package middleware

import (
	"github.com/gin-gonic/gin"

	"neuro-assist/internal/model"
)

const (
	scopeKey = "scope"

	// UserIDHeader identifies the account a request acts on. The service
	// carries no authentication surface; identity comes from the caller.
	UserIDHeader = "X-User-ID"

	// DefaultUserID backs single-user deployments that send no header.
	DefaultUserID = "default"
)

// UserScope resolves the request's scope from the user header and stores it
// in the gin context for handlers to read.
func (m Middleware) UserScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(UserIDHeader)
		if userID == "" {
			userID = DefaultUserID
		}
		c.Set(scopeKey, model.Scope{UserID: userID})
		c.Next()
	}
}

// ScopeFromContext returns the scope stored by UserScope. Falls back to the
// default scope when the middleware did not run (tests, system routes).
func ScopeFromContext(c *gin.Context) model.Scope {
	if v, ok := c.Get(scopeKey); ok {
		if sc, ok := v.(model.Scope); ok {
			return sc
		}
	}
	return model.Scope{UserID: DefaultUserID}
}
