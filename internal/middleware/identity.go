package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/dental-scheduler/internal/httperr"
)

const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
)

// IdentityResolver turns a request into the caller's user id and role.
type IdentityResolver interface {
	Resolve(r *http.Request) (userID, role string, err error)
}

// Explainer is an optional IdentityResolver extension that describes, in
// client wording, why a request carries no user.
type Explainer interface {
	Explain(r *http.Request) string
}

// Identity resolves the bearer token once per request and stores the result
// on the gin context. It never aborts; Require* decide per route.
func Identity(resolver IdentityResolver, log *zap.Logger) gin.HandlerFunc {
	explainer, _ := resolver.(Explainer)

	return func(c *gin.Context) {
		userID, role, err := resolver.Resolve(c.Request)
		if err != nil {
			fields := []zap.Field{
				zap.String("route", c.FullPath()),
				zap.Error(err),
			}
			if explainer != nil {
				fields = append(fields, zap.String("reason", explainer.Explain(c.Request)))
			}
			log.Debug("request without identity", fields...)
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextUserRole, role)

		c.Next()
	}
}

// RequireUser aborts when no user id was resolved.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if UserID(c) == "" {
			httperr.Unauthenticated(c, httperr.MsgAuthorizationRequired)
			return
		}
		c.Next()
	}
}

// RequireUserOrRole aborts only when both user id and role are missing.
func RequireUserOrRole() gin.HandlerFunc {
	return func(c *gin.Context) {
		if UserID(c) == "" && UserRole(c) == "" {
			httperr.Unauthenticated(c, httperr.MsgAuthorizationRequired)
			return
		}
		c.Next()
	}
}

func UserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}

func UserRole(c *gin.Context) string {
	return c.GetString(ContextUserRole)
}
