// Package middleware provides the HTTP middleware chain: request tracing,
// centralized error rendering, and bearer authentication.
package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"justdebate.online/backend/internal/domain"
)

type contextKey string

const (
	// RequestIDHeader is the HTTP header for request tracing.
	RequestIDHeader = "X-Request-ID"

	ctxKeyRequestID contextKey = "request_id"
	ctxKeyAuthUser  contextKey = "auth_user"
)

// ginKeyAuthUser is the gin context key the handlers read the actor from.
const ginKeyAuthUser = "auth_user"

// RequestID injects a unique request ID into the context and response header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(RequestIDHeader)
		if rid == "" {
			id, _ := uuid.NewV7()
			rid = id.String()
		}
		c.Set(string(ctxKeyRequestID), rid)
		c.Writer.Header().Set(RequestIDHeader, rid)
		c.Request = c.Request.WithContext(
			context.WithValue(c.Request.Context(), ctxKeyRequestID, rid),
		)
		c.Next()
	}
}

// GetRequestID extracts the request ID from context.
func GetRequestID(ctx context.Context) string {
	if v, ok := ctx.Value(ctxKeyRequestID).(string); ok {
		return v
	}
	return ""
}

// SetUserContext stores the authenticated user on a request context.
func SetUserContext(ctx context.Context, user domain.AuthUser) context.Context {
	return context.WithValue(ctx, ctxKeyAuthUser, user)
}

// UserFromContext extracts the authenticated user from a request context.
func UserFromContext(ctx context.Context) (domain.AuthUser, bool) {
	u, ok := ctx.Value(ctxKeyAuthUser).(domain.AuthUser)
	return u, ok
}

// UserFromGin extracts the authenticated user stored by the Auth middleware.
func UserFromGin(c *gin.Context) (domain.AuthUser, bool) {
	v, ok := c.Get(ginKeyAuthUser)
	if !ok {
		return domain.AuthUser{}, false
	}
	u, ok := v.(domain.AuthUser)
	return u, ok
}
