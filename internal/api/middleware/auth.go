package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"justdebate.online/backend/internal/domain"
)

// CredentialResolver turns a bearer credential into an authenticated user.
// Both locally-issued session tokens and Google ID tokens are accepted; the
// resolver dispatches on the token's signing algorithm.
type CredentialResolver interface {
	ResolveCredential(ctx context.Context, token string) (*domain.AuthUser, error)
}

// Mode controls how the Auth middleware treats unauthenticated requests.
type Mode int

const (
	// Required aborts with 401 when no valid credential is presented.
	Required Mode = iota
	// Optional lets the request through anonymously on any failure.
	Optional
)

// Auth authenticates the request from the Authorization header and stores
// the resolved user on both the gin context and the request context.
func Auth(resolver CredentialResolver, mode Mode) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			if mode == Required {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
				return
			}
			c.Next()
			return
		}

		user, err := resolver.ResolveCredential(c.Request.Context(), token)
		if err != nil {
			if mode == Required {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
				return
			}
			c.Next()
			return
		}

		c.Set(ginKeyAuthUser, *user)
		c.Request = c.Request.WithContext(SetUserContext(c.Request.Context(), *user))
		c.Next()
	}
}

// bearerToken extracts the token from an "Authorization: Bearer x" header.
func bearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
