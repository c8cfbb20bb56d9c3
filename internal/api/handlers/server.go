// Package handlers implements the HTTP handlers of the debate API.
//
// Handlers bind and validate the transport layer, delegate to the services,
// and push failures into the gin error chain for the centralized
// ErrorHandler middleware to render.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"justdebate.online/backend/internal/api/middleware"
	"justdebate.online/backend/internal/domain"
	apperrors "justdebate.online/backend/internal/pkg/errors"
	"justdebate.online/backend/internal/service"
)

// HealthChecker is the readiness probe seam, satisfied by *pgxpool.Pool.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Server holds the handler set and its service dependencies.
type Server struct {
	auth      *service.AuthService
	users     *service.UserService
	topics    *service.TopicService
	arguments *service.ArgumentService
	health    HealthChecker
	version   string
}

// ServerDeps holds all dependencies for creating a Server. Manual DI.
type ServerDeps struct {
	Auth      *service.AuthService
	Users     *service.UserService
	Topics    *service.TopicService
	Arguments *service.ArgumentService
	Health    HealthChecker
	Version   string
}

// NewServer creates a Server with all dependencies.
func NewServer(deps ServerDeps) *Server {
	return &Server{
		auth:      deps.Auth,
		users:     deps.Users,
		topics:    deps.Topics,
		arguments: deps.Arguments,
		health:    deps.Health,
		version:   deps.Version,
	}
}

// actorFrom extracts the authenticated user placed by the Auth middleware.
// Routes behind Required always carry one; the fallback guards miswiring.
func actorFrom(c *gin.Context) (domain.AuthUser, bool) {
	user, ok := middleware.UserFromGin(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
	}
	return user, ok
}

// uuidParam parses a uuid path parameter, attaching a 400 on failure.
func uuidParam(c *gin.Context, name, what string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, "Invalid "+what+" ID"))
		return uuid.Nil, false
	}
	return id, true
}

// bindJSON binds the request body, attaching a uniform 400 on failure.
func bindJSON(c *gin.Context, dest any) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		_ = c.Error(apperrors.Wrap(err, apperrors.CodeValidationFailed, "Invalid request body", http.StatusBadRequest))
		return false
	}
	return true
}
