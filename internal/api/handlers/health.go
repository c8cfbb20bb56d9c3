package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Banner handles GET /: a service banner for humans and load balancers.
func (s *Server) Banner(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":   "JustDebate API",
		"version":   s.version,
		"status":    "running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Health handles GET /health: liveness plus a database connectivity check.
func (s *Server) Health(c *gin.Context) {
	if s.health != nil {
		if err := s.health.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "degraded",
				"timestamp": time.Now().UTC().Format(time.RFC3339),
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
