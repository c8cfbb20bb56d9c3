package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "justdebate.online/backend/internal/pkg/errors"
)

// googleLoginRequest is the body of POST /api/auth/google.
type googleLoginRequest struct {
	Credential string `json:"credential" binding:"required"`
}

// GoogleLogin handles POST /api/auth/google: verifies the Google ID token,
// provisions or refreshes the account, and returns a session token.
func (s *Server) GoogleLogin(c *gin.Context) {
	var req googleLoginRequest
	if !bindJSON(c, &req) {
		return
	}

	profile, token, err := s.auth.LoginWithGoogle(c.Request.Context(), req.Credential)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  profile,
		"token": token,
	})
}

// VerifyToken handles GET /api/auth/verify: validates the bearer session
// token and returns the profile it belongs to.
func (s *Server) VerifyToken(c *gin.Context) {
	header := c.GetHeader("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		_ = c.Error(apperrors.Unauthorized(apperrors.CodeAuthRequired, "Authentication required"))
		return
	}

	profile, err := s.auth.Verify(c.Request.Context(), token)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": profile})
}

// Logout handles POST /api/auth/logout. Sessions are stateless bearer
// tokens, so there is nothing to revoke server-side.
func (s *Server) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}
