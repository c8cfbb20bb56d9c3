package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"justdebate.online/backend/internal/service"
)

// updateUserRequest is the body of PUT /api/users/:id. Absent fields are
// left unchanged.
type updateUserRequest struct {
	Name *string   `json:"name"`
	Bio  *string   `json:"bio"`
	Tags *[]string `json:"tags"`
}

// addCommentRequest is the body of POST /api/users/:id/comments.
type addCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// ListUsers handles GET /api/users.
func (s *Server) ListUsers(c *gin.Context) {
	users, err := s.users.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUser handles GET /api/users/:id.
func (s *Server) GetUser(c *gin.Context) {
	id, ok := uuidParam(c, "id", "user")
	if !ok {
		return
	}

	user, err := s.users.Get(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateUser handles PUT /api/users/:id.
func (s *Server) UpdateUser(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "user")
	if !ok {
		return
	}

	var req updateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := s.users.UpdateProfile(c.Request.Context(), actor, id, service.UpdateProfileInput{
		Name: req.Name,
		Bio:  req.Bio,
		Tags: req.Tags,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// AddComment handles POST /api/users/:id/comments.
func (s *Server) AddComment(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "user")
	if !ok {
		return
	}

	var req addCommentRequest
	if !bindJSON(c, &req) {
		return
	}

	comment, err := s.users.AddComment(c.Request.Context(), actor, id, req.Content)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}
