package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"justdebate.online/backend/internal/domain"
	"justdebate.online/backend/internal/service"
)

// createTopicRequest is the body of POST /api/topics.
type createTopicRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description" binding:"required"`
	Tags        []string   `json:"tags"`
	EndDate     *time.Time `json:"endDate"`
}

// updateTopicRequest is the body of PUT /api/topics/:id. Absent fields are
// left unchanged.
type updateTopicRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Status      *string    `json:"status"`
	Tags        *[]string  `json:"tags"`
	EndDate     *time.Time `json:"endDate"`
}

// ListTopics handles GET /api/topics.
func (s *Server) ListTopics(c *gin.Context) {
	topics, err := s.topics.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, topics)
}

// GetTopic handles GET /api/topics/:id.
func (s *Server) GetTopic(c *gin.Context) {
	id, ok := uuidParam(c, "id", "topic")
	if !ok {
		return
	}

	topic, err := s.topics.Get(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, topic)
}

// CreateTopic handles POST /api/topics.
func (s *Server) CreateTopic(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var req createTopicRequest
	if !bindJSON(c, &req) {
		return
	}

	topic, err := s.topics.Create(c.Request.Context(), actor, service.CreateTopicInput{
		Title:       req.Title,
		Description: req.Description,
		Tags:        req.Tags,
		EndDate:     req.EndDate,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, topic)
}

// UpdateTopic handles PUT /api/topics/:id.
func (s *Server) UpdateTopic(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "topic")
	if !ok {
		return
	}

	var req updateTopicRequest
	if !bindJSON(c, &req) {
		return
	}

	var status *domain.TopicStatus
	if req.Status != nil {
		st := domain.TopicStatus(*req.Status)
		status = &st
	}

	topic, err := s.topics.Update(c.Request.Context(), actor, id, service.UpdateTopicInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		Tags:        req.Tags,
		EndDate:     req.EndDate,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, topic)
}

// DeleteTopic handles DELETE /api/topics/:id.
func (s *Server) DeleteTopic(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "topic")
	if !ok {
		return
	}

	if err := s.topics.Delete(c.Request.Context(), actor, id); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Topic deleted successfully"})
}
