package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"justdebate.online/backend/internal/domain"
	"justdebate.online/backend/internal/service"
)

// createArgumentRequest is the body of POST /api/arguments.
type createArgumentRequest struct {
	TopicID uuid.UUID `json:"topicId" binding:"required"`
	Content string    `json:"content" binding:"required"`
	Type    string    `json:"type" binding:"required"`
}

// voteRequest is the body of POST /api/arguments/:id/vote.
type voteRequest struct {
	VoteType string `json:"voteType" binding:"required"`
}

// createReplyRequest is the body of POST /api/arguments/:id/replies.
type createReplyRequest struct {
	Content string `json:"content" binding:"required"`
}

// ListArgumentsByTopic handles GET /api/arguments/topic/:topicId.
func (s *Server) ListArgumentsByTopic(c *gin.Context) {
	topicID, ok := uuidParam(c, "topicId", "topic")
	if !ok {
		return
	}

	arguments, err := s.arguments.ListForTopic(c.Request.Context(), topicID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, arguments)
}

// CreateArgument handles POST /api/arguments.
func (s *Server) CreateArgument(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var req createArgumentRequest
	if !bindJSON(c, &req) {
		return
	}

	argument, err := s.arguments.Create(c.Request.Context(), actor, service.CreateArgumentInput{
		TopicID: req.TopicID,
		Content: req.Content,
		Type:    domain.ArgumentType(req.Type),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, argument)
}

// VoteArgument handles POST /api/arguments/:id/vote.
func (s *Server) VoteArgument(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "argument")
	if !ok {
		return
	}

	var req voteRequest
	if !bindJSON(c, &req) {
		return
	}

	counts, err := s.arguments.Vote(c.Request.Context(), actor, id, domain.VoteDirection(req.VoteType))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, counts)
}

// ListReplies handles GET /api/arguments/:id/replies.
func (s *Server) ListReplies(c *gin.Context) {
	id, ok := uuidParam(c, "id", "argument")
	if !ok {
		return
	}

	replies, err := s.arguments.ListReplies(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, replies)
}

// CreateReply handles POST /api/arguments/:id/replies.
func (s *Server) CreateReply(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "argument")
	if !ok {
		return
	}

	var req createReplyRequest
	if !bindJSON(c, &req) {
		return
	}

	reply, err := s.arguments.CreateReply(c.Request.Context(), actor, id, req.Content)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, reply)
}
