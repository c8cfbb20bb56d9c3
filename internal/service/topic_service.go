package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"justdebate.online/backend/internal/domain"
	apperrors "justdebate.online/backend/internal/pkg/errors"
	"justdebate.online/backend/internal/pkg/logger"
	"justdebate.online/backend/internal/repository"
)

const (
	maxTitleLen       = 200
	maxDescriptionLen = 2000
)

// topicStore is the slice of the topic repository the topic flows need.
type topicStore interface {
	Create(ctx context.Context, p repository.CreateTopicParams) (*domain.Topic, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.TopicWithAuthor, error)
	List(ctx context.Context) ([]domain.TopicWithAuthor, error)
	Update(ctx context.Context, id uuid.UUID, p repository.TopicUpdate) (*domain.Topic, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// TopicService handles the debate topic lifecycle.
type TopicService struct {
	topics topicStore
}

// NewTopicService creates a TopicService.
func NewTopicService(topics topicStore) *TopicService {
	return &TopicService{topics: topics}
}

// List returns all topics with their authors, newest first.
func (s *TopicService) List(ctx context.Context) ([]domain.TopicWithAuthor, error) {
	topics, err := s.topics.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	return topics, nil
}

// Get returns a single topic with its author.
func (s *TopicService) Get(ctx context.Context, id uuid.UUID) (*domain.TopicWithAuthor, error) {
	topic, err := s.topics.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound(apperrors.CodeTopicNotFound, "Topic not found")
		}
		return nil, fmt.Errorf("get topic: %w", err)
	}
	return topic, nil
}

// CreateTopicInput carries the fields of a new topic.
type CreateTopicInput struct {
	Title       string
	Description string
	Tags        []string
	EndDate     *time.Time
}

func (in CreateTopicInput) validate() error {
	title := strings.TrimSpace(in.Title)
	if title == "" || len(title) > maxTitleLen {
		return apperrors.BadRequest(apperrors.CodeValidationFailed, "Title must be between 1 and 200 characters")
	}
	description := strings.TrimSpace(in.Description)
	if description == "" || len(description) > maxDescriptionLen {
		return apperrors.BadRequest(apperrors.CodeValidationFailed, "Description must be between 1 and 2000 characters")
	}
	if len(in.Tags) > maxTags {
		return apperrors.BadRequest(apperrors.CodeValidationFailed, "At most 10 tags are allowed")
	}
	return nil
}

// Create opens a new topic owned by the actor and returns it with the
// author joined in.
func (s *TopicService) Create(ctx context.Context, actor domain.AuthUser, in CreateTopicInput) (*domain.TopicWithAuthor, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	topic, err := s.topics.Create(ctx, repository.CreateTopicParams{
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		AuthorID:    actor.ID,
		Tags:        in.Tags,
		EndDate:     in.EndDate,
	})
	if err != nil {
		return nil, fmt.Errorf("create topic: %w", err)
	}

	logger.Info("topic created",
		zap.String("topic_id", topic.ID.String()),
		zap.String("author_id", actor.ID.String()),
	)

	return s.Get(ctx, topic.ID)
}

// UpdateTopicInput carries the editable fields of a topic update.
// Nil pointers mean "leave unchanged".
type UpdateTopicInput struct {
	Title       *string
	Description *string
	Status      *domain.TopicStatus
	Tags        *[]string
	EndDate     *time.Time
}

func (in UpdateTopicInput) validate() error {
	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" || len(title) > maxTitleLen {
			return apperrors.BadRequest(apperrors.CodeValidationFailed, "Title must be between 1 and 200 characters")
		}
	}
	if in.Description != nil {
		description := strings.TrimSpace(*in.Description)
		if description == "" || len(description) > maxDescriptionLen {
			return apperrors.BadRequest(apperrors.CodeValidationFailed, "Description must be between 1 and 2000 characters")
		}
	}
	if in.Status != nil && !in.Status.Valid() {
		return apperrors.BadRequest(apperrors.CodeValidationFailed, "Status must be active, closed or scheduled")
	}
	if in.Tags != nil && len(*in.Tags) > maxTags {
		return apperrors.BadRequest(apperrors.CodeValidationFailed, "At most 10 tags are allowed")
	}
	return nil
}

// Update applies a partial update. Owners can edit their own topics;
// admins can edit anyone's.
func (s *TopicService) Update(ctx context.Context, actor domain.AuthUser, id uuid.UUID, in UpdateTopicInput) (*domain.Topic, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.Author.ID != actor.ID && !actor.IsAdmin {
		return nil, apperrors.Forbidden(apperrors.CodeTopicForbidden, "You can only edit your own topics")
	}

	if err := in.validate(); err != nil {
		return nil, err
	}

	topic, err := s.topics.Update(ctx, id, repository.TopicUpdate{
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
		Tags:        in.Tags,
		EndDate:     in.EndDate,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound(apperrors.CodeTopicNotFound, "Topic not found")
		}
		return nil, fmt.Errorf("update topic: %w", err)
	}
	return topic, nil
}

// Delete removes a topic. Owners can delete their own topics; admins can
// delete anyone's.
func (s *TopicService) Delete(ctx context.Context, actor domain.AuthUser, id uuid.UUID) error {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if existing.Author.ID != actor.ID && !actor.IsAdmin {
		return apperrors.Forbidden(apperrors.CodeTopicForbidden, "You can only delete your own topics")
	}

	if err := s.topics.Delete(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NotFound(apperrors.CodeTopicNotFound, "Topic not found")
		}
		return fmt.Errorf("delete topic: %w", err)
	}

	logger.Info("topic deleted",
		zap.String("topic_id", id.String()),
		zap.String("actor_id", actor.ID.String()),
	)
	return nil
}
