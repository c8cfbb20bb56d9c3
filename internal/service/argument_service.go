package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"justdebate.online/backend/internal/domain"
	apperrors "justdebate.online/backend/internal/pkg/errors"
	"justdebate.online/backend/internal/repository"
)

const (
	maxArgumentLen = 2000
	maxReplyLen    = 1000
)

// argumentStore is the slice of the argument repository the debate flows need.
type argumentStore interface {
	Create(ctx context.Context, p repository.CreateArgumentParams) (*domain.Argument, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Argument, error)
	GetWithAuthor(ctx context.Context, id uuid.UUID) (*domain.ArgumentWithAuthor, error)
	ListByTopic(ctx context.Context, topicID uuid.UUID) ([]domain.ArgumentWithAuthor, error)
	SetVoteCounts(ctx context.Context, id uuid.UUID, counts domain.VoteCounts) error
}

// replyStore is the slice of the reply repository the debate flows need.
type replyStore interface {
	Create(ctx context.Context, p repository.CreateReplyParams) (*domain.Reply, error)
	GetWithAuthor(ctx context.Context, id uuid.UUID) (*domain.ReplyWithAuthor, error)
	ListByArgument(ctx context.Context, argumentID uuid.UUID) ([]domain.ReplyWithAuthor, error)
}

// voteStore is the slice of the vote repository the debate flows need.
type voteStore interface {
	Cast(ctx context.Context, userID, targetID uuid.UUID, kind domain.TargetKind, direction domain.VoteDirection) error
	Tally(ctx context.Context, targetID uuid.UUID, kind domain.TargetKind) (domain.VoteCounts, error)
}

// participantCounter is the slice of the topic repository the debate flows need.
type participantCounter interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.TopicWithAuthor, error)
	IncrementParticipants(ctx context.Context, id uuid.UUID) error
}

// txRunner runs a function inside a database transaction.
type txRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ArgumentService handles arguments, replies, and voting.
type ArgumentService struct {
	arguments argumentStore
	replies   replyStore
	votes     voteStore
	topics    participantCounter
	tx        txRunner
}

// NewArgumentService creates an ArgumentService.
func NewArgumentService(arguments argumentStore, replies replyStore, votes voteStore, topics participantCounter, tx txRunner) *ArgumentService {
	return &ArgumentService{
		arguments: arguments,
		replies:   replies,
		votes:     votes,
		topics:    topics,
		tx:        tx,
	}
}

// ListForTopic returns the arguments under a topic, newest first.
func (s *ArgumentService) ListForTopic(ctx context.Context, topicID uuid.UUID) ([]domain.ArgumentWithAuthor, error) {
	arguments, err := s.arguments.ListByTopic(ctx, topicID)
	if err != nil {
		return nil, fmt.Errorf("list arguments: %w", err)
	}
	return arguments, nil
}

// CreateArgumentInput carries the fields of a new argument.
type CreateArgumentInput struct {
	TopicID uuid.UUID
	Content string
	Type    domain.ArgumentType
}

// Create posts an argument under an active topic. The insert and the topic
// participant increment commit together.
func (s *ArgumentService) Create(ctx context.Context, actor domain.AuthUser, in CreateArgumentInput) (*domain.ArgumentWithAuthor, error) {
	content := strings.TrimSpace(in.Content)
	if content == "" || len(content) > maxArgumentLen {
		return nil, apperrors.BadRequest(apperrors.CodeValidationFailed, "Content must be between 1 and 2000 characters")
	}
	if !in.Type.Valid() {
		return nil, apperrors.BadRequest(apperrors.CodeValidationFailed, "Type must be pro or con")
	}

	topic, err := s.topics.GetByID(ctx, in.TopicID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound(apperrors.CodeTopicNotFound, "Topic not found")
		}
		return nil, fmt.Errorf("get topic: %w", err)
	}
	if topic.Status != domain.TopicStatusActive {
		return nil, apperrors.ErrTopicNotActive()
	}

	var created *domain.Argument
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		created, err = s.arguments.Create(ctx, repository.CreateArgumentParams{
			TopicID:  in.TopicID,
			AuthorID: actor.ID,
			Content:  content,
			Type:     in.Type,
		})
		if err != nil {
			return fmt.Errorf("create argument: %w", err)
		}
		return s.topics.IncrementParticipants(ctx, in.TopicID)
	})
	if err != nil {
		return nil, err
	}

	return s.arguments.GetWithAuthor(ctx, created.ID)
}

// Vote records the actor's vote on an argument and returns the recomputed
// tally. A repeated vote by the same user replaces the previous direction.
// The upsert, recount, and counter write commit together.
func (s *ArgumentService) Vote(ctx context.Context, actor domain.AuthUser, argumentID uuid.UUID, direction domain.VoteDirection) (domain.VoteCounts, error) {
	if !direction.Valid() {
		return domain.VoteCounts{}, apperrors.BadRequest(apperrors.CodeValidationFailed, "Vote type must be up or down")
	}

	if _, err := s.arguments.GetByID(ctx, argumentID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.VoteCounts{}, apperrors.NotFound(apperrors.CodeArgumentNotFound, "Argument not found")
		}
		return domain.VoteCounts{}, fmt.Errorf("get argument: %w", err)
	}

	var counts domain.VoteCounts
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.votes.Cast(ctx, actor.ID, argumentID, domain.TargetArgument, direction); err != nil {
			return fmt.Errorf("cast vote: %w", err)
		}
		var err error
		counts, err = s.votes.Tally(ctx, argumentID, domain.TargetArgument)
		if err != nil {
			return fmt.Errorf("tally votes: %w", err)
		}
		return s.arguments.SetVoteCounts(ctx, argumentID, counts)
	})
	if err != nil {
		return domain.VoteCounts{}, err
	}
	return counts, nil
}

// ListReplies returns the replies under an argument, newest first. An
// unknown argument simply has no replies.
func (s *ArgumentService) ListReplies(ctx context.Context, argumentID uuid.UUID) ([]domain.ReplyWithAuthor, error) {
	replies, err := s.replies.ListByArgument(ctx, argumentID)
	if err != nil {
		return nil, fmt.Errorf("list replies: %w", err)
	}
	return replies, nil
}

// CreateReply posts a reply under an existing argument.
func (s *ArgumentService) CreateReply(ctx context.Context, actor domain.AuthUser, argumentID uuid.UUID, content string) (*domain.ReplyWithAuthor, error) {
	content = strings.TrimSpace(content)
	if content == "" || len(content) > maxReplyLen {
		return nil, apperrors.BadRequest(apperrors.CodeValidationFailed, "Content must be between 1 and 1000 characters")
	}

	if _, err := s.arguments.GetByID(ctx, argumentID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound(apperrors.CodeArgumentNotFound, "Argument not found")
		}
		return nil, fmt.Errorf("get argument: %w", err)
	}

	reply, err := s.replies.Create(ctx, repository.CreateReplyParams{
		ArgumentID: argumentID,
		AuthorID:   actor.ID,
		Content:    content,
	})
	if err != nil {
		return nil, fmt.Errorf("create reply: %w", err)
	}

	return s.replies.GetWithAuthor(ctx, reply.ID)
}
