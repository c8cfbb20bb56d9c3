package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"justdebate.online/backend/internal/domain"
	apperrors "justdebate.online/backend/internal/pkg/errors"
)

const topicColumns = "id, title, description, author_id, status, tags, participants, upvotes, downvotes, end_date, created_at, updated_at"

// topicWithAuthorColumns aliases the joined author columns into the nested
// "author" scan path.
var topicWithAuthorColumns = []string{
	"t.id", "t.title", "t.description", "t.status", "t.tags",
	"t.participants", "t.upvotes", "t.downvotes", "t.end_date", "t.created_at",
	`u.id AS "author.id"`,
	`u.name AS "author.name"`,
	`u.email AS "author.email"`,
	`u.avatar AS "author.avatar"`,
}

// TopicRepository persists debate topics.
type TopicRepository struct {
	db Querier
}

// NewTopicRepository creates a topic repository on top of the given handle.
func NewTopicRepository(db Querier) *TopicRepository {
	return &TopicRepository{db: db}
}

// CreateTopicParams are the fields set when a topic is opened.
type CreateTopicParams struct {
	Title       string
	Description string
	AuthorID    uuid.UUID
	Tags        []string
	EndDate     *time.Time
}

// Create inserts a new topic in the active state and returns the stored row.
func (r *TopicRepository) Create(ctx context.Context, p CreateTopicParams) (*domain.Topic, error) {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}

	query, args, err := psql.Insert("topics").
		Columns("title", "description", "author_id", "status", "tags", "end_date").
		Values(p.Title, p.Description, p.AuthorID, domain.TopicStatusActive, tags, p.EndDate).
		Suffix("RETURNING " + topicColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var t domain.Topic
	if err := pgxscan.Get(ctx, QuerierFromCtx(ctx, r.db), &t, query, args...); err != nil {
		return nil, mapError(err, "topic")
	}
	return &t, nil
}

// GetByID returns the topic with its author joined in.
func (r *TopicRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.TopicWithAuthor, error) {
	query, args, err := psql.Select(topicWithAuthorColumns...).
		From("topics t").
		Join("users u ON u.id = t.author_id").
		Where("t.id = ?", id).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var t domain.TopicWithAuthor
	if err := pgxscan.Get(ctx, QuerierFromCtx(ctx, r.db), &t, query, args...); err != nil {
		return nil, mapError(err, "topic")
	}
	return &t, nil
}

// List returns all topics with authors, newest first.
func (r *TopicRepository) List(ctx context.Context) ([]domain.TopicWithAuthor, error) {
	query, args, err := psql.Select(topicWithAuthorColumns...).
		From("topics t").
		Join("users u ON u.id = t.author_id").
		OrderBy("t.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	topics := []domain.TopicWithAuthor{}
	if err := pgxscan.Select(ctx, QuerierFromCtx(ctx, r.db), &topics, query, args...); err != nil {
		return nil, mapError(err, "topics")
	}
	return topics, nil
}

// TopicUpdate carries the editable topic fields. Nil pointers leave the
// column unchanged.
type TopicUpdate struct {
	Title       *string
	Description *string
	Status      *domain.TopicStatus
	Tags        *[]string
	EndDate     *time.Time
}

// Update applies a partial update and returns the stored row.
func (r *TopicRepository) Update(ctx context.Context, id uuid.UUID, p TopicUpdate) (*domain.Topic, error) {
	b := psql.Update("topics").
		Set("updated_at", nowExpr).
		Where("id = ?", id).
		Suffix("RETURNING " + topicColumns)

	if p.Title != nil {
		b = b.Set("title", *p.Title)
	}
	if p.Description != nil {
		b = b.Set("description", *p.Description)
	}
	if p.Status != nil {
		b = b.Set("status", *p.Status)
	}
	if p.Tags != nil {
		b = b.Set("tags", *p.Tags)
	}
	if p.EndDate != nil {
		b = b.Set("end_date", *p.EndDate)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var t domain.Topic
	if err := pgxscan.Get(ctx, QuerierFromCtx(ctx, r.db), &t, query, args...); err != nil {
		return nil, mapError(err, "topic")
	}
	return &t, nil
}

// Delete removes a topic. Arguments and replies go with it via cascade.
func (r *TopicRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := psql.Delete("topics").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return mapError(err, "topic")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("topic: %w", apperrors.ErrNotFound)
	}
	return nil
}

// IncrementParticipants bumps the participant counter atomically.
func (r *TopicRepository) IncrementParticipants(ctx context.Context, id uuid.UUID) error {
	query, args, err := psql.Update("topics").
		Set("participants", squirrel.Expr("participants + 1")).
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return mapError(err, "topic")
	}
	return nil
}
