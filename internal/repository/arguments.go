package repository

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"justdebate.online/backend/internal/domain"
)

const argumentColumns = "id, content, type, topic_id, author_id, upvotes, downvotes, created_at, updated_at"

var argumentWithAuthorColumns = []string{
	"a.id", "a.content", "a.type", "a.upvotes", "a.downvotes", "a.created_at",
	`u.id AS "author.id"`,
	`u.name AS "author.name"`,
	`u.avatar AS "author.avatar"`,
}

// ArgumentRepository persists arguments posted under topics.
type ArgumentRepository struct {
	db Querier
}

// NewArgumentRepository creates an argument repository on top of the given handle.
func NewArgumentRepository(db Querier) *ArgumentRepository {
	return &ArgumentRepository{db: db}
}

// CreateArgumentParams are the fields set when an argument is posted.
type CreateArgumentParams struct {
	TopicID  uuid.UUID
	AuthorID uuid.UUID
	Content  string
	Type     domain.ArgumentType
}

// Create inserts a new argument and returns the stored row.
func (r *ArgumentRepository) Create(ctx context.Context, p CreateArgumentParams) (*domain.Argument, error) {
	query, args, err := psql.Insert("arguments").
		Columns("topic_id", "author_id", "content", "type").
		Values(p.TopicID, p.AuthorID, p.Content, p.Type).
		Suffix("RETURNING " + argumentColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var a domain.Argument
	if err := pgxscan.Get(ctx, QuerierFromCtx(ctx, r.db), &a, query, args...); err != nil {
		return nil, mapError(err, "argument")
	}
	return &a, nil
}

// GetByID returns the raw argument row.
func (r *ArgumentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Argument, error) {
	query, args, err := psql.Select(argumentColumns).
		From("arguments").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var a domain.Argument
	if err := pgxscan.Get(ctx, QuerierFromCtx(ctx, r.db), &a, query, args...); err != nil {
		return nil, mapError(err, "argument")
	}
	return &a, nil
}

// GetWithAuthor returns the argument with its author joined in.
func (r *ArgumentRepository) GetWithAuthor(ctx context.Context, id uuid.UUID) (*domain.ArgumentWithAuthor, error) {
	query, args, err := psql.Select(argumentWithAuthorColumns...).
		From("arguments a").
		Join("users u ON u.id = a.author_id").
		Where("a.id = ?", id).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var a domain.ArgumentWithAuthor
	if err := pgxscan.Get(ctx, QuerierFromCtx(ctx, r.db), &a, query, args...); err != nil {
		return nil, mapError(err, "argument")
	}
	return &a, nil
}

// ListByTopic returns all arguments under a topic with authors, newest first.
func (r *ArgumentRepository) ListByTopic(ctx context.Context, topicID uuid.UUID) ([]domain.ArgumentWithAuthor, error) {
	query, args, err := psql.Select(argumentWithAuthorColumns...).
		From("arguments a").
		Join("users u ON u.id = a.author_id").
		Where("a.topic_id = ?", topicID).
		OrderBy("a.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	arguments := []domain.ArgumentWithAuthor{}
	if err := pgxscan.Select(ctx, QuerierFromCtx(ctx, r.db), &arguments, query, args...); err != nil {
		return nil, mapError(err, "arguments")
	}
	return arguments, nil
}

// SetVoteCounts persists a recomputed vote tally onto the argument row.
func (r *ArgumentRepository) SetVoteCounts(ctx context.Context, id uuid.UUID, counts domain.VoteCounts) error {
	query, args, err := psql.Update("arguments").
		Set("upvotes", counts.Upvotes).
		Set("downvotes", counts.Downvotes).
		Set("updated_at", nowExpr).
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return mapError(err, "argument")
	}
	return nil
}
