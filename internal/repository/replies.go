package repository

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"justdebate.online/backend/internal/domain"
)

const replyColumns = "id, content, argument_id, author_id, upvotes, downvotes, created_at, updated_at"

var replyWithAuthorColumns = []string{
	"r.id", "r.content", "r.upvotes", "r.downvotes", "r.created_at",
	`u.id AS "author.id"`,
	`u.name AS "author.name"`,
	`u.avatar AS "author.avatar"`,
}

// ReplyRepository persists replies posted under arguments.
type ReplyRepository struct {
	db Querier
}

// NewReplyRepository creates a reply repository on top of the given handle.
func NewReplyRepository(db Querier) *ReplyRepository {
	return &ReplyRepository{db: db}
}

// CreateReplyParams are the fields set when a reply is posted.
type CreateReplyParams struct {
	ArgumentID uuid.UUID
	AuthorID   uuid.UUID
	Content    string
}

// Create inserts a new reply and returns the stored row.
func (r *ReplyRepository) Create(ctx context.Context, p CreateReplyParams) (*domain.Reply, error) {
	query, args, err := psql.Insert("replies").
		Columns("argument_id", "author_id", "content").
		Values(p.ArgumentID, p.AuthorID, p.Content).
		Suffix("RETURNING " + replyColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var reply domain.Reply
	if err := pgxscan.Get(ctx, QuerierFromCtx(ctx, r.db), &reply, query, args...); err != nil {
		return nil, mapError(err, "reply")
	}
	return &reply, nil
}

// GetWithAuthor returns the reply with its author joined in.
func (r *ReplyRepository) GetWithAuthor(ctx context.Context, id uuid.UUID) (*domain.ReplyWithAuthor, error) {
	query, args, err := psql.Select(replyWithAuthorColumns...).
		From("replies r").
		Join("users u ON u.id = r.author_id").
		Where("r.id = ?", id).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var reply domain.ReplyWithAuthor
	if err := pgxscan.Get(ctx, QuerierFromCtx(ctx, r.db), &reply, query, args...); err != nil {
		return nil, mapError(err, "reply")
	}
	return &reply, nil
}

// ListByArgument returns all replies under an argument with authors,
// newest first.
func (r *ReplyRepository) ListByArgument(ctx context.Context, argumentID uuid.UUID) ([]domain.ReplyWithAuthor, error) {
	query, args, err := psql.Select(replyWithAuthorColumns...).
		From("replies r").
		Join("users u ON u.id = r.author_id").
		Where("r.argument_id = ?", argumentID).
		OrderBy("r.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	replies := []domain.ReplyWithAuthor{}
	if err := pgxscan.Select(ctx, QuerierFromCtx(ctx, r.db), &replies, query, args...); err != nil {
		return nil, mapError(err, "replies")
	}
	return replies, nil
}
