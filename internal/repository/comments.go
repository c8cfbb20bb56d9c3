package repository

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"justdebate.online/backend/internal/domain"
)

const commentColumns = "id, content, target_user_id, author_id, created_at, updated_at"

var commentWithAuthorColumns = []string{
	"c.id", "c.content", "c.created_at",
	`u.id AS "author.id"`,
	`u.name AS "author.name"`,
	`u.avatar AS "author.avatar"`,
}

// CommentRepository persists comments left on user profiles.
type CommentRepository struct {
	db Querier
}

// NewCommentRepository creates a comment repository on top of the given handle.
func NewCommentRepository(db Querier) *CommentRepository {
	return &CommentRepository{db: db}
}

// CreateCommentParams are the fields set when a profile comment is posted.
type CreateCommentParams struct {
	TargetUserID uuid.UUID
	AuthorID     uuid.UUID
	Content      string
}

// Create inserts a new profile comment and returns the stored row.
func (r *CommentRepository) Create(ctx context.Context, p CreateCommentParams) (*domain.Comment, error) {
	query, args, err := psql.Insert("comments").
		Columns("target_user_id", "author_id", "content").
		Values(p.TargetUserID, p.AuthorID, p.Content).
		Suffix("RETURNING " + commentColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var c domain.Comment
	if err := pgxscan.Get(ctx, QuerierFromCtx(ctx, r.db), &c, query, args...); err != nil {
		return nil, mapError(err, "comment")
	}
	return &c, nil
}

// GetWithAuthor returns the comment with its author joined in.
func (r *CommentRepository) GetWithAuthor(ctx context.Context, id uuid.UUID) (*domain.CommentWithAuthor, error) {
	query, args, err := psql.Select(commentWithAuthorColumns...).
		From("comments c").
		Join("users u ON u.id = c.author_id").
		Where("c.id = ?", id).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var c domain.CommentWithAuthor
	if err := pgxscan.Get(ctx, QuerierFromCtx(ctx, r.db), &c, query, args...); err != nil {
		return nil, mapError(err, "comment")
	}
	return &c, nil
}

// ListForUser returns the comments left on a user's profile, newest first.
func (r *CommentRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.CommentWithAuthor, error) {
	query, args, err := psql.Select(commentWithAuthorColumns...).
		From("comments c").
		Join("users u ON u.id = c.author_id").
		Where("c.target_user_id = ?", userID).
		OrderBy("c.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	comments := []domain.CommentWithAuthor{}
	if err := pgxscan.Select(ctx, QuerierFromCtx(ctx, r.db), &comments, query, args...); err != nil {
		return nil, mapError(err, "comments")
	}
	return comments, nil
}
