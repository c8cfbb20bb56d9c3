package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"

	apperrors "justdebate.online/backend/internal/pkg/errors"
)

func TestCommentRepository_Create(t *testing.T) {
	commentID := uuid.New()
	targetUserID := uuid.New()
	authorID := uuid.New()
	now := time.Now()

	t.Run("inserts and returns the row", func(t *testing.T) {
		mock := newMockDB(t)
		rows := pgxmock.NewRows([]string{
			"id", "content", "target_user_id", "author_id", "created_at", "updated_at",
		}).AddRow(commentID, "Great debater", targetUserID, authorID, now, now)
		mock.ExpectQuery(`INSERT INTO comments`).
			WithArgs(targetUserID, authorID, "Great debater").
			WillReturnRows(rows)

		c, err := NewCommentRepository(mock).Create(context.Background(), CreateCommentParams{
			TargetUserID: targetUserID,
			AuthorID:     authorID,
			Content:      "Great debater",
		})
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if c.TargetUserID != targetUserID {
			t.Errorf("Create() target = %v, want %v", c.TargetUserID, targetUserID)
		}

		expectationsWereMet(t, mock)
	})

	t.Run("dangling profile maps to not found", func(t *testing.T) {
		mock := newMockDB(t)
		mock.ExpectQuery(`INSERT INTO comments`).
			WithArgs(targetUserID, authorID, "Great debater").
			WillReturnError(&pgconn.PgError{Code: pgForeignKeyViolation})

		_, err := NewCommentRepository(mock).Create(context.Background(), CreateCommentParams{
			TargetUserID: targetUserID,
			AuthorID:     authorID,
			Content:      "Great debater",
		})
		if !errors.Is(err, apperrors.ErrNotFound) {
			t.Errorf("Create() error = %v, want ErrNotFound", err)
		}

		expectationsWereMet(t, mock)
	})
}

func TestCommentRepository_ListForUser(t *testing.T) {
	targetUserID := uuid.New()
	now := time.Now()

	mock := newMockDB(t)
	rows := pgxmock.NewRows([]string{
		"id", "content", "created_at", "author.id", "author.name", "author.avatar",
	}).
		AddRow(uuid.New(), "Sharp arguments", now, uuid.New(), "Alan", "").
		AddRow(uuid.New(), "Always on point", now.Add(-time.Hour), uuid.New(), "Grace", "")
	mock.ExpectQuery(`SELECT .+ FROM comments c JOIN users u`).
		WithArgs(targetUserID).
		WillReturnRows(rows)

	comments, err := NewCommentRepository(mock).ListForUser(context.Background(), targetUserID)
	if err != nil {
		t.Fatalf("ListForUser() error = %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("ListForUser() returned %d comments, want 2", len(comments))
	}
	if comments[0].Author.Name != "Alan" {
		t.Errorf("ListForUser() first author = %q, want Alan", comments[0].Author.Name)
	}

	expectationsWereMet(t, mock)
}
