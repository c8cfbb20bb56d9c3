package service

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"justdebate.online/backend/internal/domain"
	apperrors "justdebate.online/backend/internal/pkg/errors"
)

func TestUserService_Get(t *testing.T) {
	ctx := context.Background()
	user := &domain.User{ID: uuid.New(), Name: "Ada", Tags: []string{}}
	other := domain.AuthUser{ID: uuid.New()}

	users := newMemUserStore(user)
	comments := newMemCommentStore()
	svc := NewUserService(users, comments)

	t.Run("returns profile with comments", func(t *testing.T) {
		_, err := svc.AddComment(ctx, other, user.ID, "Sharp arguments")
		require.NoError(t, err)

		detail, err := svc.Get(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "Ada", detail.Name)
		require.Len(t, detail.Comments, 1)
		assert.Equal(t, "Sharp arguments", detail.Comments[0].Content)
	})

	t.Run("unknown user yields 404", func(t *testing.T) {
		_, err := svc.Get(ctx, uuid.New())
		appErr, ok := apperrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusNotFound, appErr.HTTPStatus)
	})
}

func TestUserService_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	name := "Ada Lovelace"
	longBio := strings.Repeat("x", 501)

	t.Run("self update applies fields", func(t *testing.T) {
		user := &domain.User{ID: uuid.New(), Name: "Ada", Tags: []string{}}
		svc := NewUserService(newMemUserStore(user), newMemCommentStore())

		updated, err := svc.UpdateProfile(ctx, domain.AuthUser{ID: user.ID}, user.ID, UpdateProfileInput{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "Ada Lovelace", updated.Name)
	})

	t.Run("admin may update anyone", func(t *testing.T) {
		user := &domain.User{ID: uuid.New(), Name: "Ada", Tags: []string{}}
		svc := NewUserService(newMemUserStore(user), newMemCommentStore())

		_, err := svc.UpdateProfile(ctx, domain.AuthUser{ID: uuid.New(), IsAdmin: true}, user.ID, UpdateProfileInput{Name: &name})
		require.NoError(t, err)
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		user := &domain.User{ID: uuid.New(), Name: "Ada", Tags: []string{}}
		svc := NewUserService(newMemUserStore(user), newMemCommentStore())

		_, err := svc.UpdateProfile(ctx, domain.AuthUser{ID: uuid.New()}, user.ID, UpdateProfileInput{Name: &name})
		appErr, ok := apperrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusForbidden, appErr.HTTPStatus)
	})

	t.Run("overlong bio yields 400", func(t *testing.T) {
		user := &domain.User{ID: uuid.New(), Name: "Ada", Tags: []string{}}
		svc := NewUserService(newMemUserStore(user), newMemCommentStore())

		_, err := svc.UpdateProfile(ctx, domain.AuthUser{ID: user.ID}, user.ID, UpdateProfileInput{Bio: &longBio})
		appErr, ok := apperrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
	})
}

func TestUserService_AddComment(t *testing.T) {
	ctx := context.Background()
	target := &domain.User{ID: uuid.New(), Name: "Ada", Tags: []string{}}
	author := domain.AuthUser{ID: uuid.New(), Name: "Alan"}

	t.Run("self comment is rejected", func(t *testing.T) {
		svc := NewUserService(newMemUserStore(target), newMemCommentStore())

		_, err := svc.AddComment(ctx, domain.AuthUser{ID: target.ID}, target.ID, "I am great")
		appErr, ok := apperrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
		assert.Equal(t, "Cannot comment on your own profile", appErr.Message)
	})

	t.Run("unknown target yields 404", func(t *testing.T) {
		svc := NewUserService(newMemUserStore(target), newMemCommentStore())

		_, err := svc.AddComment(ctx, author, uuid.New(), "hello")
		appErr, ok := apperrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusNotFound, appErr.HTTPStatus)
	})

	t.Run("comment is trimmed and stored", func(t *testing.T) {
		svc := NewUserService(newMemUserStore(target), newMemCommentStore())

		comment, err := svc.AddComment(ctx, author, target.ID, "  Well argued  ")
		require.NoError(t, err)
		assert.Equal(t, "Well argued", comment.Content)
		assert.Equal(t, author.ID, comment.Author.ID)
	})
}
