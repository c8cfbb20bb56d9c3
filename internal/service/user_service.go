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
	maxNameLen    = 100
	maxBioLen     = 500
	maxTags       = 10
	maxCommentLen = 1000
)

// userStore is the slice of the user repository the user flows need.
type userStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	List(ctx context.Context) ([]domain.UserSummary, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, p repository.UserProfileUpdate) (*domain.User, error)
}

// commentStore is the slice of the comment repository the user flows need.
type commentStore interface {
	Create(ctx context.Context, p repository.CreateCommentParams) (*domain.Comment, error)
	GetWithAuthor(ctx context.Context, id uuid.UUID) (*domain.CommentWithAuthor, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.CommentWithAuthor, error)
}

// UserService handles user listing, profiles, and profile comments.
type UserService struct {
	users    userStore
	comments commentStore
}

// NewUserService creates a UserService.
func NewUserService(users userStore, comments commentStore) *UserService {
	return &UserService{users: users, comments: comments}
}

// List returns all users ranked by rating.
func (s *UserService) List(ctx context.Context) ([]domain.UserSummary, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Get returns a user together with the comments on their profile.
func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*domain.UserDetail, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound(apperrors.CodeUserNotFound, "User not found")
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	comments, err := s.comments.ListForUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list profile comments: %w", err)
	}

	return &domain.UserDetail{User: *user, Comments: comments}, nil
}

// UpdateProfileInput carries the user-editable fields of a profile update.
// Nil pointers mean "leave unchanged".
type UpdateProfileInput struct {
	Name *string
	Bio  *string
	Tags *[]string
}

func (in UpdateProfileInput) validate() error {
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" || len(name) > maxNameLen {
			return apperrors.BadRequest(apperrors.CodeValidationFailed, "Name must be between 1 and 100 characters")
		}
	}
	if in.Bio != nil && len(*in.Bio) > maxBioLen {
		return apperrors.BadRequest(apperrors.CodeValidationFailed, "Bio must be at most 500 characters")
	}
	if in.Tags != nil && len(*in.Tags) > maxTags {
		return apperrors.BadRequest(apperrors.CodeValidationFailed, "At most 10 tags are allowed")
	}
	return nil
}

// UpdateProfile applies a partial profile update. Users can edit their own
// profile; admins can edit anyone's.
func (s *UserService) UpdateProfile(ctx context.Context, actor domain.AuthUser, id uuid.UUID, in UpdateProfileInput) (*domain.User, error) {
	if actor.ID != id && !actor.IsAdmin {
		return nil, apperrors.Forbidden(apperrors.CodeProfileUpdate, "You can only edit your own profile")
	}

	if err := in.validate(); err != nil {
		return nil, err
	}

	user, err := s.users.UpdateProfile(ctx, id, repository.UserProfileUpdate{
		Name: in.Name,
		Bio:  in.Bio,
		Tags: in.Tags,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound(apperrors.CodeUserNotFound, "User not found")
		}
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return user, nil
}

// AddComment posts a comment on another user's profile.
func (s *UserService) AddComment(ctx context.Context, actor domain.AuthUser, targetID uuid.UUID, content string) (*domain.CommentWithAuthor, error) {
	if actor.ID == targetID {
		return nil, apperrors.ErrSelfComment()
	}

	content = strings.TrimSpace(content)
	if content == "" || len(content) > maxCommentLen {
		return nil, apperrors.BadRequest(apperrors.CodeValidationFailed, "Comment must be between 1 and 1000 characters")
	}

	if _, err := s.users.GetByID(ctx, targetID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound(apperrors.CodeUserNotFound, "User not found")
		}
		return nil, fmt.Errorf("get target user: %w", err)
	}

	comment, err := s.comments.Create(ctx, repository.CreateCommentParams{
		TargetUserID: targetID,
		AuthorID:     actor.ID,
		Content:      content,
	})
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	withAuthor, err := s.comments.GetWithAuthor(ctx, comment.ID)
	if err != nil {
		return nil, fmt.Errorf("load created comment: %w", err)
	}
	return withAuthor, nil
}
