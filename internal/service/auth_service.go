// Package service implements the business logic of the debate platform.
//
// Services depend on narrow consumer-side interfaces over the repositories
// and verifiers, and never manage transactions beyond the TxManager seam.
package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"justdebate.online/backend/internal/auth"
	"justdebate.online/backend/internal/config"
	"justdebate.online/backend/internal/domain"
	apperrors "justdebate.online/backend/internal/pkg/errors"
	"justdebate.online/backend/internal/pkg/logger"
	"justdebate.online/backend/internal/repository"
)

// identityVerifier validates a Google ID token.
type identityVerifier interface {
	Verify(ctx context.Context, idToken string) (*auth.Identity, error)
}

// sessionTokens issues and validates locally-signed session tokens.
type sessionTokens interface {
	Generate(userID uuid.UUID, email string) (string, error)
	Validate(token string) (uuid.UUID, string, error)
}

// authUserStore is the slice of the user repository the auth flow needs.
type authUserStore interface {
	Create(ctx context.Context, p repository.CreateUserParams) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByGoogleID(ctx context.Context, googleID string) (*domain.User, error)
	RefreshLoginProfile(ctx context.Context, id uuid.UUID, name, avatar string) (*domain.User, error)
}

// AuthService handles sign-in, session verification, and credential
// resolution for the request middleware.
type AuthService struct {
	users  authUserStore
	google identityVerifier
	tokens sessionTokens
	cfg    config.AuthConfig
}

// NewAuthService creates an AuthService.
func NewAuthService(users authUserStore, google identityVerifier, tokens sessionTokens, cfg config.AuthConfig) *AuthService {
	return &AuthService{
		users:  users,
		google: google,
		tokens: tokens,
		cfg:    cfg,
	}
}

// LoginWithGoogle verifies a Google ID token, provisions or refreshes the
// account, and issues a session token.
func (s *AuthService) LoginWithGoogle(ctx context.Context, credential string) (*domain.Profile, string, error) {
	identity, err := s.google.Verify(ctx, credential)
	if err != nil {
		return nil, "", apperrors.Wrap(err, apperrors.CodeAuthFailed, "Invalid Google token", http.StatusUnauthorized)
	}

	if identity.Email == "" || identity.Name == "" {
		return nil, "", apperrors.BadRequest(apperrors.CodeMissingProfile, "Email and name are required")
	}

	user, err := s.users.GetByGoogleID(ctx, identity.Subject)
	switch {
	case err == nil:
		// Returning user: the identity provider owns name and picture.
		avatar := identity.Picture
		if avatar == "" {
			avatar = user.Avatar
		}
		user, err = s.users.RefreshLoginProfile(ctx, user.ID, identity.Name, avatar)
		if err != nil {
			return nil, "", fmt.Errorf("refresh login profile: %w", err)
		}

	case errors.Is(err, apperrors.ErrNotFound):
		user, err = s.users.Create(ctx, repository.CreateUserParams{
			GoogleID: identity.Subject,
			Email:    identity.Email,
			Name:     identity.Name,
			Avatar:   identity.Picture,
			IsAdmin:  s.cfg.IsAdminEmail(identity.Email),
		})
		if err != nil {
			return nil, "", fmt.Errorf("create user: %w", err)
		}
		logger.Info("user registered",
			zap.String("user_id", user.ID.String()),
			zap.Bool("is_admin", user.IsAdmin),
		)

	default:
		return nil, "", fmt.Errorf("lookup user: %w", err)
	}

	token, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("issue session token: %w", err)
	}

	profile := domain.ProfileOf(user)
	return &profile, token, nil
}

// Verify validates a locally-issued session token and returns the profile
// it belongs to. Google ID tokens are not accepted here.
func (s *AuthService) Verify(ctx context.Context, token string) (*domain.Profile, error) {
	if auth.KindOf(token) != auth.KindLocal {
		return nil, apperrors.Unauthorized(apperrors.CodeTokenInvalid, "Invalid token")
	}

	userID, _, err := s.tokens.Validate(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.Wrap(err, apperrors.CodeTokenExpired, "Token expired", http.StatusUnauthorized)
		}
		return nil, apperrors.Wrap(err, apperrors.CodeTokenInvalid, "Invalid token", http.StatusUnauthorized)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		// A credential whose subject no longer exists is an auth failure,
		// not a missing resource.
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.Unauthorized(apperrors.CodeUserNotFound, "User not found")
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	profile := domain.ProfileOf(user)
	return &profile, nil
}

// ResolveCredential classifies a bearer credential by its signing algorithm
// and resolves it to an authenticated user. Exactly one verifier branch runs.
func (s *AuthService) ResolveCredential(ctx context.Context, token string) (*domain.AuthUser, error) {
	var user *domain.User

	switch auth.KindOf(token) {
	case auth.KindLocal:
		userID, _, err := s.tokens.Validate(token)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeTokenInvalid, "Invalid token", http.StatusUnauthorized)
		}
		user, err = s.users.GetByID(ctx, userID)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeTokenInvalid, "Invalid token", http.StatusUnauthorized)
		}

	case auth.KindGoogle:
		identity, err := s.google.Verify(ctx, token)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeTokenInvalid, "Invalid token", http.StatusUnauthorized)
		}
		user, err = s.users.GetByGoogleID(ctx, identity.Subject)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeTokenInvalid, "Invalid token", http.StatusUnauthorized)
		}

	default:
		return nil, apperrors.Unauthorized(apperrors.CodeTokenInvalid, "Invalid token")
	}

	return &domain.AuthUser{
		ID:      user.ID,
		Email:   user.Email,
		Name:    user.Name,
		IsAdmin: user.IsAdmin,
	}, nil
}
