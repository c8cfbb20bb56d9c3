package repository

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"justdebate.online/backend/internal/domain"
)

const userColumns = "id, google_id, email, name, avatar, bio, rating, debates_participated, is_admin, tags, created_at, updated_at"

// UserRepository persists user accounts.
type UserRepository struct {
	db Querier
}

// NewUserRepository creates a user repository on top of the given handle.
func NewUserRepository(db Querier) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUserParams are the fields set when an account is first provisioned
// from a verified Google identity.
type CreateUserParams struct {
	GoogleID string
	Email    string
	Name     string
	Avatar   string
	IsAdmin  bool
}

// Create inserts a new user and returns the stored row.
func (r *UserRepository) Create(ctx context.Context, p CreateUserParams) (*domain.User, error) {
	query, args, err := psql.Insert("users").
		Columns("google_id", "email", "name", "avatar", "is_admin", "tags").
		Values(p.GoogleID, p.Email, p.Name, p.Avatar, p.IsAdmin, []string{}).
		Suffix("RETURNING " + userColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var u domain.User
	if err := pgxscan.Get(ctx, QuerierFromCtx(ctx, r.db), &u, query, args...); err != nil {
		return nil, mapError(err, "user")
	}
	return &u, nil
}

// GetByID returns the user with the given id.
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query, args, err := psql.Select(userColumns).
		From("users").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var u domain.User
	if err := pgxscan.Get(ctx, QuerierFromCtx(ctx, r.db), &u, query, args...); err != nil {
		return nil, mapError(err, "user")
	}
	return &u, nil
}

// GetByGoogleID returns the user bound to the given Google subject.
func (r *UserRepository) GetByGoogleID(ctx context.Context, googleID string) (*domain.User, error) {
	query, args, err := psql.Select(userColumns).
		From("users").
		Where("google_id = ?", googleID).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var u domain.User
	if err := pgxscan.Get(ctx, QuerierFromCtx(ctx, r.db), &u, query, args...); err != nil {
		return nil, mapError(err, "user")
	}
	return &u, nil
}

// RefreshLoginProfile updates the name and avatar carried by the identity
// provider on each login and returns the stored row.
func (r *UserRepository) RefreshLoginProfile(ctx context.Context, id uuid.UUID, name, avatar string) (*domain.User, error) {
	query, args, err := psql.Update("users").
		Set("name", name).
		Set("avatar", avatar).
		Set("updated_at", nowExpr).
		Where("id = ?", id).
		Suffix("RETURNING " + userColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var u domain.User
	if err := pgxscan.Get(ctx, QuerierFromCtx(ctx, r.db), &u, query, args...); err != nil {
		return nil, mapError(err, "user")
	}
	return &u, nil
}

// UserProfileUpdate carries the user-editable profile fields. Nil pointers
// leave the column unchanged.
type UserProfileUpdate struct {
	Name *string
	Bio  *string
	Tags *[]string
}

// UpdateProfile applies a partial profile update and returns the stored row.
func (r *UserRepository) UpdateProfile(ctx context.Context, id uuid.UUID, p UserProfileUpdate) (*domain.User, error) {
	b := psql.Update("users").
		Set("updated_at", nowExpr).
		Where("id = ?", id).
		Suffix("RETURNING " + userColumns)

	if p.Name != nil {
		b = b.Set("name", *p.Name)
	}
	if p.Bio != nil {
		b = b.Set("bio", *p.Bio)
	}
	if p.Tags != nil {
		b = b.Set("tags", *p.Tags)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var u domain.User
	if err := pgxscan.Get(ctx, QuerierFromCtx(ctx, r.db), &u, query, args...); err != nil {
		return nil, mapError(err, "user")
	}
	return &u, nil
}

// List returns all users ranked by rating, best first.
func (r *UserRepository) List(ctx context.Context) ([]domain.UserSummary, error) {
	query, args, err := psql.Select("id", "name", "email", "avatar", "bio", "rating", "debates_participated", "tags", "created_at").
		From("users").
		OrderBy("rating DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	users := []domain.UserSummary{}
	if err := pgxscan.Select(ctx, QuerierFromCtx(ctx, r.db), &users, query, args...); err != nil {
		return nil, mapError(err, "users")
	}
	return users, nil
}
