package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	apperrors "justdebate.online/backend/internal/pkg/errors"
)

// PostgreSQL error codes that map to domain errors.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// mapError translates driver-level errors into domain sentinel errors so
// that callers never depend on pgx types. The entity name is included for
// log context.
func mapError(err error, entity string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", entity, apperrors.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%s: %w", entity, apperrors.ErrAlreadyExists)
		case pgForeignKeyViolation:
			// Referenced row is gone, surface as not found.
			return fmt.Errorf("%s: %w", entity, apperrors.ErrNotFound)
		}
	}

	return fmt.Errorf("%s: %w", entity, err)
}
