package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/starmatchhq/starmatch/internal/store"
)

// PostgreSQL error codes.
const (
	pgUniqueViolationCode     = "23505"
	pgForeignKeyViolationCode = "23503"
)

// isUniqueViolation checks if the given error is a unique constraint
// violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode
}

// isForeignKeyViolation checks if the given error is a foreign key
// constraint violation.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolationCode
}

// mapError converts driver-level errors into the store error vocabulary.
// Absent rows become the entity-specific not-found sentinel; constraint
// violations and any other fault surface as the ErrStorage family, never
// as a raw driver error.
func mapError(entity, operation string, err, notFound error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return notFound
	case isUniqueViolation(err):
		return store.NewStoreError(entity, operation,
			fmt.Errorf("%w: %w", store.ErrDuplicate, err))
	case isForeignKeyViolation(err):
		return store.NewStoreError(entity, operation,
			fmt.Errorf("%w: foreign key violation: %w", store.ErrStorage, err))
	default:
		return store.NewStoreError(entity, operation,
			fmt.Errorf("%w: %w", store.ErrStorage, err))
	}
}
