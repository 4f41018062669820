package store

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// postgresError returns the SQLSTATE code of err, or "" when err does not
// come from PostgreSQL.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// sqliteError returns the extended result code of err, or 0 when err does
// not come from SQLite.
func sqliteError(err error) sqlite3.ErrNoExtended {
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.ExtendedCode
	}

	return 0
}

// classifyWriteError maps constraint violations of both supported drivers to
// [ErrReferenceNotFound] and [ErrAlreadyExists]. Any other error is wrapped
// with fallback.
func classifyWriteError(err, fallback error) error {
	switch postgresError(err) {
	case pgerrcode.ForeignKeyViolation:
		return fmt.Errorf("%w: %w", ErrReferenceNotFound, err)
	case pgerrcode.UniqueViolation:
		return fmt.Errorf("%w: %w", ErrAlreadyExists, err)
	}

	switch sqliteError(err) {
	case sqlite3.ErrConstraintForeignKey:
		return fmt.Errorf("%w: %w", ErrReferenceNotFound, err)
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return fmt.Errorf("%w: %w", ErrAlreadyExists, err)
	}

	return fmt.Errorf("%w: %w", fallback, err)
}
