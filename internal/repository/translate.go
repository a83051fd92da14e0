package repository

import (
	"database/sql"
	"errors"

	"github.com/rustnew/E-commerce-projet/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres SQLSTATE codes the translator recognizes.
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
)

// translateError maps a storage failure onto the closed application error
// taxonomy. Every repository method routes its failures through here, so a
// raw driver error never crosses the repository boundary:
//
//   - foreign-key violation  -> Validation (dangling reference)
//   - check violation        -> Validation (domain rule)
//   - unique violation       -> Conflict
//   - no matching row        -> NotFound
//   - anything else          -> Internal (cause wrapped for logging only)
func translateError(entity string, err error) error {
	if err == nil {
		return nil
	}

	var appErr *domain.Error
	if errors.As(err, &appErr) {
		return err
	}

	if errors.Is(err, sql.ErrNoRows) {
		return domain.NewNotFound(entity)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation:
			return domain.NewValidation("", entity+" references a nonexistent row")
		case pgCheckViolation:
			return domain.NewValidation("", entity+" violates constraint "+pgErr.ConstraintName)
		case pgUniqueViolation:
			return domain.NewConflict(entity + " already exists")
		}
	}

	return domain.NewInternal(err)
}
