package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"people-api/internal/domains/people/model"
)

// PostgreSQL SQLSTATE for unique_violation.
const uniqueViolation = "23505"

// translateError classifies a driver error exactly once.
// Classification is on structured values (pgx.ErrNoRows, PgError.Code), never on message text.
func translateError(op string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return model.ErrPersonNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return model.ErrDuplicatePerson
	}

	return fmt.Errorf("%w: %s: %w", model.ErrInternal, op, err)
}
