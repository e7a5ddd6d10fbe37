package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"people-api/internal/domains/people/model"
)

// DBTX is the query surface shared by *pgxpool.Pool and pgx.Tx,
// so the same repository code runs on the pool or inside a transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repository is the data access surface for the people table.
// Every returned error is already classified: model.ErrPersonNotFound,
// model.ErrDuplicatePerson, or an error wrapping model.ErrInternal.
type Repository interface {
	// List returns at most limit rows in primary key order, skipping offset rows.
	List(ctx context.Context, offset, limit int) ([]model.Person, error)

	// GetByID returns ErrPersonNotFound when no row matches.
	GetByID(ctx context.Context, id int32) (*model.Person, error)

	// Insert stores name, surname, age and created_at and returns the assigned id.
	// Returns ErrDuplicatePerson on a uniqueness violation.
	Insert(ctx context.Context, p *model.Person) (int32, error)

	// Update changes name, surname and age. Zero rows affected means no such id.
	Update(ctx context.Context, id int32, p *model.Person) (int64, error)

	// Delete physically removes the row. Zero rows affected means no such id.
	Delete(ctx context.Context, id int32) (int64, error)

	// WithTx returns a repository bound to tx instead of the pool.
	WithTx(tx pgx.Tx) Repository
}
