package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"people-api/internal/domains/people/model"
)

const (
	listPeopleQuery = `
        SELECT id, name, surname, age, created_at
        FROM people
        ORDER BY id
        LIMIT $1 OFFSET $2`

	getPersonQuery = `
        SELECT id, name, surname, age, created_at
        FROM people
        WHERE id = $1`

	insertPersonQuery = `
        INSERT INTO people (name, surname, age, created_at)
        VALUES ($1, $2, $3, $4)
        RETURNING id`

	updatePersonQuery = `
        UPDATE people
        SET name = $1, surname = $2, age = $3
        WHERE id = $4`

	deletePersonQuery = `DELETE FROM people WHERE id = $1`
)

type postgresRepository struct {
	db DBTX
}

// NewPostgresRepository creates a repository over db (usually the shared *pgxpool.Pool).
func NewPostgresRepository(db DBTX) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) WithTx(tx pgx.Tx) Repository {
	return &postgresRepository{db: tx}
}

func (r *postgresRepository) List(ctx context.Context, offset, limit int) ([]model.Person, error) {
	rows, err := r.db.Query(ctx, listPeopleQuery, limit, offset)
	if err != nil {
		return nil, translateError("list people", err)
	}
	defer rows.Close()

	people := []model.Person{}
	for rows.Next() {
		var p model.Person
		if err := rows.Scan(&p.ID, &p.Name, &p.Surname, &p.Age, &p.CreatedAt); err != nil {
			return nil, translateError("scan person", err)
		}
		people = append(people, p)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError("iterate people", err)
	}

	return people, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int32) (*model.Person, error) {
	var p model.Person
	err := r.db.QueryRow(ctx, getPersonQuery, id).Scan(
		&p.ID,
		&p.Name,
		&p.Surname,
		&p.Age,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, translateError("get person by id", err)
	}

	return &p, nil
}

func (r *postgresRepository) Insert(ctx context.Context, p *model.Person) (int32, error) {
	var id int32
	err := r.db.QueryRow(ctx, insertPersonQuery, p.Name, p.Surname, p.Age, p.CreatedAt).Scan(&id)
	if err != nil {
		return 0, translateError("insert person", err)
	}

	return id, nil
}

func (r *postgresRepository) Update(ctx context.Context, id int32, p *model.Person) (int64, error) {
	tag, err := r.db.Exec(ctx, updatePersonQuery, p.Name, p.Surname, p.Age, id)
	if err != nil {
		return 0, translateError("update person", err)
	}

	return tag.RowsAffected(), nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int32) (int64, error) {
	tag, err := r.db.Exec(ctx, deletePersonQuery, id)
	if err != nil {
		return 0, translateError("delete person", err)
	}

	return tag.RowsAffected(), nil
}
