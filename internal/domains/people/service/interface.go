package service

import (
	"context"

	"people-api/internal/domains/people/model"
)

// Service holds the per-operation contracts of the people resource.
type Service interface {
	// List returns one page of people projected to views. An empty page is not an error.
	List(ctx context.Context, page model.PageRequest) ([]model.PersonView, error)

	// Get returns a single person. Errors: ErrPersonNotFound
	Get(ctx context.Context, id int32) (*model.PersonView, error)

	// Create validates the view, stamps created_at with the server time and inserts
	// inside a transaction. The inbound id is ignored.
	// Errors: ErrInvalidInput, ErrDuplicatePerson
	Create(ctx context.Context, req model.PersonView) (int32, error)

	// Update checks existence first, then writes name/surname/age.
	// A row that vanishes between the check and the write is reported as not found.
	// Errors: ErrInvalidInput, ErrPersonNotFound
	Update(ctx context.Context, id int32, req model.PersonView) error

	// Delete physically removes the row. Errors: ErrPersonNotFound
	Delete(ctx context.Context, id int32) error
}
