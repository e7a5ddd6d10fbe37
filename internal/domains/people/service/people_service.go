package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"people-api/internal/domains/people/model"
	"people-api/internal/domains/people/repository"
	"people-api/pkg/database"
)

type peopleService struct {
	repo repository.Repository
	db   database.TxBeginner // used only for the create transaction
	now  func() time.Time
}

// NewPeopleService wires the service to its repository and the pool used for transactions.
func NewPeopleService(repo repository.Repository, db database.TxBeginner) Service {
	return &peopleService{
		repo: repo,
		db:   db,
		now:  time.Now,
	}
}

func (s *peopleService) List(ctx context.Context, page model.PageRequest) ([]model.PersonView, error) {
	page = model.NewPageRequest(page.Page, page.Limit)

	people, err := s.repo.List(ctx, page.Offset(), page.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list people: %w", err)
	}

	return model.ToViews(people), nil
}

func (s *peopleService) Get(ctx context.Context, id int32) (*model.PersonView, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	view := p.ToView()
	return &view, nil
}

func (s *peopleService) Create(ctx context.Context, req model.PersonView) (int32, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return 0, err
	}

	person := req.ToPerson(s.now().UTC())

	// The transaction spans the single insert; a failed insert is rolled back before the error surfaces.
	id, err := database.WithTransactionResult(ctx, s.db, func(tx pgx.Tx) (int32, error) {
		return s.repo.WithTx(tx).Insert(ctx, person)
	})
	if err != nil {
		return 0, s.classify("failed to create person", err)
	}

	return id, nil
}

func (s *peopleService) Update(ctx context.Context, id int32, req model.PersonView) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	req.Normalize()
	if err := req.Validate(); err != nil {
		return err
	}

	// Not atomic with the check above: a concurrent delete shows up as zero rows affected.
	affected, err := s.repo.Update(ctx, id, req.ToPerson(time.Time{}))
	if err != nil {
		return fmt.Errorf("failed to update person: %w", err)
	}
	if affected == 0 {
		return model.ErrPersonNotFound
	}

	return nil
}

func (s *peopleService) Delete(ctx context.Context, id int32) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete person: %w", err)
	}
	if affected == 0 {
		return model.ErrPersonNotFound
	}

	return nil
}

// classify keeps repository classifications and marks transaction plumbing
// failures (begin/commit) as internal.
func (s *peopleService) classify(msg string, err error) error {
	if model.IsClientError(err) || errors.Is(err, model.ErrInternal) {
		return fmt.Errorf("%s: %w", msg, err)
	}
	return fmt.Errorf("%s: %w: %w", msg, model.ErrInternal, err)
}
