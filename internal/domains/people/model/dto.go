package model

import (
	"math"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// PageRequest is the 1-based pagination input of the list operation.
type PageRequest struct {
	Page  int
	Limit int
}

// NewPageRequest clamps raw query values so that offset and limit are never negative.
func NewPageRequest(page, limit int) PageRequest {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	// keeps (page-1)*limit from overflowing
	if maxPage := math.MaxInt / limit; page > maxPage {
		page = maxPage
	}
	return PageRequest{Page: page, Limit: limit}
}

// Offset is (page - 1) * limit.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// PersonRequest is the create/update body. Age is a pointer so that an omitted
// age is rejected instead of decoding to 0.
type PersonRequest struct {
	ID      int32  `json:"id" example:"1"`
	Name    string `json:"name" example:"Ann"`
	Surname string `json:"surname" example:"Lee"`
	Age     *int32 `json:"age" example:"30"`
}

// ToView checks that every field was supplied and copies the body into a PersonView.
// Range and length rules stay in PersonView.Validate.
func (r PersonRequest) ToView() (PersonView, error) {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Age, validation.NotNil.Error("age is required")),
	)
	if err != nil {
		return PersonView{}, NewValidationError(err)
	}

	return PersonView{
		ID:      r.ID,
		Name:    r.Name,
		Surname: r.Surname,
		Age:     *r.Age,
	}, nil
}

// GetPersonResponse is the data payload of GET /people/{id}.
type GetPersonResponse struct {
	People PersonView `json:"people"`
}

// ListPeopleResponse documents the body of GET /people.
type ListPeopleResponse struct {
	Status  string       `json:"status" example:"success"`
	Results int          `json:"results" example:"1"`
	Peoples []PersonView `json:"peoples"`
}
