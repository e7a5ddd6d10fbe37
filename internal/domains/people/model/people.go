package model

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	MaxNameLength = 255
	MinAge        = 0
	MaxAge        = 150
)

// Person is the stored row of the people table.
// ID and CreatedAt are assigned once at insertion and never change.
type Person struct {
	ID        int32     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Surname   string    `json:"surname" db:"surname"`
	Age       int32     `json:"age" db:"age"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// PersonView is the transfer representation: Person without created_at.
// It is the request body for create/update (id is ignored there) and the response payload.
type PersonView struct {
	ID      int32  `json:"id" example:"1"`
	Name    string `json:"name" example:"Ann"`
	Surname string `json:"surname" example:"Lee"`
	Age     int32  `json:"age" example:"30"`
}

// ToView projects a Person onto its transfer representation.
func (p *Person) ToView() PersonView {
	return PersonView{
		ID:      p.ID,
		Name:    p.Name,
		Surname: p.Surname,
		Age:     p.Age,
	}
}

// ToViews projects a slice of persons. The result is never nil.
func ToViews(people []Person) []PersonView {
	views := make([]PersonView, 0, len(people))
	for i := range people {
		views = append(views, people[i].ToView())
	}
	return views
}

// Normalize trims name and surname in place.
func (v *PersonView) Normalize() {
	v.Name = strings.TrimSpace(v.Name)
	v.Surname = strings.TrimSpace(v.Surname)
}

// Validate checks the writable fields. The id is not validated, the store or the path owns it.
func (v PersonView) Validate() error {
	err := validation.ValidateStruct(&v,
		validation.Field(&v.Name,
			validation.Required.Error("name is required"),
			validation.RuneLength(1, MaxNameLength),
		),
		validation.Field(&v.Surname,
			validation.Required.Error("surname is required"),
			validation.RuneLength(1, MaxNameLength),
		),
		validation.Field(&v.Age,
			validation.Min(int32(MinAge)),
			validation.Max(int32(MaxAge)),
		),
	)
	if err != nil {
		return NewValidationError(err)
	}
	return nil
}

// ToPerson builds the record to insert or update, stamped with createdAt.
func (v PersonView) ToPerson(createdAt time.Time) *Person {
	return &Person{
		Name:      v.Name,
		Surname:   v.Surname,
		Age:       v.Age,
		CreatedAt: createdAt,
	}
}
