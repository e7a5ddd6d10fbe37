package model

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// Business rule errors
	ErrPersonNotFound  = errors.New("person not found")
	ErrDuplicatePerson = errors.New("person already exists")

	// Validation errors
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidID    = fmt.Errorf("%w: id must be a 32-bit integer", ErrInvalidInput)

	// Any other store or transport failure
	ErrInternal = errors.New("internal error")
)

// ErrorKind is the closed set of outcomes a failed operation maps to.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindNotFound
	KindDuplicate
	KindValidation
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "NotFound"
	case KindDuplicate:
		return "DuplicateEntry"
	case KindValidation:
		return "ValidationError"
	default:
		return "InternalError"
	}
}

// NewValidationError marks err as a client input problem.
func NewValidationError(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidInput, err)
}

// KindOf classifies err. Anything not recognised is internal.
func KindOf(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrPersonNotFound):
		return KindNotFound
	case errors.Is(err, ErrDuplicatePerson):
		return KindDuplicate
	case errors.Is(err, ErrInvalidInput):
		return KindValidation
	default:
		return KindInternal
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return http.StatusNotFound
	case KindDuplicate, KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// IsClientError reports whether err is a correctable client condition ("fail" envelope)
// rather than an unexpected failure ("error" envelope).
func IsClientError(err error) bool {
	return KindOf(err) != KindInternal
}
