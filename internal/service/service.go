// Package service holds the read use cases behind every back-office endpoint.
// Kept intentionally lean: parameter normalization, orchestration and domain error shaping.
package service

import (
	"context"
	"errors"

	"github.com/maxviazov/studio-backoffice/internal/listquery"
	"github.com/maxviazov/studio-backoffice/internal/repository"
)

// ErrInvalidInput is the marker error for aggregated validation failures (maps to HTTP 400).
// Field-level details are retrieved via FieldErrors(err).
var ErrInvalidInput = errors.New("invalid input")

// ErrRetrievalFailed marks a list or lookup the store could not serve (maps to HTTP 500).
// The cause stays in the chain for logs only.
var ErrRetrievalFailed = listquery.ErrRetrievalFailed

// ErrNotFound is returned by Get when no record has the id.
var ErrNotFound = repository.ErrNotFound

// FieldError describes a single invalid field in a client request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// invalidInputError aggregates multiple FieldError instances and unwraps to ErrInvalidInput.
type invalidInputError struct {
	fields []FieldError
}

func (e *invalidInputError) Error() string        { return ErrInvalidInput.Error() }
func (e *invalidInputError) Unwrap() error        { return ErrInvalidInput }
func (e *invalidInputError) Fields() []FieldError { return e.fields }

// NewInvalidInputError builds an aggregated validation error, or nil when fe is empty.
func NewInvalidInputError(fe ...FieldError) error {
	if len(fe) == 0 {
		return nil
	}
	return &invalidInputError{fields: fe}
}

// FieldErrors extracts field errors from an aggregated validation error.
func FieldErrors(err error) []FieldError {
	var ie *invalidInputError
	if errors.As(err, &ie) {
		return ie.Fields()
	}
	return nil
}

// Lister is the read use case shared by every back-office resource.
type Lister[T any] interface {
	// List returns one page of records matching the allow-listed filters in params.
	List(ctx context.Context, params listquery.Params) (listquery.Result[T], error)
	// Get returns the record with the given id.
	Get(ctx context.Context, id string) (T, error)
}
