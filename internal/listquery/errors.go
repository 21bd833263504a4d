package listquery

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidParams marks a request whose filter values break their constraints.
	ErrInvalidParams = errors.New("invalid list parameters")
	// ErrRetrievalFailed wraps every failure of the underlying source.
	ErrRetrievalFailed = errors.New("retrieval failed")
)

// Violation is a single rejected parameter.
type Violation struct {
	Key     string
	Message string
}

// ValidationError aggregates violations and unwraps to ErrInvalidParams.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Key+": "+v.Message)
	}
	return ErrInvalidParams.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalidParams }
