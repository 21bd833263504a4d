package service

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/maxviazov/studio-backoffice/internal/listquery"
)

// fromValidation turns listquery violations into field errors. Other errors are returned as is.
func fromValidation(err error) error {
	var ve *listquery.ValidationError
	if !errors.As(err, &ve) {
		return err
	}
	fe := make([]FieldError, 0, len(ve.Violations))
	for _, v := range ve.Violations {
		fe = append(fe, FieldError{Field: v.Key, Message: v.Message})
	}
	return NewInvalidInputError(fe...)
}

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, NewInvalidInputError(FieldError{Field: "id", Message: "must be a valid UUID"})
	}
	return id, nil
}
