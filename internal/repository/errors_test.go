package repository_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/maxviazov/studio-backoffice/internal/repository"
)

func TestMapPgError(t *testing.T) {
	tests := []struct {
		name string
		code string
		want error
	}{
		{"unique", pgerrcode.UniqueViolation, repository.ErrAlreadyExists},
		{"foreign key", pgerrcode.ForeignKeyViolation, repository.ErrConflict},
		{"serialization", pgerrcode.SerializationFailure, repository.ErrConflict},
		{"connection", pgerrcode.ConnectionFailure, repository.ErrUnavailable},
		{"too many connections", pgerrcode.TooManyConnections, repository.ErrUnavailable},
		{"bad uuid text", pgerrcode.InvalidTextRepresentation, repository.ErrBadQuery},
		{"missing table", pgerrcode.UndefinedTable, repository.ErrBadQuery},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pgErr := &pgconn.PgError{Code: tt.code}
			err := repository.MapPgError(fmt.Errorf("query: %w", pgErr))
			assert.ErrorIs(t, err, tt.want)

			var got *pgconn.PgError
			assert.True(t, errors.As(err, &got), "original error must stay reachable")
		})
	}
}

func TestMapPgError_PassThrough(t *testing.T) {
	assert.NoError(t, repository.MapPgError(nil))

	plain := errors.New("boom")
	assert.Same(t, plain, repository.MapPgError(plain))

	unmapped := &pgconn.PgError{Code: pgerrcode.DivisionByZero}
	assert.Same(t, unmapped, repository.MapPgError(unmapped))
}
