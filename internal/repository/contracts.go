package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/maxviazov/studio-backoffice/internal/listquery"
)

// Pinger represents a minimal readiness probe capability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// TxFunc is the unit of work executed within a transaction boundary.
type TxFunc func(ctx context.Context) error

// TxManager runs fn inside one read-consistent transaction. Collections built on the
// same store pick the transaction up from ctx, so a page and its count see one snapshot.
type TxManager interface {
	WithinTx(ctx context.Context, fn TxFunc) error
}

// Collection is the read side of one back-office table. Find and Count share the
// filter semantics of listquery, GetByID returns ErrNotFound on a miss.
type Collection[T any] interface {
	listquery.Source[T]
	GetByID(ctx context.Context, id uuid.UUID) (T, error)
}
