package postgres

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/maxviazov/studio-backoffice/internal/repository"
)

// Store owns the pool behind every Postgres collection.
type Store struct {
	pool *pgxpool.Pool
	repository.TxManager
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool, TxManager: NewTxManager(pool)}
}

func (s *Store) Pool() *pgxpool.Pool { return s.pool }

// Ping adapts pgxpool to the repository.Pinger interface.
func (s *Store) Ping(ctx context.Context) error {
	if err := ensurePool(s.pool); err != nil {
		return err
	}
	return s.pool.Ping(ctx)
}

// SQLDB exposes the pool through database/sql for goose. Closing the returned
// handle does not close the pool.
func (s *Store) SQLDB() *sql.DB {
	return stdlib.OpenDBFromPool(s.pool)
}

func (s *Store) Close() error {
	if s.pool != nil {
		s.pool.Close()
	}
	return nil
}

var _ repository.Pinger = (*Store)(nil)
