// Package sqlite is the embedded storage backend: the same collections as the
// Postgres one, served from a single database file through sqlx.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/maxviazov/studio-backoffice/internal/config"
	"github.com/maxviazov/studio-backoffice/internal/repository"
)

const driverName = "sqlite"

// Store owns the database handle behind every SQLite collection.
type Store struct {
	db *sqlx.DB
}

// DSN turns a file path into a modernc connection string with the pragmas every
// connection needs. Times are written as text with their own offset, and
// created_at sorts as that text, so writers must pass times through UTC.
func DSN(path string) string {
	return "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_time_format=sqlite"
}

// UTC prepares a timestamp for writing. Text of a single offset orders the same
// as the instants it encodes.
func UTC(t time.Time) time.Time {
	return t.UTC()
}

// Open creates the parent directory when needed, opens the file and pings it.
func Open(ctx context.Context, cfg config.SQLiteConfig, logger zerolog.Logger) (*Store, error) {
	if cfg.Path == "" {
		return nil, errors.New("sqlite path is required")
	}
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create sqlite directory: %w", err)
		}
	}

	db, err := sqlx.Open(driverName, DSN(cfg.Path))
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping sqlite: %w", err)
	}

	logger.Info().Str("path", cfg.Path).Msg("opened sqlite database")
	return &Store{db: db}, nil
}

// NewStore wraps an already open handle.
func NewStore(db *sqlx.DB) *Store { return &Store{db: db} }

func (s *Store) DB() *sqlx.DB { return s.db }

// SQLDB is the handle goose migrates through.
func (s *Store) SQLDB() *sql.DB { return s.db.DB }

func (s *Store) Ping(ctx context.Context) error {
	if err := ensureDB(s.db); err != nil {
		return err
	}
	return s.db.PingContext(ctx)
}

// WithinTx runs fn in one transaction; collections on this store join it through ctx.
func (s *Store) WithinTx(ctx context.Context, fn repository.TxFunc) error {
	if err := ensureDB(s.db); err != nil {
		return err
	}
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(withTx(ctx, tx)); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

var (
	_ repository.Pinger    = (*Store)(nil)
	_ repository.TxManager = (*Store)(nil)
)

type txKey struct{}

func withTx(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

func getQ(ctx context.Context, db *sqlx.DB) sqlx.QueryerContext {
	if tx, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok && tx != nil {
		return tx
	}
	return db
}

func ensureDB(db *sqlx.DB) error {
	if db == nil {
		return errors.New("sqlite handle is nil")
	}
	return nil
}
