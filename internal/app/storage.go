package app

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/maxviazov/studio-backoffice/internal/config"
	"github.com/maxviazov/studio-backoffice/internal/migrations"
	"github.com/maxviazov/studio-backoffice/internal/repository"
	"github.com/maxviazov/studio-backoffice/internal/repository/postgres"
	"github.com/maxviazov/studio-backoffice/internal/repository/sqlite"
	"github.com/maxviazov/studio-backoffice/internal/resource"
)

// Storage is the configured backend. Exactly one of pg and lite is set.
type Storage struct {
	pg          *postgres.Store
	lite        *sqlite.Store
	dialect     migrations.Dialect
	autoMigrate bool
}

// OpenStorage connects to the backend named by cfg.Storage.Driver.
func OpenStorage(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*Storage, error) {
	l := logger.With().Str("module", "storage").Str("driver", cfg.Storage.Driver).Logger()
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		pool, err := repository.OpenPostgres(ctx, cfg.Postgres, l)
		if err != nil {
			return nil, err
		}
		return &Storage{
			pg:          postgres.NewStore(pool),
			dialect:     migrations.Postgres,
			autoMigrate: cfg.Postgres.AutoMigrate,
		}, nil
	case config.DriverSQLite:
		store, err := sqlite.Open(ctx, cfg.SQLite, l)
		if err != nil {
			return nil, err
		}
		return &Storage{
			lite:        store,
			dialect:     migrations.SQLite,
			autoMigrate: cfg.SQLite.AutoMigrate,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Storage.Driver)
	}
}

func (s *Storage) Ping(ctx context.Context) error {
	if s.pg != nil {
		return s.pg.Ping(ctx)
	}
	return s.lite.Ping(ctx)
}

// TxManager returns the snapshot transaction runner of the backend.
func (s *Storage) TxManager() repository.TxManager {
	if s.pg != nil {
		return s.pg
	}
	return s.lite
}

func (s *Storage) Dialect() migrations.Dialect { return s.dialect }

// Migrate applies, rolls back or reports migrations through the backend's database/sql handle.
func (s *Storage) Migrate(direction string, logger zerolog.Logger) error {
	db := s.sqlDB()
	if s.pg != nil {
		// the stdlib wrapper over the pool is ours to close
		defer db.Close()
	}
	switch direction {
	case "up":
		return migrations.Up(db, s.dialect, logger)
	case "down":
		return migrations.Down(db, s.dialect, logger)
	case "status":
		return migrations.Status(db, s.dialect, logger)
	default:
		return fmt.Errorf("unknown migration direction %q", direction)
	}
}

func (s *Storage) sqlDB() *sql.DB {
	if s.pg != nil {
		return s.pg.SQLDB()
	}
	return s.lite.SQLDB()
}

func (s *Storage) Close() error {
	if s.pg != nil {
		return s.pg.Close()
	}
	return s.lite.Close()
}

// collectionFor picks the backend implementation of a resource's collection.
func collectionFor[T any](s *Storage, def resource.Definition) repository.Collection[T] {
	if s.pg != nil {
		return postgres.NewCollection[T](s.pg.Pool(), def)
	}
	return sqlite.NewCollection[T](s.lite.DB(), def)
}
