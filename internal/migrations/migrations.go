// Package migrations embeds the schema for every supported driver and applies it with goose.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"
	"strings"
	"sync"

	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
)

//go:embed postgres/*.sql sqlite/*.sql
var files embed.FS

// Dialect names the schema flavor; it doubles as the directory inside the embedded FS.
type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

func (d Dialect) goose() (string, error) {
	switch d {
	case Postgres:
		return "postgres", nil
	case SQLite:
		return "sqlite3", nil
	default:
		return "", fmt.Errorf("unsupported migration dialect %q", d)
	}
}

// goose keeps its dialect, base FS and logger in package globals.
var mu sync.Mutex

func prepare(d Dialect, logger zerolog.Logger) error {
	name, err := d.goose()
	if err != nil {
		return err
	}
	goose.SetBaseFS(files)
	goose.SetLogger(gooseLogger{log: logger.With().Str("component", "goose").Logger()})
	if err := goose.SetDialect(name); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	return nil
}

// Up applies all pending migrations.
func Up(db *sql.DB, d Dialect, logger zerolog.Logger) error {
	mu.Lock()
	defer mu.Unlock()
	if err := prepare(d, logger); err != nil {
		return err
	}
	if err := goose.Up(db, string(d)); err != nil {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}

// Down rolls back the most recent migration.
func Down(db *sql.DB, d Dialect, logger zerolog.Logger) error {
	mu.Lock()
	defer mu.Unlock()
	if err := prepare(d, logger); err != nil {
		return err
	}
	if err := goose.Down(db, string(d)); err != nil {
		return fmt.Errorf("migrate down: %w", err)
	}
	return nil
}

// Status prints the state of every migration through the logger.
func Status(db *sql.DB, d Dialect, logger zerolog.Logger) error {
	mu.Lock()
	defer mu.Unlock()
	if err := prepare(d, logger); err != nil {
		return err
	}
	if err := goose.Status(db, string(d)); err != nil {
		return fmt.Errorf("migrate status: %w", err)
	}
	return nil
}

// gooseLogger routes goose output into zerolog.
type gooseLogger struct {
	log zerolog.Logger
}

func (l gooseLogger) Printf(format string, v ...any) {
	l.log.Info().Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l gooseLogger) Fatalf(format string, v ...any) {
	l.log.Fatal().Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}
