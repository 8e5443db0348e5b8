// Package postgres implements the store.Repository contract over a
// PostgreSQL database accessed through database/sql with the pgx driver.
// A single generic repository type, parameterized by a per-entity column
// descriptor, builds all scalar SQL; collection-valued associations are
// handled by dedicated join-table repositories layered on top.
package postgres

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx database/sql driver
	"github.com/pressly/goose/v3"
	"github.com/starmatchhq/starmatch/internal/store"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Open connects to the database and verifies the connection with a ping.
// An unreachable database aborts initialization with ErrStorage rather
// than returning a half-usable handle.
func Open(ctx context.Context, databaseURL string, logger *slog.Logger) (*sql.DB, error) {
	if logger == nil {
		logger = slog.Default()
	}

	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: open database: %w", store.ErrStorage, err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: ping database: %w", store.ErrStorage, err)
	}

	logger.Info("database connection established")
	return db, nil
}

// Migrate applies all pending schema migrations, including the reference
// data seed (signs, traits, quotes).
func Migrate(db *sql.DB, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	goose.SetBaseFS(migrationsFS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("%w: set migration dialect: %w", store.ErrStorage, err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("%w: run migrations: %w", store.ErrStorage, err)
	}

	logger.Info("database migrations applied")
	return nil
}
