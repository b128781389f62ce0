// Package migrations embeds the SQL schema and applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/cmlabs-hris/hris-timekeeping-go/internal/pkg/database"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var FS embed.FS

// Runner owns a database/sql handle over the pgx pool for goose.
type Runner struct {
	sqlDB    *sql.DB
	provider *goose.Provider
}

func NewRunner(db *database.DB) (*Runner, error) {
	sqlDB := stdlib.OpenDBFromPool(db.Pool)
	provider, err := goose.NewProvider(goose.DialectPostgres, sqlDB, FS)
	if err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to create migration provider: %w", err)
	}
	return &Runner{sqlDB: sqlDB, provider: provider}, nil
}

// Up applies every pending migration.
func (r *Runner) Up(ctx context.Context) ([]*goose.MigrationResult, error) {
	results, err := r.provider.Up(ctx)
	if err != nil {
		return results, fmt.Errorf("failed to apply migrations: %w", err)
	}
	return results, nil
}

// Down rolls back the most recent migration.
func (r *Runner) Down(ctx context.Context) (*goose.MigrationResult, error) {
	result, err := r.provider.Down(ctx)
	if err != nil {
		return result, fmt.Errorf("failed to roll back migration: %w", err)
	}
	return result, nil
}

func (r *Runner) Status(ctx context.Context) ([]*goose.MigrationStatus, error) {
	return r.provider.Status(ctx)
}

// Close releases the sql handle; the underlying pool stays open.
func (r *Runner) Close() error {
	return r.sqlDB.Close()
}
