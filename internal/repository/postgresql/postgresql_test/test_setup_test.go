package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/cmlabs-hris/hris-timekeeping-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-timekeeping-go/migrations"
)

// TestDatabaseSetup holds the shared integration database
type TestDatabaseSetup struct {
	DB *database.DB
}

var (
	setupOnce sync.Once
	shared    *TestDatabaseSetup
	setupErr  error
)

// NewTestDatabase connects to TEST_DATABASE_URL and applies the embedded migrations
func NewTestDatabase(ctx context.Context, dsn string) (*TestDatabaseSetup, error) {
	db, err := database.NewPostgreSQLDB(ctx, dsn, "Asia/Manila")
	if err != nil {
		return nil, fmt.Errorf("failed to connect to test database: %w", err)
	}

	runner, err := migrations.NewRunner(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	defer runner.Close()

	if _, err := runner.Up(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return &TestDatabaseSetup{DB: db}, nil
}

// requireDB skips the test unless TEST_DATABASE_URL points at a disposable database
func requireDB(t *testing.T) *TestDatabaseSetup {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	setupOnce.Do(func() {
		shared, setupErr = NewTestDatabase(context.Background(), dsn)
	})
	if setupErr != nil {
		t.Fatalf("test database: %v", setupErr)
	}

	if err := shared.TruncateAllTables(context.Background()); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	return shared
}

// TruncateAllTables removes all rows except the seeded salary grades
func (t *TestDatabaseSetup) TruncateAllTables(ctx context.Context) error {
	tx, err := t.DB.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tables := []string{
		"weekly_activities",
		"weekly_summaries",
		"employee_objectives",
		"messages",
		"faqs",
		"announcements",
		"attendance_records",
		"employees",
		"users",
		"revoked_tokens",
	}

	for _, table := range tables {
		_, err := tx.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		if err != nil {
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	return tx.Commit(ctx)
}

// Close closes the database connection
func (t *TestDatabaseSetup) Close() {
	t.DB.Close()
}
