package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/chris/reservation-invoices/pkg/storage"
	"github.com/chris/reservation-invoices/pkg/storage/postgres/migrations"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// Store implements the InvoiceReader interface on top of PostgreSQL.
type Store struct {
	DB *sql.DB
}

// New creates a new Store around an existing connection pool.
func New(db *sql.DB) *Store {
	return &Store{DB: db}
}

// Open creates a pgx-backed connection pool for dsn and wraps it in a Store.
// The pool connects lazily, so Open does not fail when the database is down.
func Open(dsn string, maxOpenConns int) (*Store, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if maxOpenConns > 0 {
		db.SetMaxOpenConns(maxOpenConns)
		db.SetMaxIdleConns(maxOpenConns)
	}
	return New(db), nil
}

// Make sure we conform to the interface
var _ storage.InvoiceReader = (*Store)(nil)

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	return s.DB.Close()
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded schema. Only the local development server calls it;
// in production the schema belongs to the reservation system.
func (s *Store) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}
	if err := gooseUpContext(ctx, s.DB, "."); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
