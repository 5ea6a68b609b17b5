package repomanager

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/blogcrm/internal/migrations"
	"github.com/dmitrijs2005/blogcrm/internal/repositories/leads"
	"github.com/dmitrijs2005/blogcrm/internal/repositories/posts"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository
// implementations over the shared documents table and exposes a schema
// migration hook.
type PostgresRepositoryManager struct {
	db *sql.DB
}

// NewPostgresRepositoryManager opens a pgx connection pool for the DSN and
// returns a manager bound to it.
func NewPostgresRepositoryManager(dsn string) (*PostgresRepositoryManager, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	return &PostgresRepositoryManager{db: db}, nil
}

// Posts returns a posts.Repository over the documents table.
func (m *PostgresRepositoryManager) Posts() posts.Repository {
	return posts.NewPostgresRepository(m.db)
}

// Leads returns a leads.Repository over the documents table.
func (m *PostgresRepositoryManager) Leads() leads.Repository {
	return leads.NewPostgresRepository(m.db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the manager's database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, m.db, ".")
}

// Close releases the underlying connection pool.
func (m *PostgresRepositoryManager) Close() error {
	return m.db.Close()
}
