// Package repomanager hands out the server's PostgreSQL repositories, each
// bound to the pool or to an open transaction, and owns the schema.
package repomanager

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/dmitrijs2005/ecotracker/internal/dbx"
	"github.com/dmitrijs2005/ecotracker/internal/server/migrations"
	"github.com/dmitrijs2005/ecotracker/internal/server/repositories/entries"
	"github.com/dmitrijs2005/ecotracker/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/ecotracker/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// DriverName is the database/sql driver registered by pgx.
const DriverName = "pgx"

// RepositoryManager is what the services depend on. Passing a *sql.Tx as db
// makes every repository it returns part of that transaction.
type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Entries(db dbx.DBTX) entries.Repository
}

type migrator interface {
	Up(ctx context.Context) ([]*goose.MigrationResult, error)
}

// newMigrator is replaced in tests.
var newMigrator = func(db *sql.DB, fsys fs.FS) (migrator, error) {
	return goose.NewProvider(goose.DialectPostgres, db, fsys)
}

// Postgres is the pgx-backed RepositoryManager.
type Postgres struct {
	schema fs.FS

	// Applied lists the versions applied by the last RunMigrations call.
	Applied []int64
}

// NewPostgres returns a manager migrating with the embedded server schema.
func NewPostgres() *Postgres {
	return &Postgres{schema: migrations.Migrations}
}

func (m *Postgres) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *Postgres) RefreshTokens(db dbx.DBTX) refreshtokens.Repository {
	return refreshtokens.NewPostgresRepository(db)
}

func (m *Postgres) Entries(db dbx.DBTX) entries.Repository {
	return entries.NewPostgresRepository(db)
}

// RunMigrations brings the schema up to the newest embedded version.
func (m *Postgres) RunMigrations(ctx context.Context, db *sql.DB) error {
	p, err := newMigrator(db, m.schema)
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}
	results, err := p.Up(ctx)
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	m.Applied = m.Applied[:0]
	for _, r := range results {
		if r.Source != nil {
			m.Applied = append(m.Applied, r.Source.Version)
		}
	}
	return nil
}

// Open opens a pgx-backed *sql.DB and checks connectivity.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open(DriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	return db, nil
}
