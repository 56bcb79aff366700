package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pressly/goose/v3"
)

type fakeMigrator struct {
	results []*goose.MigrationResult
	err     error
	calls   int
}

func (f *fakeMigrator) Up(ctx context.Context) ([]*goose.MigrationResult, error) {
	f.calls++
	return f.results, f.err
}

func withMigrator(t *testing.T, f *fakeMigrator, newErr error) *fs.FS {
	t.Helper()
	var seen fs.FS
	orig := newMigrator
	newMigrator = func(db *sql.DB, fsys fs.FS) (migrator, error) {
		seen = fsys
		if newErr != nil {
			return nil, newErr
		}
		return f, nil
	}
	t.Cleanup(func() { newMigrator = orig })
	return &seen
}

func TestPostgres_RepositoriesShareTheHandle(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	defer db.Close()

	var m RepositoryManager = NewPostgres()
	if m.Users(db) == nil || m.RefreshTokens(db) == nil || m.Entries(db) == nil {
		t.Fatal("nil repository")
	}

	mock.ExpectBegin()
	tx, err := db.Begin()
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	if m.Entries(tx) == nil {
		t.Fatal("Entries(tx) nil")
	}
	mock.ExpectRollback()
	_ = tx.Rollback()
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestRunMigrations_RecordsAppliedVersions(t *testing.T) {
	f := &fakeMigrator{results: []*goose.MigrationResult{
		{Source: &goose.Source{Version: 1}},
		{Source: &goose.Source{Version: 2}},
		{},
	}}
	seen := withMigrator(t, f, nil)

	m := NewPostgres()
	if err := m.RunMigrations(context.Background(), nil); err != nil {
		t.Fatalf("RunMigrations error: %v", err)
	}
	if f.calls != 1 {
		t.Fatalf("Up called %d times", f.calls)
	}
	if len(m.Applied) != 2 || m.Applied[0] != 1 || m.Applied[1] != 2 {
		t.Fatalf("unexpected applied versions: %v", m.Applied)
	}
	if _, err := fs.Stat(*seen, "00002_entries.sql"); err != nil {
		t.Fatalf("migrator did not get the embedded schema: %v", err)
	}

	f.results = nil
	if err := m.RunMigrations(context.Background(), nil); err != nil {
		t.Fatalf("RunMigrations error: %v", err)
	}
	if len(m.Applied) != 0 {
		t.Fatalf("an up-to-date schema applies nothing, got %v", m.Applied)
	}
}

func TestRunMigrations_Errors(t *testing.T) {
	boom := errors.New("boom")

	withMigrator(t, &fakeMigrator{}, boom)
	err := NewPostgres().RunMigrations(context.Background(), nil)
	if !errors.Is(err, boom) || err.Error() != "load migrations: boom" {
		t.Fatalf("want wrapped load error, got %v", err)
	}

	withMigrator(t, &fakeMigrator{err: boom}, nil)
	err = NewPostgres().RunMigrations(context.Background(), nil)
	if !errors.Is(err, boom) || err.Error() != "apply migrations: boom" {
		t.Fatalf("want wrapped apply error, got %v", err)
	}
}
