package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/ecotracker/internal/dbx"
	"github.com/dmitrijs2005/ecotracker/internal/server/models"
	entriesrepo "github.com/dmitrijs2005/ecotracker/internal/server/repositories/entries"
	refreshtokensrepo "github.com/dmitrijs2005/ecotracker/internal/server/repositories/refreshtokens"
	usersrepo "github.com/dmitrijs2005/ecotracker/internal/server/repositories/users"
)

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

type fakeUsersRepo struct {
	createOut *models.User
	createErr error
	created   *models.User

	getOut *models.User
	getErr error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	f.created = u
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	u.ID = "new-id"
	return u, nil
}

func (f *fakeUsersRepo) GetUserByLogin(ctx context.Context, userName string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

type fakeRefreshRepo struct {
	findOut *models.RefreshToken
	findErr error
	finds   int
	// findAfterDelete is returned by Find once the token has been deleted.
	findAfterDelete error

	delErr    error
	deleted   []string
	createErr error
	created   []string

	expired int64
}

func (f *fakeRefreshRepo) Create(ctx context.Context, userID string, token string, validity time.Duration) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, token)
	return nil
}

func (f *fakeRefreshRepo) Find(ctx context.Context, token string) (*models.RefreshToken, error) {
	f.finds++
	if f.findErr != nil {
		return nil, f.findErr
	}
	if f.findAfterDelete != nil && len(f.deleted) > 0 {
		return nil, f.findAfterDelete
	}
	return f.findOut, nil
}

func (f *fakeRefreshRepo) Delete(ctx context.Context, token string) error {
	f.deleted = append(f.deleted, token)
	return f.delErr
}

func (f *fakeRefreshRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	return f.expired, f.delErr
}

type fakeEntriesRepo struct {
	created   []*models.Entry
	createErr error

	listOut    []*models.Entry
	listErr    error
	lastFilter entriesrepo.ListFilter
	lastUser   string
}

func (f *fakeEntriesRepo) Create(ctx context.Context, e *models.Entry) (*models.Entry, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	e.CreatedAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	f.created = append(f.created, e)
	return e, nil
}

func (f *fakeEntriesRepo) ListByUser(ctx context.Context, userID string, filter entriesrepo.ListFilter) ([]*models.Entry, error) {
	f.lastUser = userID
	f.lastFilter = filter
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	r *fakeRefreshRepo
	e *fakeEntriesRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error           { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository                 { return m.u }
func (m *fakeRepoManager) RefreshTokens(db dbx.DBTX) refreshtokensrepo.Repository { return m.r }
func (m *fakeRepoManager) Entries(db dbx.DBTX) entriesrepo.Repository             { return m.e }
