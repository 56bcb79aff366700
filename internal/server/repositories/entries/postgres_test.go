package entries

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/ecotracker/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

var entryColumns = []string{
	"id", "user_id", "category", "occurred_at", "co2_emissions", "co2_offset", "eco_points", "details", "created_at",
}

const insertQuery = `(?s)^INSERT\s+INTO\s+entries\s*\(id,\s*user_id,\s*category,\s*occurred_at,\s*co2_emissions,\s*co2_offset,\s*eco_points,\s*details\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5,\s*\$6,\s*\$7,\s*\$8\)\s*RETURNING\s+created_at\s*$`

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	occurred := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	created := occurred.Add(time.Minute)
	details := []byte(`{"distance":100,"fuelType":"petrol","fuelConsumed":8}`)

	mock.ExpectQuery(insertQuery).
		WithArgs("e1", "u1", "vehicle", occurred, 18.48, 0.0, 0, details).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(created))

	got, err := repo.Create(context.Background(), &models.Entry{
		ID:           "e1",
		UserID:       "u1",
		Category:     "vehicle",
		OccurredAt:   occurred,
		CO2Emissions: 18.48,
		Details:      details,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.CreatedAt.Equal(created) {
		t.Fatalf("created_at not filled: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQuery).
		WillReturnError(errors.New("db is down"))

	_, err := repo.Create(context.Background(), &models.Entry{ID: "e1", UserID: "u1", Category: "plastic"})
	if err == nil || !regexp.MustCompile(`db error: .*db is down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestListByUser_AllCategories(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)FROM entries WHERE user_id = \$1 ORDER BY occurred_at DESC, created_at DESC$`
	now := time.Now()

	rows := sqlmock.NewRows(entryColumns).
		AddRow("e2", "u1", "plantation", now, 0.0, 22.0, 10, []byte(`{"treesPlanted":1}`), now).
		AddRow("e1", "u1", "vehicle", now.Add(-time.Hour), 18.48, 0.0, 0, []byte(`{}`), now)

	mock.ExpectQuery(q).WithArgs("u1").WillReturnRows(rows)

	got, err := repo.ListByUser(context.Background(), "u1", ListFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 rows, got %d", len(got))
	}
	if got[0].ID != "e2" || got[0].CO2Offset != 22 || got[0].EcoPoints != 10 {
		t.Fatalf("unexpected first row: %+v", got[0])
	}
	if got[1].Category != "vehicle" || got[1].CO2Emissions != 18.48 {
		t.Fatalf("unexpected second row: %+v", got[1])
	}
}

func TestListByUser_CategoryAndLimit(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)WHERE user_id = \$1 AND category = \$2 ORDER BY occurred_at DESC, created_at DESC LIMIT \$3$`

	mock.ExpectQuery(q).
		WithArgs("u1", "energy", 5).
		WillReturnRows(sqlmock.NewRows(entryColumns))

	got, err := repo.ListByUser(context.Background(), "u1", ListFilter{Category: "energy", Limit: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("want no rows, got %d", len(got))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListByUser_LimitOnly(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)WHERE user_id = \$1 ORDER BY occurred_at DESC, created_at DESC LIMIT \$2$`

	mock.ExpectQuery(q).
		WithArgs("u1", 5).
		WillReturnRows(sqlmock.NewRows(entryColumns))

	if _, err := repo.ListByUser(context.Background(), "u1", ListFilter{Limit: 5}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestListByUser_QueryError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM entries`).
		WithArgs("u1").
		WillReturnError(errors.New("db err"))

	_, err := repo.ListByUser(context.Background(), "u1", ListFilter{})
	if err == nil || !regexp.MustCompile(`failed to select entries: .*db err`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped select error, got %v", err)
	}
}

func TestListByUser_ScanRowError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows(entryColumns).
		AddRow("e1", "u1", "vehicle", time.Now(), "lots", 0.0, 0, []byte(`{}`), time.Now())

	mock.ExpectQuery(`FROM entries`).WithArgs("u1").WillReturnRows(rows)

	if _, err := repo.ListByUser(context.Background(), "u1", ListFilter{}); err == nil {
		t.Fatalf("expected scan error, got nil")
	}
}

func TestListByUser_RowsErr(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(entryColumns).
		AddRow("e1", "u1", "vehicle", now, 1.0, 0.0, 0, []byte(`{}`), now).
		AddRow("e2", "u1", "vehicle", now, 2.0, 0.0, 0, []byte(`{}`), now).
		RowError(1, errors.New("row-err"))

	mock.ExpectQuery(`FROM entries`).WithArgs("u1").WillReturnRows(rows)

	_, err := repo.ListByUser(context.Background(), "u1", ListFilter{})
	if err == nil || err.Error() != "row-err" {
		t.Fatalf("expected rows.Err 'row-err', got %v", err)
	}
}
