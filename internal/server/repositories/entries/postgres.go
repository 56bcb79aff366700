// Package entries provides a PostgreSQL-backed repository for logged
// activity entries.
package entries

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/ecotracker/internal/dbx"
	"github.com/dmitrijs2005/ecotracker/internal/server/models"
)

// PostgresRepository implements entry storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts the entry and fills CreatedAt from the database.
func (r *PostgresRepository) Create(ctx context.Context, entry *models.Entry) (*models.Entry, error) {
	query := `
		INSERT INTO entries (id, user_id, category, occurred_at, co2_emissions, co2_offset, eco_points, details)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		entry.ID, entry.UserID, entry.Category, entry.OccurredAt,
		entry.CO2Emissions, entry.CO2Offset, entry.EcoPoints, entry.Details,
	).Scan(&entry.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return entry, nil
}

// ListByUser returns the user's entries, newest first.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string, filter ListFilter) ([]*models.Entry, error) {
	var b strings.Builder
	b.WriteString(`SELECT id, user_id, category, occurred_at, co2_emissions, co2_offset, eco_points, details, created_at
		FROM entries WHERE user_id = $1`)
	args := []any{userID}

	if filter.Category != "" {
		args = append(args, filter.Category)
		fmt.Fprintf(&b, " AND category = $%d", len(args))
	}
	b.WriteString(" ORDER BY occurred_at DESC, created_at DESC")
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		fmt.Fprintf(&b, " LIMIT $%d", len(args))
	}

	rows, err := r.db.QueryContext(ctx, b.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select entries: %w", err)
	}
	defer rows.Close()

	var result []*models.Entry
	for rows.Next() {
		var item models.Entry
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.Category, &item.OccurredAt,
			&item.CO2Emissions, &item.CO2Offset, &item.EcoPoints, &item.Details, &item.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
