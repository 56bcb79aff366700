package entries

import (
	"context"

	"github.com/dmitrijs2005/ecotracker/internal/server/models"
)

// ListFilter narrows ListByUser. Zero values mean "any category" and "no limit".
type ListFilter struct {
	Category string
	Limit    int
}

type Repository interface {
	Create(ctx context.Context, entry *models.Entry) (*models.Entry, error)
	ListByUser(ctx context.Context, userID string, filter ListFilter) ([]*models.Entry, error)
}
