// Package users stores EcoTracker accounts.
package users

import (
	"context"

	"github.com/dmitrijs2005/ecotracker/internal/server/models"
)

type Repository interface {
	// Create inserts user and returns it with ID and CreatedAt set. A taken
	// username yields common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetUserByLogin and GetByID return common.ErrorNotFound for unknown
	// accounts.
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}
