// Package users is the persistence gateway for User records.
package users

import (
	"context"

	"github.com/dmitrijs2005/gqlblog/internal/server/models"
)

// Repository stores users. Lookups of absent ids or emails, and updates or
// deletes of absent ids, return common.ErrorNotFound. A duplicate email
// returns common.ErrorAlreadyExists.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindMany(ctx context.Context) ([]*models.User, error)
	Update(ctx context.Context, id string, patch models.UserPatch) (*models.User, error)
	Delete(ctx context.Context, id string) (*models.User, error)
}
