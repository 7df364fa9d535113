// Package posts is the persistence gateway for Post records.
package posts

import (
	"context"

	"github.com/dmitrijs2005/gqlblog/internal/server/models"
)

// Filter narrows FindMany. The zero value matches every post.
type Filter struct {
	UserID *string
}

// Repository stores posts. Lookups, updates and deletes of absent ids
// return common.ErrorNotFound.
type Repository interface {
	Create(ctx context.Context, post *models.Post) (*models.Post, error)
	FindByID(ctx context.Context, id string) (*models.Post, error)
	FindMany(ctx context.Context, filter Filter) ([]*models.Post, error)
	Update(ctx context.Context, id string, patch models.PostPatch) (*models.Post, error)
	Delete(ctx context.Context, id string) (*models.Post, error)
}
