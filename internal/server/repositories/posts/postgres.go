package posts

import (
	"context"

	"github.com/dmitrijs2005/gqlblog/internal/dbx"
	"github.com/dmitrijs2005/gqlblog/internal/server/models"
)

const postColumns = `id, title, content, user_id, created_at, updated_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, post *models.Post) (*models.Post, error) {
	query :=
		`INSERT INTO posts (title, content, user_id)
         VALUES ($1, $2, $3)
		 RETURNING ` + postColumns

	created := &models.Post{}
	if err := r.db.GetContext(ctx, created, query, post.Title, post.Content, post.UserID); err != nil {
		return nil, dbx.MapError(err)
	}

	return created, nil
}

func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*models.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`

	post := &models.Post{}
	if err := r.db.GetContext(ctx, post, query, id); err != nil {
		return nil, dbx.MapError(err)
	}

	return post, nil
}

// FindMany returns posts in creation order, optionally only those of one
// author.
func (r *PostgresRepository) FindMany(ctx context.Context, filter Filter) ([]*models.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts`
	args := []any{}
	if filter.UserID != nil {
		query += ` WHERE user_id = $1`
		args = append(args, *filter.UserID)
	}
	query += ` ORDER BY created_at, id`

	posts := []*models.Post{}
	if err := r.db.SelectContext(ctx, &posts, query, args...); err != nil {
		return nil, dbx.MapError(err)
	}

	return posts, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id string, patch models.PostPatch) (*models.Post, error) {
	query :=
		`UPDATE posts SET
		   title      = COALESCE($2, title),
		   content    = COALESCE($3, content),
		   user_id    = COALESCE($4, user_id),
		   updated_at = now()
		 WHERE id = $1
		 RETURNING ` + postColumns

	post := &models.Post{}
	if err := r.db.GetContext(ctx, post, query, id, patch.Title, patch.Content, patch.UserID); err != nil {
		return nil, dbx.MapError(err)
	}

	return post, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) (*models.Post, error) {
	query := `DELETE FROM posts WHERE id = $1 RETURNING ` + postColumns

	post := &models.Post{}
	if err := r.db.GetContext(ctx, post, query, id); err != nil {
		return nil, dbx.MapError(err)
	}

	return post, nil
}
