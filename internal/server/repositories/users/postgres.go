package users

import (
	"context"

	"github.com/dmitrijs2005/gqlblog/internal/dbx"
	"github.com/dmitrijs2005/gqlblog/internal/server/models"
)

const userColumns = `id, first_name, last_name, email, password, created_at, updated_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	query :=
		`INSERT INTO users (first_name, last_name, email, password)
         VALUES ($1, $2, $3, $4)
		 RETURNING ` + userColumns

	created := &models.User{}
	err := r.db.GetContext(ctx, created, query,
		user.FirstName, user.LastName, user.Email, user.Password)

	if err != nil {
		return nil, dbx.MapError(err)
	}

	return created, nil
}

func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user := &models.User{}
	if err := r.db.GetContext(ctx, user, query, id); err != nil {
		return nil, dbx.MapError(err)
	}

	return user, nil
}

func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user := &models.User{}
	if err := r.db.GetContext(ctx, user, query, email); err != nil {
		return nil, dbx.MapError(err)
	}

	return user, nil
}

func (r *PostgresRepository) FindMany(ctx context.Context) ([]*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at, id`

	users := []*models.User{}
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, dbx.MapError(err)
	}

	return users, nil
}

// Update sets only the patch fields that are non-nil.
func (r *PostgresRepository) Update(ctx context.Context, id string, patch models.UserPatch) (*models.User, error) {
	query :=
		`UPDATE users SET
		   first_name = COALESCE($2, first_name),
		   last_name  = COALESCE($3, last_name),
		   email      = COALESCE($4, email),
		   updated_at = now()
		 WHERE id = $1
		 RETURNING ` + userColumns

	user := &models.User{}
	err := r.db.GetContext(ctx, user, query, id, patch.FirstName, patch.LastName, patch.Email)
	if err != nil {
		return nil, dbx.MapError(err)
	}

	return user, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) (*models.User, error) {
	query := `DELETE FROM users WHERE id = $1 RETURNING ` + userColumns

	user := &models.User{}
	if err := r.db.GetContext(ctx, user, query, id); err != nil {
		return nil, dbx.MapError(err)
	}

	return user, nil
}
