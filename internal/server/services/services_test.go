package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gqlblog/internal/server/auth"
	"github.com/dmitrijs2005/gqlblog/internal/server/models"
	"github.com/dmitrijs2005/gqlblog/internal/server/repositories/posts"
	"github.com/dmitrijs2005/gqlblog/internal/server/repositories/users"
	"golang.org/x/crypto/bcrypt"
)

var errBoom = errors.New("boom")

func newHasher() *auth.PasswordHasher {
	return auth.NewPasswordHasherWithCost(bcrypt.MinCost)
}

func ptr[T any](v T) *T { return &v }

// failingUsers fails every call with errBoom.
type failingUsers struct{}

func (failingUsers) Create(context.Context, *models.User) (*models.User, error) { return nil, errBoom }
func (failingUsers) FindByID(context.Context, string) (*models.User, error)     { return nil, errBoom }
func (failingUsers) FindByEmail(context.Context, string) (*models.User, error)  { return nil, errBoom }
func (failingUsers) FindMany(context.Context) ([]*models.User, error)           { return nil, errBoom }
func (failingUsers) Update(context.Context, string, models.UserPatch) (*models.User, error) {
	return nil, errBoom
}
func (failingUsers) Delete(context.Context, string) (*models.User, error) { return nil, errBoom }

var _ users.Repository = failingUsers{}

// countingUsers records whether Create was reached.
type countingUsers struct {
	*users.MemoryRepository
	creates int
	updates int
}

func (c *countingUsers) Create(ctx context.Context, u *models.User) (*models.User, error) {
	c.creates++
	return c.MemoryRepository.Create(ctx, u)
}

func (c *countingUsers) Update(ctx context.Context, id string, p models.UserPatch) (*models.User, error) {
	c.updates++
	return c.MemoryRepository.Update(ctx, id, p)
}

func newUserService() (*UserService, *countingUsers, *posts.MemoryRepository) {
	repo := &countingUsers{MemoryRepository: users.NewMemoryRepository()}
	postRepo := posts.NewMemoryRepository()
	return NewUserService(repo, postRepo, newHasher(), NewValidator()), repo, postRepo
}
