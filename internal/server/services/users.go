// Package services contains the business logic behind the GraphQL
// operations: argument validation, password hashing and session identity,
// on top of the repositories.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gqlblog/internal/server/models"
	"github.com/dmitrijs2005/gqlblog/internal/server/repositories/posts"
	"github.com/dmitrijs2005/gqlblog/internal/server/repositories/users"
)

// PasswordHasher is satisfied by *auth.PasswordHasher.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

type CreateUserInput struct {
	FirstName string `json:"firstName" validate:"min=1,max=5"`
	LastName  string `json:"lastName" validate:"min=1,max=5"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
}

// UpdateUserInput is a partial update; nil fields are not validated and not
// written. There is no password update path.
type UpdateUserInput struct {
	FirstName *string `json:"firstName" validate:"omitnil,min=1,max=5"`
	LastName  *string `json:"lastName" validate:"omitnil,min=1,max=5"`
	Email     *string `json:"email" validate:"omitnil,email"`
}

// UserService implements the user operations.
type UserService struct {
	users    users.Repository
	posts    posts.Repository
	hasher   PasswordHasher
	validate *Validator
}

func NewUserService(users users.Repository, posts posts.Repository, hasher PasswordHasher, v *Validator) *UserService {
	return &UserService{users: users, posts: posts, hasher: hasher, validate: v}
}

// Get returns the user with id or common.ErrorNotFound.
func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error getting user: %w", err)
	}
	return u, nil
}

// List returns every user, unfiltered and unpaginated.
func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	list, err := s.users.FindMany(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	return list, nil
}

// Posts returns the posts whose userId is the given user id.
func (s *UserService) Posts(ctx context.Context, userID string) ([]*models.Post, error) {
	list, err := s.posts.FindMany(ctx, posts.Filter{UserID: &userID})
	if err != nil {
		return nil, fmt.Errorf("error listing user posts: %w", err)
	}
	return list, nil
}

// Create validates in, hashes the password and stores the user.
func (s *UserService) Create(ctx context.Context, in CreateUserInput) (*models.User, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	u, err := s.users.Create(ctx, &models.User{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Password:  hash,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// Update validates the provided fields and applies them to user id.
func (s *UserService) Update(ctx context.Context, id string, in UpdateUserInput) (*models.User, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, err
	}

	u, err := s.users.Update(ctx, id, models.UserPatch{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
	})
	if err != nil {
		return nil, fmt.Errorf("error updating user: %w", err)
	}
	return u, nil
}

// Delete removes user id and returns the deleted record.
func (s *UserService) Delete(ctx context.Context, id string) (*models.User, error) {
	u, err := s.users.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error deleting user: %w", err)
	}
	return u, nil
}
