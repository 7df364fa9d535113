package graph

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gqlblog/internal/common"
	"github.com/dmitrijs2005/gqlblog/internal/server/models"
	"github.com/dmitrijs2005/gqlblog/internal/server/services"
	graphql "github.com/graph-gophers/graphql-go"
)

// userResolver serves the User type. The stored password hash has no
// method here and so cannot be selected.
type userResolver struct {
	root *Resolver
	u    *models.User
}

func (u *userResolver) ID() graphql.ID    { return graphql.ID(u.u.ID) }
func (u *userResolver) FirstName() string { return u.u.FirstName }
func (u *userResolver) LastName() string  { return u.u.LastName }
func (u *userResolver) Name() string      { return u.u.Name() }
func (u *userResolver) Email() string     { return u.u.Email }

func (u *userResolver) Posts(ctx context.Context) ([]*postResolver, error) {
	posts, err := u.root.users.Posts(ctx, u.u.ID)
	if err != nil {
		return nil, u.root.fail(ctx, err)
	}
	return u.root.postList(posts), nil
}

func (r *Resolver) userList(users []*models.User) []*userResolver {
	out := make([]*userResolver, 0, len(users))
	for _, u := range users {
		out = append(out, r.newUser(u))
	}
	return out
}

type idArgs struct {
	ID graphql.ID
}

func (r *Resolver) User(ctx context.Context, args idArgs) (*userResolver, error) {
	u, err := r.users.Get(ctx, string(args.ID))
	if errors.Is(err, common.ErrorNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return r.newUser(u), nil
}

func (r *Resolver) Users(ctx context.Context) (*[]*userResolver, error) {
	users, err := r.users.List(ctx)
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	out := r.userList(users)
	return &out, nil
}

func (r *Resolver) Me(ctx context.Context) (*userResolver, error) {
	u, err := r.auth.CurrentUser(ctx, currentSession(ctx))
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return r.newUser(u), nil
}

type createUserArgs struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

func (r *Resolver) CreateUser(ctx context.Context, args createUserArgs) (*userResolver, error) {
	u, err := r.users.Create(ctx, services.CreateUserInput{
		FirstName: args.FirstName,
		LastName:  args.LastName,
		Email:     args.Email,
		Password:  args.Password,
	})
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return r.newUser(u), nil
}

type updateUserArgs struct {
	ID        graphql.ID
	FirstName *string
	LastName  *string
	Email     *string
}

func (r *Resolver) UpdateUser(ctx context.Context, args updateUserArgs) (*userResolver, error) {
	u, err := r.users.Update(ctx, string(args.ID), services.UpdateUserInput{
		FirstName: args.FirstName,
		LastName:  args.LastName,
		Email:     args.Email,
	})
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return r.newUser(u), nil
}

func (r *Resolver) DeleteUser(ctx context.Context, args idArgs) (*userResolver, error) {
	u, err := r.users.Delete(ctx, string(args.ID))
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return r.newUser(u), nil
}

type loginArgs struct {
	Email    string
	Password string
}

// Login returns null for both an unknown email and a wrong password.
func (r *Resolver) Login(ctx context.Context, args loginArgs) (*userResolver, error) {
	u, err := r.auth.Login(ctx, currentSession(ctx), args.Email, args.Password)
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return r.newUser(u), nil
}

func (r *Resolver) Logout(ctx context.Context) (*bool, error) {
	ok, err := r.auth.Logout(ctx, currentSession(ctx))
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return &ok, nil
}
