// Package graph declares the blog schema: the User and Post types, the
// query and mutation entry points, and the resolvers that bind them to the
// services.
package graph

import (
	"context"

	"github.com/dmitrijs2005/gqlblog/internal/logging"
	"github.com/dmitrijs2005/gqlblog/internal/server/models"
	"github.com/dmitrijs2005/gqlblog/internal/server/services"
	"github.com/dmitrijs2005/gqlblog/internal/server/session"
)

type UserService interface {
	Get(ctx context.Context, id string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	Posts(ctx context.Context, userID string) ([]*models.Post, error)
	Create(ctx context.Context, in services.CreateUserInput) (*models.User, error)
	Update(ctx context.Context, id string, in services.UpdateUserInput) (*models.User, error)
	Delete(ctx context.Context, id string) (*models.User, error)
}

type PostService interface {
	Get(ctx context.Context, id string) (*models.Post, error)
	List(ctx context.Context) ([]*models.Post, error)
	Create(ctx context.Context, actorID string, in services.CreatePostInput) (*models.Post, error)
	Update(ctx context.Context, actorID, id string, in services.UpdatePostInput) (*models.Post, error)
	Delete(ctx context.Context, actorID, id string) (*models.Post, error)
	EnforcesOwnership() bool
}

type AuthService interface {
	Login(ctx context.Context, sess *session.Session, email, password string) (*models.User, error)
	CurrentUser(ctx context.Context, sess *session.Session) (*models.User, error)
	CurrentUserID(ctx context.Context, sess *session.Session) (string, error)
	Logout(ctx context.Context, sess *session.Session) (bool, error)
}

// Resolver is the root resolver: its methods serve both Query and Mutation
// fields. The session of the current request travels in the context
// (session.FromContext).
type Resolver struct {
	users  UserService
	posts  PostService
	auth   AuthService
	logger logging.Logger
}

func NewResolver(users UserService, posts PostService, auth AuthService, logger logging.Logger) *Resolver {
	return &Resolver{users: users, posts: posts, auth: auth, logger: logger.With("module", "graph")}
}

func currentSession(ctx context.Context) *session.Session {
	sess, _ := session.FromContext(ctx)
	return sess
}

// actorID is the session user when post ownership is enforced, else "".
func (r *Resolver) actorID(ctx context.Context) (string, error) {
	if !r.posts.EnforcesOwnership() {
		return "", nil
	}
	return r.auth.CurrentUserID(ctx, currentSession(ctx))
}

func (r *Resolver) newUser(u *models.User) *userResolver {
	if u == nil {
		return nil
	}
	return &userResolver{root: r, u: u}
}

func (r *Resolver) newPost(p *models.Post) *postResolver {
	if p == nil {
		return nil
	}
	return &postResolver{root: r, p: p}
}
