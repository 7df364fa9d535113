package graph

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gqlblog/internal/common"
	"github.com/dmitrijs2005/gqlblog/internal/server/models"
	"github.com/dmitrijs2005/gqlblog/internal/server/services"
	graphql "github.com/graph-gophers/graphql-go"
)

type postResolver struct {
	root *Resolver
	p    *models.Post
}

func (p *postResolver) ID() graphql.ID     { return graphql.ID(p.p.ID) }
func (p *postResolver) Title() string      { return p.p.Title }
func (p *postResolver) Content() string    { return p.p.Content }
func (p *postResolver) UserID() graphql.ID { return graphql.ID(p.p.UserID) }

// Author is null once the referenced user is gone.
func (p *postResolver) Author(ctx context.Context) (*userResolver, error) {
	u, err := p.root.users.Get(ctx, p.p.UserID)
	if errors.Is(err, common.ErrorNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, p.root.fail(ctx, err)
	}
	return p.root.newUser(u), nil
}

func (r *Resolver) postList(posts []*models.Post) []*postResolver {
	out := make([]*postResolver, 0, len(posts))
	for _, p := range posts {
		out = append(out, r.newPost(p))
	}
	return out
}

func (r *Resolver) Post(ctx context.Context, args idArgs) (*postResolver, error) {
	p, err := r.posts.Get(ctx, string(args.ID))
	if errors.Is(err, common.ErrorNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return r.newPost(p), nil
}

func (r *Resolver) Posts(ctx context.Context) (*[]*postResolver, error) {
	posts, err := r.posts.List(ctx)
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	out := r.postList(posts)
	return &out, nil
}

type createPostArgs struct {
	Title   string
	Content string
	UserID  graphql.ID
}

func (r *Resolver) CreatePost(ctx context.Context, args createPostArgs) (*postResolver, error) {
	actor, err := r.actorID(ctx)
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	p, err := r.posts.Create(ctx, actor, services.CreatePostInput{
		Title:   args.Title,
		Content: args.Content,
		UserID:  string(args.UserID),
	})
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return r.newPost(p), nil
}

type updatePostArgs struct {
	ID      graphql.ID
	Title   *string
	Content *string
	UserID  *graphql.ID
}

func (r *Resolver) UpdatePost(ctx context.Context, args updatePostArgs) (*postResolver, error) {
	actor, err := r.actorID(ctx)
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	in := services.UpdatePostInput{Title: args.Title, Content: args.Content}
	if args.UserID != nil {
		userID := string(*args.UserID)
		in.UserID = &userID
	}
	p, err := r.posts.Update(ctx, actor, string(args.ID), in)
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return r.newPost(p), nil
}

func (r *Resolver) DeletePost(ctx context.Context, args idArgs) (*postResolver, error) {
	actor, err := r.actorID(ctx)
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	p, err := r.posts.Delete(ctx, actor, string(args.ID))
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return r.newPost(p), nil
}
