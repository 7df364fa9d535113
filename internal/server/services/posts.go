package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gqlblog/internal/common"
	"github.com/dmitrijs2005/gqlblog/internal/server/models"
	"github.com/dmitrijs2005/gqlblog/internal/server/repositories/posts"
)

type CreatePostInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	UserID  string `json:"userId" validate:"required"`
}

type UpdatePostInput struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	UserID  *string `json:"userId" validate:"omitnil,min=1"`
}

// PostService implements the post operations. With ownership enforcement
// off, userId is a plain argument and any caller may write any post.
type PostService struct {
	posts            posts.Repository
	validate         *Validator
	enforceOwnership bool
}

func NewPostService(posts posts.Repository, v *Validator, enforceOwnership bool) *PostService {
	return &PostService{posts: posts, validate: v, enforceOwnership: enforceOwnership}
}

// EnforcesOwnership reports whether mutations need the acting user id.
func (s *PostService) EnforcesOwnership() bool {
	return s.enforceOwnership
}

// Get returns the post with id or common.ErrorNotFound.
func (s *PostService) Get(ctx context.Context, id string) (*models.Post, error) {
	p, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error getting post: %w", err)
	}
	return p, nil
}

// List returns every post, unfiltered.
func (s *PostService) List(ctx context.Context) ([]*models.Post, error) {
	list, err := s.posts.FindMany(ctx, posts.Filter{})
	if err != nil {
		return nil, fmt.Errorf("error listing posts: %w", err)
	}
	return list, nil
}

// Create stores a post. actorID is the session user and only matters when
// ownership is enforced.
func (s *PostService) Create(ctx context.Context, actorID string, in CreatePostInput) (*models.Post, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, err
	}
	if err := s.authorize(actorID, in.UserID); err != nil {
		return nil, err
	}

	p, err := s.posts.Create(ctx, &models.Post{Title: in.Title, Content: in.Content, UserID: in.UserID})
	if err != nil {
		return nil, fmt.Errorf("error creating post: %w", err)
	}
	return p, nil
}

func (s *PostService) Update(ctx context.Context, actorID, id string, in UpdatePostInput) (*models.Post, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, err
	}
	if s.enforceOwnership {
		if err := s.authorizeExisting(ctx, actorID, id); err != nil {
			return nil, err
		}
		if in.UserID != nil {
			if err := s.authorize(actorID, *in.UserID); err != nil {
				return nil, err
			}
		}
	}

	p, err := s.posts.Update(ctx, id, models.PostPatch{Title: in.Title, Content: in.Content, UserID: in.UserID})
	if err != nil {
		return nil, fmt.Errorf("error updating post: %w", err)
	}
	return p, nil
}

func (s *PostService) Delete(ctx context.Context, actorID, id string) (*models.Post, error) {
	if s.enforceOwnership {
		if err := s.authorizeExisting(ctx, actorID, id); err != nil {
			return nil, err
		}
	}

	p, err := s.posts.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error deleting post: %w", err)
	}
	return p, nil
}

func (s *PostService) authorize(actorID, ownerID string) error {
	if !s.enforceOwnership {
		return nil
	}
	if actorID == "" {
		return common.ErrorUnauthorized
	}
	if actorID != ownerID {
		return common.ErrorForbidden
	}
	return nil
}

func (s *PostService) authorizeExisting(ctx context.Context, actorID, id string) error {
	if actorID == "" {
		return common.ErrorUnauthorized
	}
	p, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("error getting post: %w", err)
	}
	return s.authorize(actorID, p.UserID)
}
