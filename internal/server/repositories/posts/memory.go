package posts

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/gqlblog/internal/common"
	"github.com/dmitrijs2005/gqlblog/internal/server/models"
	"github.com/google/uuid"
)

// MemoryRepository keeps posts in process memory, copying records across
// the API boundary.
type MemoryRepository struct {
	mu    sync.RWMutex
	posts map[string]*models.Post
	order []string
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{posts: make(map[string]*models.Post)}
}

func (r *MemoryRepository) Create(ctx context.Context, post *models.Post) (*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	p := *post
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now

	r.posts[p.ID] = &p
	r.order = append(r.order, p.ID)

	out := p
	return &out, nil
}

func (r *MemoryRepository) FindByID(ctx context.Context, id string) (*models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.posts[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := *p
	return &out, nil
}

func (r *MemoryRepository) FindMany(ctx context.Context, filter Filter) ([]*models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]*models.Post, 0, len(r.order))
	for _, id := range r.order {
		p := *r.posts[id]
		if filter.UserID != nil && p.UserID != *filter.UserID {
			continue
		}
		res = append(res, &p)
	}
	return res, nil
}

func (r *MemoryRepository) Update(ctx context.Context, id string, patch models.PostPatch) (*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.posts[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	patch.Apply(p)
	p.UpdatedAt = time.Now().UTC()

	out := *p
	return &out, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) (*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.posts[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	delete(r.posts, id)
	r.order = slices.DeleteFunc(r.order, func(s string) bool { return s == id })

	return p, nil
}
