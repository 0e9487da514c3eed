package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/bloodlink/coordination-api/internal/core/domain"
)

type PostRepository struct {
	mu    sync.RWMutex
	posts map[string]*domain.AwarenessPost
}

func NewPostRepository() *PostRepository {
	return &PostRepository{posts: make(map[string]*domain.AwarenessPost)}
}

func clonePost(p *domain.AwarenessPost) *domain.AwarenessPost {
	clone := *p
	clone.LikedBy = append([]string(nil), p.LikedBy...)
	return &clone
}

func (r *PostRepository) Create(_ context.Context, post *domain.AwarenessPost) (*domain.AwarenessPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := clonePost(post)
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	r.posts[stored.ID] = stored
	return clonePost(stored), nil
}

func (r *PostRepository) FindByID(_ context.Context, id string) (*domain.AwarenessPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	post, ok := r.posts[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	return clonePost(post), nil
}

func (r *PostRepository) List(_ context.Context) ([]*domain.AwarenessPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	posts := make([]*domain.AwarenessPost, 0, len(r.posts))
	for _, p := range r.posts {
		posts = append(posts, clonePost(p))
	}
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts, nil
}

func (r *PostRepository) Update(_ context.Context, post *domain.AwarenessPost) (*domain.AwarenessPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.posts[post.ID]; !ok {
		return nil, domain.ErrPostNotFound
	}
	r.posts[post.ID] = clonePost(post)
	return clonePost(post), nil
}

func (r *PostRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.posts[id]; !ok {
		return domain.ErrPostNotFound
	}
	delete(r.posts, id)
	return nil
}
