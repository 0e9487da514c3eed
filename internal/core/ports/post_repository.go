package ports

import (
	"context"

	"github.com/bloodlink/coordination-api/internal/core/domain"
)

// PostRepository defines persistence for awareness posts.
type PostRepository interface {
	Create(ctx context.Context, post *domain.AwarenessPost) (*domain.AwarenessPost, error)
	FindByID(ctx context.Context, id string) (*domain.AwarenessPost, error)
	// List returns all posts, newest first.
	List(ctx context.Context) ([]*domain.AwarenessPost, error)
	Update(ctx context.Context, post *domain.AwarenessPost) (*domain.AwarenessPost, error)
	Delete(ctx context.Context, id string) error
}
