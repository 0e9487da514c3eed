package ports

import (
	"context"

	"github.com/bloodlink/coordination-api/internal/core/domain"
)

// CreatePostInput carries an authenticated author's new post.
type CreatePostInput struct {
	Title     string
	Content   string
	MediaURL  string
	MediaType string
}

// UpdatePostInput patches a post's editable fields. Nil means unchanged.
type UpdatePostInput struct {
	Title     *string
	Content   *string
	MediaURL  *string
	MediaType *string
}

// AwarenessService manages the public awareness feed. Reading is open;
// writing requires authentication, and edits are author-or-admin.
type AwarenessService interface {
	List(ctx context.Context) ([]*domain.AwarenessPost, error)
	Get(ctx context.Context, id string) (*domain.AwarenessPost, error)
	Create(ctx context.Context, identity domain.Identity, authorName string, in CreatePostInput) (*domain.AwarenessPost, error)
	Update(ctx context.Context, identity domain.Identity, id string, in UpdatePostInput) (*domain.AwarenessPost, error)
	Delete(ctx context.Context, identity domain.Identity, id string) error
	ToggleLike(ctx context.Context, identity domain.Identity, id string) (*domain.AwarenessPost, error)
}
