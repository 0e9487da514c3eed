package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bloodlink/coordination-api/internal/core/domain"
	"github.com/bloodlink/coordination-api/internal/core/ports"
)

// AwarenessService manages the public awareness feed. Reading is open;
// edits and deletes are restricted to the author or an admin.
type AwarenessService struct {
	repo ports.PostRepository
}

func NewAwarenessService(repo ports.PostRepository) *AwarenessService {
	return &AwarenessService{repo: repo}
}

func (s *AwarenessService) List(ctx context.Context) ([]*domain.AwarenessPost, error) {
	return s.repo.List(ctx)
}

func (s *AwarenessService) Get(ctx context.Context, id string) (*domain.AwarenessPost, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *AwarenessService) Create(ctx context.Context, identity domain.Identity, authorName string, in ports.CreatePostInput) (*domain.AwarenessPost, error) {
	if in.Title == "" || in.Content == "" {
		return nil, fmt.Errorf("%w: title and content are required", domain.ErrValidation)
	}
	if in.MediaType != "" && in.MediaType != domain.MediaImage && in.MediaType != domain.MediaVideo {
		return nil, fmt.Errorf("%w: mediaType must be image or video", domain.ErrValidation)
	}

	now := time.Now().UTC()
	post := &domain.AwarenessPost{
		Title:      in.Title,
		Content:    in.Content,
		MediaURL:   in.MediaURL,
		MediaType:  in.MediaType,
		AuthorID:   identity.ID,
		AuthorName: authorName,
		LikedBy:    []string{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return s.repo.Create(ctx, post)
}

func (s *AwarenessService) Update(ctx context.Context, identity domain.Identity, id string, in ports.UpdatePostInput) (*domain.AwarenessPost, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != identity.ID && !identity.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	if in.Title != nil {
		post.Title = *in.Title
	}
	if in.Content != nil {
		post.Content = *in.Content
	}
	if in.MediaURL != nil {
		post.MediaURL = *in.MediaURL
	}
	if in.MediaType != nil {
		post.MediaType = *in.MediaType
	}
	post.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, post)
}

func (s *AwarenessService) Delete(ctx context.Context, identity domain.Identity, id string) error {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if post.AuthorID != identity.ID && !identity.IsAdmin() {
		return domain.ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}

func (s *AwarenessService) ToggleLike(ctx context.Context, identity domain.Identity, id string) (*domain.AwarenessPost, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	post.ToggleLike(identity.ID)
	post.UpdatedAt = time.Now().UTC()
	return s.repo.Update(ctx, post)
}
