package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/bloodlink/coordination-api/internal/core/domain"
	"github.com/bloodlink/coordination-api/internal/core/ports"
)

type stubPostRepo struct {
	posts  map[string]*domain.AwarenessPost
	nextID int
}

func newStubPostRepo() *stubPostRepo {
	return &stubPostRepo{posts: make(map[string]*domain.AwarenessPost)}
}

func clonePost(p *domain.AwarenessPost) *domain.AwarenessPost {
	clone := *p
	clone.LikedBy = append([]string(nil), p.LikedBy...)
	return &clone
}

func (r *stubPostRepo) Create(_ context.Context, post *domain.AwarenessPost) (*domain.AwarenessPost, error) {
	clone := clonePost(post)
	r.nextID++
	clone.ID = "post-" + strconv.Itoa(r.nextID)
	r.posts[clone.ID] = clonePost(clone)
	return clone, nil
}

func (r *stubPostRepo) FindByID(_ context.Context, id string) (*domain.AwarenessPost, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	return clonePost(p), nil
}

func (r *stubPostRepo) List(_ context.Context) ([]*domain.AwarenessPost, error) {
	var out []*domain.AwarenessPost
	for _, p := range r.posts {
		out = append(out, clonePost(p))
	}
	return out, nil
}

func (r *stubPostRepo) Update(_ context.Context, post *domain.AwarenessPost) (*domain.AwarenessPost, error) {
	if _, ok := r.posts[post.ID]; !ok {
		return nil, domain.ErrPostNotFound
	}
	r.posts[post.ID] = clonePost(post)
	return clonePost(post), nil
}

func (r *stubPostRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.posts[id]; !ok {
		return domain.ErrPostNotFound
	}
	delete(r.posts, id)
	return nil
}

var (
	author    = domain.Identity{ID: "u1", Email: "author@example.com", Role: domain.RoleUser}
	stranger  = domain.Identity{ID: "u2", Email: "other@example.com", Role: domain.RoleUser}
	moderator = domain.Identity{ID: "u3", Email: "admin@example.com", Role: domain.RoleAdmin}
)

func createTestPost(t *testing.T, svc *AwarenessService) *domain.AwarenessPost {
	t.Helper()
	post, err := svc.Create(context.Background(), author, "Author Name", ports.CreatePostInput{
		Title:   "Why donate",
		Content: "Every donation can save up to three lives.",
	})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	return post
}

func TestAwarenessService_Create_Validation(t *testing.T) {
	svc := NewAwarenessService(newStubPostRepo())

	if _, err := svc.Create(context.Background(), author, "Author", ports.CreatePostInput{Title: "no content"}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if _, err := svc.Create(context.Background(), author, "Author", ports.CreatePostInput{
		Title:     "t",
		Content:   "c",
		MediaType: "audio",
	}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for bad media type, got %v", err)
	}
}

func TestAwarenessService_Update_AuthorOrAdmin(t *testing.T) {
	svc := NewAwarenessService(newStubPostRepo())
	post := createTestPost(t, svc)

	title := "Updated title"
	if _, err := svc.Update(context.Background(), stranger, post.ID, ports.UpdatePostInput{Title: &title}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for stranger, got %v", err)
	}

	updated, err := svc.Update(context.Background(), author, post.ID, ports.UpdatePostInput{Title: &title})
	if err != nil {
		t.Fatalf("author update failed: %v", err)
	}
	if updated.Title != "Updated title" {
		t.Fatalf("title not updated: %q", updated.Title)
	}

	adminTitle := "Moderated title"
	if _, err := svc.Update(context.Background(), moderator, post.ID, ports.UpdatePostInput{Title: &adminTitle}); err != nil {
		t.Fatalf("admin update failed: %v", err)
	}
}

func TestAwarenessService_Delete_AuthorOrAdmin(t *testing.T) {
	svc := NewAwarenessService(newStubPostRepo())
	post := createTestPost(t, svc)

	if err := svc.Delete(context.Background(), stranger, post.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for stranger, got %v", err)
	}
	if err := svc.Delete(context.Background(), moderator, post.ID); err != nil {
		t.Fatalf("admin delete failed: %v", err)
	}
	if _, err := svc.Get(context.Background(), post.ID); !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound after delete, got %v", err)
	}
}

func TestAwarenessService_ToggleLike(t *testing.T) {
	svc := NewAwarenessService(newStubPostRepo())
	post := createTestPost(t, svc)

	liked, err := svc.ToggleLike(context.Background(), stranger, post.ID)
	if err != nil {
		t.Fatalf("like failed: %v", err)
	}
	if liked.Likes != 1 || len(liked.LikedBy) != 1 {
		t.Fatalf("expected 1 like, got %d (%v)", liked.Likes, liked.LikedBy)
	}

	// Liking again toggles it off.
	unliked, err := svc.ToggleLike(context.Background(), stranger, post.ID)
	if err != nil {
		t.Fatalf("unlike failed: %v", err)
	}
	if unliked.Likes != 0 || len(unliked.LikedBy) != 0 {
		t.Fatalf("expected 0 likes after toggle, got %d (%v)", unliked.Likes, unliked.LikedBy)
	}
}
