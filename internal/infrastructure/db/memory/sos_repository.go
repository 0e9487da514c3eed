package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/bloodlink/coordination-api/internal/core/domain"
)

type SOSRepository struct {
	mu       sync.RWMutex
	requests map[string]*domain.SOSRequest
}

func NewSOSRepository() *SOSRepository {
	return &SOSRepository{requests: make(map[string]*domain.SOSRequest)}
}

func (r *SOSRepository) Create(_ context.Context, req *domain.SOSRequest) (*domain.SOSRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *req
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	r.requests[stored.ID] = &stored

	out := stored
	return &out, nil
}

func (r *SOSRepository) List(_ context.Context) ([]*domain.SOSRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	requests := make([]*domain.SOSRequest, 0, len(r.requests))
	for _, req := range r.requests {
		clone := *req
		requests = append(requests, &clone)
	}
	sort.Slice(requests, func(i, j int) bool {
		return requests[i].CreatedAt.After(requests[j].CreatedAt)
	})
	return requests, nil
}
