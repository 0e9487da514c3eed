package ports

import (
	"context"

	"github.com/bloodlink/coordination-api/internal/core/domain"
)

// SOSRepository defines persistence for emergency requests.
type SOSRepository interface {
	Create(ctx context.Context, req *domain.SOSRequest) (*domain.SOSRequest, error)
	List(ctx context.Context) ([]*domain.SOSRequest, error)
}
