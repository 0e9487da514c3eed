package ports

import (
	"context"

	"github.com/bloodlink/coordination-api/internal/core/domain"
)

// CampaignFilter narrows campaign listings. Zero values mean no filter;
// City matches as a case-insensitive substring.
type CampaignFilter struct {
	Status domain.CampaignStatus
	City   string
}

// CampaignRepository defines persistence for standalone campaigns.
type CampaignRepository interface {
	Create(ctx context.Context, campaign *domain.Campaign) (*domain.Campaign, error)
	FindByID(ctx context.Context, id string) (*domain.Campaign, error)
	List(ctx context.Context, filter CampaignFilter) ([]*domain.Campaign, error)
	Update(ctx context.Context, campaign *domain.Campaign) (*domain.Campaign, error)
	Delete(ctx context.Context, id string) error
}
