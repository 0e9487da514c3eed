package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/bloodlink/coordination-api/internal/core/domain"
	"github.com/bloodlink/coordination-api/internal/core/ports"
)

type CampaignRepository struct {
	mu        sync.RWMutex
	campaigns map[string]*domain.Campaign
}

func NewCampaignRepository() *CampaignRepository {
	return &CampaignRepository{campaigns: make(map[string]*domain.Campaign)}
}

func cloneCampaign(c *domain.Campaign) *domain.Campaign {
	clone := *c
	clone.BloodGroupsNeeded = append([]string(nil), c.BloodGroupsNeeded...)
	return &clone
}

func (r *CampaignRepository) Create(_ context.Context, campaign *domain.Campaign) (*domain.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := cloneCampaign(campaign)
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	r.campaigns[stored.ID] = stored
	return cloneCampaign(stored), nil
}

func (r *CampaignRepository) FindByID(_ context.Context, id string) (*domain.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	campaign, ok := r.campaigns[id]
	if !ok {
		return nil, domain.ErrCampaignNotFound
	}
	return cloneCampaign(campaign), nil
}

func (r *CampaignRepository) List(_ context.Context, filter ports.CampaignFilter) ([]*domain.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	campaigns := make([]*domain.Campaign, 0, len(r.campaigns))
	for _, c := range r.campaigns {
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		if filter.City != "" && !strings.Contains(strings.ToLower(c.City), strings.ToLower(filter.City)) {
			continue
		}
		campaigns = append(campaigns, cloneCampaign(c))
	}
	sort.Slice(campaigns, func(i, j int) bool {
		return campaigns[i].Date.Before(campaigns[j].Date)
	})
	return campaigns, nil
}

func (r *CampaignRepository) Update(_ context.Context, campaign *domain.Campaign) (*domain.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.campaigns[campaign.ID]; !ok {
		return nil, domain.ErrCampaignNotFound
	}
	r.campaigns[campaign.ID] = cloneCampaign(campaign)
	return cloneCampaign(campaign), nil
}

func (r *CampaignRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.campaigns[id]; !ok {
		return domain.ErrCampaignNotFound
	}
	delete(r.campaigns, id)
	return nil
}
