package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/bloodlink/coordination-api/internal/core/domain"
	"github.com/bloodlink/coordination-api/internal/core/ports"
)

const defaultTargetDonors = 50

// CampaignService implements campaign CRUD. Status is derived from the
// campaign date, both at creation and by the scheduled refresh.
type CampaignService struct {
	repo ports.CampaignRepository
	log  zerolog.Logger
}

func NewCampaignService(repo ports.CampaignRepository, log zerolog.Logger) *CampaignService {
	return &CampaignService{repo: repo, log: log}
}

func (s *CampaignService) List(ctx context.Context, filter ports.CampaignFilter) ([]*domain.Campaign, error) {
	return s.repo.List(ctx, filter)
}

func (s *CampaignService) Get(ctx context.Context, id string) (*domain.Campaign, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CampaignService) Create(ctx context.Context, in ports.CreateCampaignInput) (*domain.Campaign, error) {
	if in.Title == "" || in.Description == "" || in.Date.IsZero() || in.Location == "" ||
		in.Organizer == "" || in.Email == "" || in.City == "" {
		return nil, fmt.Errorf("%w: title, description, date, location, organizer, email and city are required", domain.ErrValidation)
	}

	campaign := &domain.Campaign{
		Title:             in.Title,
		Description:       in.Description,
		Date:              in.Date,
		Location:          in.Location,
		Organizer:         in.Organizer,
		Email:             in.Email,
		Phone:             in.Phone,
		City:              in.City,
		TargetDonors:      in.TargetDonors,
		BloodGroupsNeeded: in.BloodGroupsNeeded,
		CreatedAt:         time.Now().UTC(),
	}
	if campaign.TargetDonors <= 0 {
		campaign.TargetDonors = defaultTargetDonors
	}
	if len(campaign.BloodGroupsNeeded) == 0 {
		campaign.BloodGroupsNeeded = []string{"All"}
	}
	campaign.Status = campaign.StatusAt(time.Now().UTC())

	return s.repo.Create(ctx, campaign)
}

func (s *CampaignService) Update(ctx context.Context, id string, in ports.UpdateCampaignInput) (*domain.Campaign, error) {
	campaign, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		campaign.Title = *in.Title
	}
	if in.Description != nil {
		campaign.Description = *in.Description
	}
	if in.Date != nil {
		campaign.Date = *in.Date
		campaign.Status = campaign.StatusAt(time.Now().UTC())
	}
	if in.Location != nil {
		campaign.Location = *in.Location
	}
	if in.Organizer != nil {
		campaign.Organizer = *in.Organizer
	}
	if in.Email != nil {
		campaign.Email = *in.Email
	}
	if in.Phone != nil {
		campaign.Phone = *in.Phone
	}
	if in.City != nil {
		campaign.City = *in.City
	}
	if in.TargetDonors != nil {
		campaign.TargetDonors = *in.TargetDonors
	}
	if in.RegisteredDonors != nil {
		campaign.RegisteredDonors = *in.RegisteredDonors
	}
	if in.BloodGroupsNeeded != nil {
		campaign.BloodGroupsNeeded = in.BloodGroupsNeeded
	}

	return s.repo.Update(ctx, campaign)
}

func (s *CampaignService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// RefreshStatuses re-derives every campaign's status from its date and
// persists the ones that changed. Returns the number updated.
func (s *CampaignService) RefreshStatuses(ctx context.Context, now time.Time) (int, error) {
	campaigns, err := s.repo.List(ctx, ports.CampaignFilter{})
	if err != nil {
		return 0, err
	}

	changed := 0
	for _, c := range campaigns {
		next := c.StatusAt(now)
		if next == c.Status {
			continue
		}
		c.Status = next
		if _, err := s.repo.Update(ctx, c); err != nil {
			s.log.Error().Err(err).Str("campaign_id", c.ID).Msg("campaign status refresh failed")
			continue
		}
		changed++
	}
	return changed, nil
}
