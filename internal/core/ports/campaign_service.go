package ports

import (
	"context"
	"time"

	"github.com/bloodlink/coordination-api/internal/core/domain"
)

// CreateCampaignInput carries the fields accepted when creating a
// campaign. Status is always derived from Date, never client-supplied.
type CreateCampaignInput struct {
	Title             string
	Description       string
	Date              time.Time
	Location          string
	Organizer         string
	Email             string
	Phone             string
	City              string
	TargetDonors      int
	BloodGroupsNeeded []string
}

// UpdateCampaignInput patches an existing campaign. Nil pointers leave
// the stored value untouched.
type UpdateCampaignInput struct {
	Title             *string
	Description       *string
	Date              *time.Time
	Location          *string
	Organizer         *string
	Email             *string
	Phone             *string
	City              *string
	TargetDonors      *int
	RegisteredDonors  *int
	BloodGroupsNeeded []string
}

// CampaignService exposes campaign CRUD and the scheduled status roll.
type CampaignService interface {
	List(ctx context.Context, filter CampaignFilter) ([]*domain.Campaign, error)
	Get(ctx context.Context, id string) (*domain.Campaign, error)
	Create(ctx context.Context, in CreateCampaignInput) (*domain.Campaign, error)
	Update(ctx context.Context, id string, in UpdateCampaignInput) (*domain.Campaign, error)
	Delete(ctx context.Context, id string) error
	// RefreshStatuses re-derives every campaign's status from its date.
	// Invoked by the scheduler; returns the number of campaigns changed.
	RefreshStatuses(ctx context.Context, now time.Time) (int, error)
}
