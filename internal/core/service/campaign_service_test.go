package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/bloodlink/coordination-api/internal/core/domain"
	"github.com/bloodlink/coordination-api/internal/core/ports"
)

type stubCampaignRepo struct {
	campaigns map[string]*domain.Campaign
	nextID    int
}

func newStubCampaignRepo() *stubCampaignRepo {
	return &stubCampaignRepo{campaigns: make(map[string]*domain.Campaign)}
}

func (r *stubCampaignRepo) Create(_ context.Context, campaign *domain.Campaign) (*domain.Campaign, error) {
	clone := *campaign
	r.nextID++
	clone.ID = "camp-" + strconv.Itoa(r.nextID)
	r.campaigns[clone.ID] = &clone
	copy := clone
	return &copy, nil
}

func (r *stubCampaignRepo) FindByID(_ context.Context, id string) (*domain.Campaign, error) {
	c, ok := r.campaigns[id]
	if !ok {
		return nil, domain.ErrCampaignNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCampaignRepo) List(_ context.Context, filter ports.CampaignFilter) ([]*domain.Campaign, error) {
	var out []*domain.Campaign
	for _, c := range r.campaigns {
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		if filter.City != "" && !strings.Contains(strings.ToLower(c.City), strings.ToLower(filter.City)) {
			continue
		}
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubCampaignRepo) Update(_ context.Context, campaign *domain.Campaign) (*domain.Campaign, error) {
	if _, ok := r.campaigns[campaign.ID]; !ok {
		return nil, domain.ErrCampaignNotFound
	}
	clone := *campaign
	r.campaigns[clone.ID] = &clone
	copy := clone
	return &copy, nil
}

func (r *stubCampaignRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.campaigns[id]; !ok {
		return domain.ErrCampaignNotFound
	}
	delete(r.campaigns, id)
	return nil
}

func validCampaignInput(date time.Time) ports.CreateCampaignInput {
	return ports.CreateCampaignInput{
		Title:       "City Drive",
		Description: "Quarterly donation drive",
		Date:        date,
		Location:    "Town Hall",
		Organizer:   "Red Cross",
		Email:       "drive@example.com",
		City:        "Mumbai",
	}
}

func TestCampaignService_Create_DerivesStatusAndDefaults(t *testing.T) {
	svc := NewCampaignService(newStubCampaignRepo(), zerolog.Nop())

	future, err := svc.Create(context.Background(), validCampaignInput(time.Now().UTC().Add(72*time.Hour)))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if future.Status != domain.CampaignUpcoming {
		t.Fatalf("expected upcoming, got %q", future.Status)
	}
	if future.TargetDonors != defaultTargetDonors {
		t.Fatalf("expected default target %d, got %d", defaultTargetDonors, future.TargetDonors)
	}
	if len(future.BloodGroupsNeeded) != 1 || future.BloodGroupsNeeded[0] != "All" {
		t.Fatalf("expected default blood groups, got %v", future.BloodGroupsNeeded)
	}

	past, err := svc.Create(context.Background(), validCampaignInput(time.Now().UTC().Add(-72*time.Hour)))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if past.Status != domain.CampaignCompleted {
		t.Fatalf("expected completed, got %q", past.Status)
	}
}

func TestCampaignService_Create_Validation(t *testing.T) {
	svc := NewCampaignService(newStubCampaignRepo(), zerolog.Nop())

	in := validCampaignInput(time.Now())
	in.Organizer = ""
	if _, err := svc.Create(context.Background(), in); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestCampaignService_Update_DateRederivesStatus(t *testing.T) {
	svc := NewCampaignService(newStubCampaignRepo(), zerolog.Nop())

	created, err := svc.Create(context.Background(), validCampaignInput(time.Now().UTC().Add(72*time.Hour)))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	pastDate := time.Now().UTC().Add(-72 * time.Hour)
	updated, err := svc.Update(context.Background(), created.ID, ports.UpdateCampaignInput{Date: &pastDate})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Status != domain.CampaignCompleted {
		t.Fatalf("status must follow the new date, got %q", updated.Status)
	}
}

func TestCampaignService_RefreshStatuses(t *testing.T) {
	repo := newStubCampaignRepo()
	svc := NewCampaignService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), validCampaignInput(time.Now().UTC().Add(72*time.Hour)))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.Status != domain.CampaignUpcoming {
		t.Fatalf("expected upcoming, got %q", created.Status)
	}

	// A week later the drive is over.
	changed, err := svc.RefreshStatuses(context.Background(), time.Now().UTC().Add(7*24*time.Hour))
	if err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if changed != 1 {
		t.Fatalf("expected 1 change, got %d", changed)
	}

	after, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if after.Status != domain.CampaignCompleted {
		t.Fatalf("expected completed after refresh, got %q", after.Status)
	}

	// Second run with the same clock is a no-op.
	changed, err = svc.RefreshStatuses(context.Background(), time.Now().UTC().Add(7*24*time.Hour))
	if err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if changed != 0 {
		t.Fatalf("expected no further changes, got %d", changed)
	}
}

func TestCampaignService_Delete_Unknown(t *testing.T) {
	svc := NewCampaignService(newStubCampaignRepo(), zerolog.Nop())

	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, domain.ErrCampaignNotFound) {
		t.Fatalf("expected ErrCampaignNotFound, got %v", err)
	}
}
