package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bloodlink/coordination-api/internal/core/domain"
	"github.com/bloodlink/coordination-api/internal/core/ports"
)

// BankService exposes blood bank discovery and registration.
type BankService struct {
	repo ports.BankRepository
}

func NewBankService(repo ports.BankRepository) *BankService {
	return &BankService{repo: repo}
}

func (s *BankService) List(ctx context.Context) ([]*domain.BloodBank, error) {
	return s.repo.List(ctx)
}

func (s *BankService) Get(ctx context.Context, id string) (*domain.BloodBank, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *BankService) Create(ctx context.Context, in ports.CreateBankInput) (*domain.BloodBank, error) {
	if in.Name == "" || in.City == "" {
		return nil, fmt.Errorf("%w: name and city are required", domain.ErrValidation)
	}

	bank := &domain.BloodBank{
		Name:      in.Name,
		Email:     in.Email,
		City:      in.City,
		Campaigns: []domain.BankCampaign{},
		CreatedAt: time.Now().UTC(),
	}
	if in.Stock != nil {
		bank.Stock = *in.Stock
	}

	return s.repo.Create(ctx, bank)
}

func (s *BankService) AddCampaign(ctx context.Context, id string, campaign domain.BankCampaign) (*domain.BloodBank, error) {
	if campaign.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	return s.repo.AppendCampaign(ctx, id, campaign)
}
