package ports

import (
	"context"

	"github.com/bloodlink/coordination-api/internal/core/domain"
)

// CreateBankInput carries the fields accepted when registering a bank.
// Stock defaults to zero units across every blood group.
type CreateBankInput struct {
	Name  string
	Email string
	City  string
	Stock *domain.BloodStock
}

// BankService exposes blood bank discovery and registration.
type BankService interface {
	List(ctx context.Context) ([]*domain.BloodBank, error)
	Get(ctx context.Context, id string) (*domain.BloodBank, error)
	Create(ctx context.Context, in CreateBankInput) (*domain.BloodBank, error)
	AddCampaign(ctx context.Context, id string, campaign domain.BankCampaign) (*domain.BloodBank, error)
}
