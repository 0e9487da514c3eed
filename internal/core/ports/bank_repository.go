package ports

import (
	"context"

	"github.com/bloodlink/coordination-api/internal/core/domain"
)

// BankRepository defines persistence for blood banks.
type BankRepository interface {
	Create(ctx context.Context, bank *domain.BloodBank) (*domain.BloodBank, error)
	FindByID(ctx context.Context, id string) (*domain.BloodBank, error)
	List(ctx context.Context) ([]*domain.BloodBank, error)
	// AppendCampaign adds a drive to the bank's embedded campaign list.
	AppendCampaign(ctx context.Context, id string, campaign domain.BankCampaign) (*domain.BloodBank, error)
}
