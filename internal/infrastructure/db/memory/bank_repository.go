package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/bloodlink/coordination-api/internal/core/domain"
)

type BankRepository struct {
	mu    sync.RWMutex
	banks map[string]*domain.BloodBank
}

func NewBankRepository() *BankRepository {
	return &BankRepository{banks: make(map[string]*domain.BloodBank)}
}

func cloneBank(b *domain.BloodBank) *domain.BloodBank {
	clone := *b
	clone.Campaigns = append([]domain.BankCampaign(nil), b.Campaigns...)
	return &clone
}

func (r *BankRepository) Create(_ context.Context, bank *domain.BloodBank) (*domain.BloodBank, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := cloneBank(bank)
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	r.banks[stored.ID] = stored
	return cloneBank(stored), nil
}

func (r *BankRepository) FindByID(_ context.Context, id string) (*domain.BloodBank, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bank, ok := r.banks[id]
	if !ok {
		return nil, domain.ErrBankNotFound
	}
	return cloneBank(bank), nil
}

func (r *BankRepository) List(_ context.Context) ([]*domain.BloodBank, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	banks := make([]*domain.BloodBank, 0, len(r.banks))
	for _, b := range r.banks {
		banks = append(banks, cloneBank(b))
	}
	sort.Slice(banks, func(i, j int) bool {
		return banks[i].CreatedAt.Before(banks[j].CreatedAt)
	})
	return banks, nil
}

func (r *BankRepository) AppendCampaign(_ context.Context, id string, campaign domain.BankCampaign) (*domain.BloodBank, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	bank, ok := r.banks[id]
	if !ok {
		return nil, domain.ErrBankNotFound
	}
	bank.Campaigns = append(bank.Campaigns, campaign)
	return cloneBank(bank), nil
}
