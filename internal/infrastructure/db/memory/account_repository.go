// Package memory provides in-memory repository implementations used as
// the storage fallback when no MongoDB backend is configured or
// reachable. The choice between backends is made once at startup; the
// in-memory stores keep the same error semantics as their Mongo
// counterparts, including turning a duplicate email into ErrEmailTaken
// under concurrent registration.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/bloodlink/coordination-api/internal/core/domain"
)

type AccountRepository struct {
	mu       sync.RWMutex
	byID     map[string]*domain.Account
	idByMail map[string]string
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		byID:     make(map[string]*domain.Account),
		idByMail: make(map[string]string),
	}
}

func cloneAccount(a *domain.Account) *domain.Account {
	clone := *a
	clone.MedicalRecords = append([]domain.MedicalRecord(nil), a.MedicalRecords...)
	clone.DonationHistory = append([]domain.Donation(nil), a.DonationHistory...)
	clone.Badges = append([]string(nil), a.Badges...)
	return &clone
}

func (r *AccountRepository) Create(_ context.Context, account *domain.Account) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// The uniqueness check and the insert happen under one lock, so two
	// concurrent registrations for the same email cannot both succeed.
	if _, exists := r.idByMail[account.Email]; exists {
		return nil, domain.ErrEmailTaken
	}

	stored := cloneAccount(account)
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	r.byID[stored.ID] = stored
	r.idByMail[stored.Email] = stored.ID
	return cloneAccount(stored), nil
}

func (r *AccountRepository) FindByID(_ context.Context, id string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return cloneAccount(account), nil
}

func (r *AccountRepository) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.idByMail[email]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return cloneAccount(r.byID[id]), nil
}

func (r *AccountRepository) Update(_ context.Context, account *domain.Account) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[account.ID]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}

	stored.Name = account.Name
	stored.PasswordHash = account.PasswordHash
	stored.Role = account.Role
	stored.IsDonor = account.IsDonor
	stored.BloodGroup = account.BloodGroup
	stored.Phone = account.Phone
	stored.City = account.City
	stored.UpdatedAt = account.UpdatedAt
	return cloneAccount(stored), nil
}

func (r *AccountRepository) AppendMedicalRecord(_ context.Context, id string, record domain.MedicalRecord) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	stored.MedicalRecords = append(stored.MedicalRecords, record)
	stored.UpdatedAt = record.RecordedAt
	return cloneAccount(stored), nil
}

func (r *AccountRepository) AppendDonation(_ context.Context, id string, donation domain.Donation, badges []string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	stored.DonationHistory = append(stored.DonationHistory, donation)
	stored.Badges = append([]string(nil), badges...)
	return cloneAccount(stored), nil
}

func (r *AccountRepository) List(_ context.Context, donorsOnly bool) ([]*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	accounts := make([]*domain.Account, 0, len(r.byID))
	for _, a := range r.byID {
		if donorsOnly && !a.IsDonor {
			continue
		}
		accounts = append(accounts, cloneAccount(a))
	}
	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].CreatedAt.Before(accounts[j].CreatedAt)
	})
	return accounts, nil
}
