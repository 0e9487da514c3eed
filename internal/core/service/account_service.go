package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/bloodlink/coordination-api/internal/core/domain"
	"github.com/bloodlink/coordination-api/internal/core/ports"
)

const minPasswordLength = 6

// AccountService implements the account lifecycle operations that run
// behind authentication. Ownership and role checks are evaluated here
// against the token-derived identity, before any write happens.
type AccountService struct {
	repo ports.AccountRepository
}

func NewAccountService(repo ports.AccountRepository) *AccountService {
	return &AccountService{repo: repo}
}

func (s *AccountService) GetProfile(ctx context.Context, identity domain.Identity, targetID string) (*domain.Account, error) {
	if !identity.SelfOrAdmin(targetID) {
		return nil, domain.ErrForbidden
	}
	return s.repo.FindByID(ctx, targetID)
}

func (s *AccountService) UpdateProfile(ctx context.Context, identity domain.Identity, targetID string, in ports.UpdateProfileInput) (*domain.Account, error) {
	if !identity.SelfOrAdmin(targetID) {
		return nil, domain.ErrForbidden
	}

	account, err := s.repo.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		account.Name = *in.Name
	}
	if in.Phone != nil {
		account.Phone = *in.Phone
	}
	if in.City != nil {
		account.City = *in.City
	}
	if in.BloodGroup != nil {
		account.BloodGroup = *in.BloodGroup
	}
	account.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, account)
}

func (s *AccountService) ChangePassword(ctx context.Context, identity domain.Identity, targetID, newPassword string) (*domain.Account, error) {
	if !identity.SelfOrAdmin(targetID) {
		return nil, domain.ErrForbidden
	}
	if len(newPassword) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, minPasswordLength)
	}

	account, err := s.repo.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	account.PasswordHash = string(hash)
	account.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, account)
}

// RegisterDonor is self-only: an admin cannot enroll another account.
// Re-submitting the same payload is a no-op success.
func (s *AccountService) RegisterDonor(ctx context.Context, identity domain.Identity, targetID string, in ports.DonorEnrollInput) (*domain.Account, error) {
	if !identity.IsSelf(targetID) {
		return nil, domain.ErrForbidden
	}
	if in.BloodGroup == "" || in.City == "" {
		return nil, fmt.Errorf("%w: bloodGroup and city are required", domain.ErrValidation)
	}

	account, err := s.repo.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	account.IsDonor = true
	account.BloodGroup = in.BloodGroup
	account.City = in.City
	if in.Phone != "" {
		account.Phone = in.Phone
	}
	account.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, account)
}

func (s *AccountService) AddMedicalRecord(ctx context.Context, identity domain.Identity, targetID string, in ports.MedicalRecordInput) (*domain.Account, error) {
	if !identity.IsAdmin() {
		return nil, domain.ErrAdminRequired
	}

	record := domain.MedicalRecord{
		Weight:              in.Weight,
		BloodPressure:       in.BloodPressure,
		Hemoglobin:          in.Hemoglobin,
		LastDonationDate:    in.LastDonationDate,
		EligibleForDonation: in.EligibleForDonation,
		MedicalNotes:        in.MedicalNotes,
		CheckupBy:           in.CheckupBy,
		RecordedAt:          time.Now().UTC(),
	}

	return s.repo.AppendMedicalRecord(ctx, targetID, record)
}

func (s *AccountService) RecordDonation(ctx context.Context, identity domain.Identity, targetID string, in ports.DonationInput) (*domain.Account, error) {
	if !identity.IsAdmin() {
		return nil, domain.ErrAdminRequired
	}
	if in.Location == "" {
		return nil, fmt.Errorf("%w: location is required", domain.ErrValidation)
	}

	account, err := s.repo.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	donation := domain.Donation{
		Date:       in.Date,
		Location:   in.Location,
		QuantityML: in.QuantityML,
	}
	if donation.Date.IsZero() {
		donation.Date = time.Now().UTC()
	}
	if donation.QuantityML <= 0 {
		donation.QuantityML = 450
	}

	badges := account.Badges
	if badge := domain.BadgeFor(len(account.DonationHistory) + 1); badge != "" && !contains(badges, badge) {
		badges = append(badges, badge)
	}

	return s.repo.AppendDonation(ctx, targetID, donation, badges)
}

func (s *AccountService) ListAccounts(ctx context.Context) ([]*domain.Account, error) {
	return s.repo.List(ctx, false)
}

func (s *AccountService) ListDonors(ctx context.Context) ([]*domain.Account, error) {
	return s.repo.List(ctx, true)
}

// EnrollDonorByEmail backs the public donor intake form. An existing
// account is upgraded in place; an unknown email gets a fresh donor
// account whose placeholder password must be reset before first login.
func (s *AccountService) EnrollDonorByEmail(ctx context.Context, name, email, bloodGroup, city string) (*domain.Account, error) {
	if name == "" || email == "" || bloodGroup == "" || city == "" {
		return nil, fmt.Errorf("%w: name, email, bloodGroup and city are required", domain.ErrValidation)
	}

	existing, err := s.repo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		existing.IsDonor = true
		existing.BloodGroup = bloodGroup
		existing.City = city
		existing.UpdatedAt = time.Now().UTC()
		return s.repo.Update(ctx, existing)
	case !errors.Is(err, domain.ErrAccountNotFound):
		return nil, err
	}

	// Unguessable placeholder; the donor sets a real password later.
	hash, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return s.repo.Create(ctx, &domain.Account{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleDonor,
		IsDonor:      true,
		BloodGroup:   bloodGroup,
		City:         city,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
