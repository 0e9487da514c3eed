package ports

import (
	"context"
	"time"

	"github.com/bloodlink/coordination-api/internal/core/domain"
)

// UpdateProfileInput carries the fields an owner or admin may change.
// Nil pointers leave the stored value untouched. Email and password are
// not reachable through this path.
type UpdateProfileInput struct {
	Name       *string
	Phone      *string
	City       *string
	BloodGroup *string
}

// DonorEnrollInput carries the fields required to become a donor.
type DonorEnrollInput struct {
	BloodGroup string
	City       string
	Phone      string
}

// MedicalRecordInput is one checkup as submitted by an admin. The
// server stamps the record time itself.
type MedicalRecordInput struct {
	Weight              float64
	BloodPressure       string
	Hemoglobin          float64
	LastDonationDate    *time.Time
	EligibleForDonation bool
	MedicalNotes        string
	CheckupBy           string
}

// DonationInput records one completed donation.
type DonationInput struct {
	Date       time.Time
	Location   string
	QuantityML int
}

// AccountService owns the account lifecycle operations that run behind
// authentication. Ownership and role checks happen here, against the
// identity recovered from the token.
type AccountService interface {
	GetProfile(ctx context.Context, identity domain.Identity, targetID string) (*domain.Account, error)
	UpdateProfile(ctx context.Context, identity domain.Identity, targetID string, in UpdateProfileInput) (*domain.Account, error)
	ChangePassword(ctx context.Context, identity domain.Identity, targetID, newPassword string) (*domain.Account, error)
	// RegisterDonor is self-only: an admin cannot enroll someone else.
	// Re-submitting the same payload is a no-op success.
	RegisterDonor(ctx context.Context, identity domain.Identity, targetID string, in DonorEnrollInput) (*domain.Account, error)
	AddMedicalRecord(ctx context.Context, identity domain.Identity, targetID string, in MedicalRecordInput) (*domain.Account, error)
	RecordDonation(ctx context.Context, identity domain.Identity, targetID string, in DonationInput) (*domain.Account, error)
	ListAccounts(ctx context.Context) ([]*domain.Account, error)
	ListDonors(ctx context.Context) ([]*domain.Account, error)
	// EnrollDonorByEmail backs the public donor intake form: an existing
	// account is upgraded to a donor, an unknown email gets a fresh donor
	// account with a placeholder password.
	EnrollDonorByEmail(ctx context.Context, name, email, bloodGroup, city string) (*domain.Account, error)
}
