package ports

import (
	"context"

	"github.com/bloodlink/coordination-api/internal/core/domain"
)

// AccountRepository defines persistence for the credential store. It has
// two implementations selected at startup: MongoDB and an in-memory
// fallback. Both must turn a duplicate email on Create into
// domain.ErrEmailTaken, even under concurrent registration.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	// Update overwrites the mutable fields of the account identified by
	// account.ID: name, phone, city, bloodGroup, isDonor, role,
	// passwordHash, updatedAt. Email, createdAt and the append-only
	// sequences are left untouched.
	Update(ctx context.Context, account *domain.Account) (*domain.Account, error)
	// AppendMedicalRecord appends one checkup entry. Existing entries are
	// never modified.
	AppendMedicalRecord(ctx context.Context, id string, record domain.MedicalRecord) (*domain.Account, error)
	// AppendDonation appends one donation and replaces the badge list.
	AppendDonation(ctx context.Context, id string, donation domain.Donation, badges []string) (*domain.Account, error)
	// List returns all accounts; donorsOnly restricts to isDonor=true.
	List(ctx context.Context, donorsOnly bool) ([]*domain.Account, error)
}
