package ports

import (
	"context"

	"github.com/bloodlink/coordination-api/internal/core/domain"
)

// RegisterInput carries the fields accepted at registration time.
type RegisterInput struct {
	Name       string
	Email      string
	Password   string
	Role       string // defaults to "user"
	BloodGroup string
	Phone      string
	City       string
	IsDonor    bool
}

// AuthService owns credential verification and token issuance.
type AuthService interface {
	// Register creates an account and returns it with a fresh token.
	Register(ctx context.Context, in RegisterInput) (string, *domain.Account, error)
	// Login verifies credentials and returns a token. Unknown email and
	// wrong password are indistinguishable to the caller.
	Login(ctx context.Context, email, password string) (string, *domain.Account, error)
	// Verify checks a token's signature and expiry and returns the
	// embedded identity.
	Verify(token string) (domain.Identity, error)
}
