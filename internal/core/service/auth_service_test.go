package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/bloodlink/coordination-api/internal/core/domain"
	"github.com/bloodlink/coordination-api/internal/core/ports"
)

type stubAccountRepo struct {
	accounts map[string]*domain.Account
	nextID   int
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{accounts: make(map[string]*domain.Account)}
}

func cloneAccount(a *domain.Account) *domain.Account {
	if a == nil {
		return nil
	}
	clone := *a
	clone.MedicalRecords = append([]domain.MedicalRecord(nil), a.MedicalRecords...)
	clone.DonationHistory = append([]domain.Donation(nil), a.DonationHistory...)
	clone.Badges = append([]string(nil), a.Badges...)
	return &clone
}

func (r *stubAccountRepo) Create(_ context.Context, account *domain.Account) (*domain.Account, error) {
	for _, a := range r.accounts {
		if a.Email == account.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	copy := cloneAccount(account)
	if copy.ID == "" {
		r.nextID++
		copy.ID = "acc-" + strconv.Itoa(r.nextID)
	}
	r.accounts[copy.ID] = cloneAccount(copy)
	return cloneAccount(copy), nil
}

func (r *stubAccountRepo) FindByID(_ context.Context, id string) (*domain.Account, error) {
	a, ok := r.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return cloneAccount(a), nil
}

func (r *stubAccountRepo) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	for _, a := range r.accounts {
		if a.Email == email {
			return cloneAccount(a), nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (r *stubAccountRepo) Update(_ context.Context, account *domain.Account) (*domain.Account, error) {
	stored, ok := r.accounts[account.ID]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	stored.Name = account.Name
	stored.Phone = account.Phone
	stored.City = account.City
	stored.BloodGroup = account.BloodGroup
	stored.IsDonor = account.IsDonor
	stored.Role = account.Role
	stored.PasswordHash = account.PasswordHash
	stored.UpdatedAt = account.UpdatedAt
	return cloneAccount(stored), nil
}

func (r *stubAccountRepo) AppendMedicalRecord(_ context.Context, id string, record domain.MedicalRecord) (*domain.Account, error) {
	stored, ok := r.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	stored.MedicalRecords = append(stored.MedicalRecords, record)
	return cloneAccount(stored), nil
}

func (r *stubAccountRepo) AppendDonation(_ context.Context, id string, donation domain.Donation, badges []string) (*domain.Account, error) {
	stored, ok := r.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	stored.DonationHistory = append(stored.DonationHistory, donation)
	stored.Badges = badges
	return cloneAccount(stored), nil
}

func (r *stubAccountRepo) List(_ context.Context, donorsOnly bool) ([]*domain.Account, error) {
	var out []*domain.Account
	for _, a := range r.accounts {
		if donorsOnly && !a.IsDonor {
			continue
		}
		out = append(out, cloneAccount(a))
	}
	return out, nil
}

func registerInput(name, email, password string) ports.RegisterInput {
	return ports.RegisterInput{Name: name, Email: email, Password: password}
}

func TestAuthService_Register_HashesPassword(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	token, account, err := svc.Register(context.Background(), registerInput("alice", "alice@example.com", "pass123"))
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token on registration")
	}
	if account.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if account.Role != domain.RoleUser {
		t.Fatalf("expected default role %q, got %q", domain.RoleUser, account.Role)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := NewAuthService(newStubAccountRepo(), "secret", time.Hour)

	if _, _, err := svc.Register(context.Background(), registerInput("", "a@example.com", "pass")); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for missing name, got %v", err)
	}

	in := registerInput("bob", "bob@example.com", "pass")
	in.Role = "superuser"
	if _, _, err := svc.Register(context.Background(), in); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for bad role, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc := NewAuthService(newStubAccountRepo(), "secret", time.Hour)

	if _, _, err := svc.Register(context.Background(), registerInput("bob", "bob@example.com", "pass1")); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, _, err := svc.Register(context.Background(), registerInput("bobby", "bob@example.com", "pass2")); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_Login_TokenClaims(t *testing.T) {
	svc := NewAuthService(newStubAccountRepo(), "secret", time.Hour)

	in := registerInput("carol", "carol@example.com", "s3cret")
	in.Role = domain.RoleAdmin
	if _, _, err := svc.Register(context.Background(), in); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, account, err := svc.Login(context.Background(), "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if account == nil || account.Name != "carol" {
		t.Fatalf("unexpected account: %+v", account)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["id"] != account.ID || claims["email"] != "carol@example.com" || claims["role"] != domain.RoleAdmin {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if _, ok := claims["exp"]; !ok {
		t.Fatalf("expected exp claim")
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc := NewAuthService(newStubAccountRepo(), "secret", time.Hour)

	if _, _, err := svc.Register(context.Background(), registerInput("dan", "dan@example.com", "right")); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "dan@example.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmailIndistinguishable(t *testing.T) {
	svc := NewAuthService(newStubAccountRepo(), "secret", time.Hour)

	_, _, unknownErr := svc.Login(context.Background(), "ghost@example.com", "whatever")
	if !errors.Is(unknownErr, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", unknownErr)
	}

	if _, _, err := svc.Register(context.Background(), registerInput("eve", "eve@example.com", "right")); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	_, _, wrongErr := svc.Login(context.Background(), "eve@example.com", "wrong")
	if fmt.Sprint(unknownErr) != fmt.Sprint(wrongErr) {
		t.Fatalf("unknown email and wrong password must be indistinguishable: %v vs %v", unknownErr, wrongErr)
	}
}

func TestAuthService_Verify(t *testing.T) {
	svc := NewAuthService(newStubAccountRepo(), "secret", time.Hour)

	token, account, err := svc.Register(context.Background(), registerInput("frank", "frank@example.com", "pass12"))
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	identity, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if identity.ID != account.ID || identity.Email != "frank@example.com" || identity.Role != domain.RoleUser {
		t.Fatalf("unexpected identity: %+v", identity)
	}
}

func TestAuthService_Verify_WrongSecret(t *testing.T) {
	issuer := NewAuthService(newStubAccountRepo(), "secret-a", time.Hour)
	verifier := NewAuthService(newStubAccountRepo(), "secret-b", time.Hour)

	token, _, err := issuer.Register(context.Background(), registerInput("gina", "gina@example.com", "pass12"))
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, err := verifier.Verify(token); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected rejection for wrong secret, got %v", err)
	}
}

func TestAuthService_Verify_Expired(t *testing.T) {
	svc := NewAuthService(newStubAccountRepo(), "secret", time.Hour)

	claims := jwt.MapClaims{
		"id":    "u1",
		"email": "old@example.com",
		"role":  domain.RoleUser,
		"exp":   time.Now().Add(-time.Minute).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Verify(token); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected rejection for expired token, got %v", err)
	}
}

func TestAuthService_Verify_WrongAlgorithm(t *testing.T) {
	svc := NewAuthService(newStubAccountRepo(), "secret", time.Hour)

	// alg=none tokens must never verify, even with a matching payload.
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"id":   "u1",
		"role": domain.RoleAdmin,
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Verify(token); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected rejection for alg=none, got %v", err)
	}
}
