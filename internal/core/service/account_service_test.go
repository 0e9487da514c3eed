package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/bloodlink/coordination-api/internal/core/domain"
	"github.com/bloodlink/coordination-api/internal/core/ports"
)

func seedAccount(t *testing.T, repo *stubAccountRepo, name, email, role string) *domain.Account {
	t.Helper()
	created, err := repo.Create(context.Background(), &domain.Account{
		Name:  name,
		Email: email,
		Role:  role,
	})
	if err != nil {
		t.Fatalf("seed account: %v", err)
	}
	return created
}

func asIdentity(a *domain.Account) domain.Identity {
	return domain.Identity{ID: a.ID, Email: a.Email, Role: a.Role}
}

func TestAccountService_GetProfile_Policy(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAccountService(repo)

	owner := seedAccount(t, repo, "alice", "alice@example.com", domain.RoleUser)
	other := seedAccount(t, repo, "bob", "bob@example.com", domain.RoleUser)
	admin := seedAccount(t, repo, "root", "root@example.com", domain.RoleAdmin)

	if _, err := svc.GetProfile(context.Background(), asIdentity(owner), owner.ID); err != nil {
		t.Fatalf("owner should read own profile: %v", err)
	}
	if _, err := svc.GetProfile(context.Background(), asIdentity(admin), owner.ID); err != nil {
		t.Fatalf("admin should read any profile: %v", err)
	}
	if _, err := svc.GetProfile(context.Background(), asIdentity(other), owner.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for a stranger, got %v", err)
	}
}

func TestAccountService_UpdateProfile_PartialMerge(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAccountService(repo)

	owner := seedAccount(t, repo, "alice", "alice@example.com", domain.RoleUser)
	city := "Pune"

	updated, err := svc.UpdateProfile(context.Background(), asIdentity(owner), owner.ID, ports.UpdateProfileInput{City: &city})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.City != "Pune" {
		t.Fatalf("city not updated: %q", updated.City)
	}
	if updated.Name != "alice" {
		t.Fatalf("name should be untouched, got %q", updated.Name)
	}
}

func TestAccountService_ChangePassword_LengthBoundary(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAccountService(repo)

	owner := seedAccount(t, repo, "alice", "alice@example.com", domain.RoleUser)

	if _, err := svc.ChangePassword(context.Background(), asIdentity(owner), owner.ID, "12345"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("5 chars should be rejected, got %v", err)
	}

	updated, err := svc.ChangePassword(context.Background(), asIdentity(owner), owner.ID, "123456")
	if err != nil {
		t.Fatalf("6 chars should be accepted: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("123456")); err != nil {
		t.Fatalf("stored hash does not match new password: %v", err)
	}
}

func TestAccountService_RegisterDonor_SelfOnly(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAccountService(repo)

	owner := seedAccount(t, repo, "alice", "alice@example.com", domain.RoleUser)
	admin := seedAccount(t, repo, "root", "root@example.com", domain.RoleAdmin)

	in := ports.DonorEnrollInput{BloodGroup: "O+", City: "Mumbai"}

	// Admin acting on someone else's id is still forbidden here.
	if _, err := svc.RegisterDonor(context.Background(), asIdentity(admin), owner.ID, in); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for admin-on-other, got %v", err)
	}

	enrolled, err := svc.RegisterDonor(context.Background(), asIdentity(owner), owner.ID, in)
	if err != nil {
		t.Fatalf("self enrollment failed: %v", err)
	}
	if !enrolled.IsDonor || enrolled.BloodGroup != "O+" || enrolled.City != "Mumbai" {
		t.Fatalf("unexpected donor state: %+v", enrolled)
	}

	// Re-submission is a no-op success.
	again, err := svc.RegisterDonor(context.Background(), asIdentity(owner), owner.ID, in)
	if err != nil {
		t.Fatalf("re-enrollment should succeed: %v", err)
	}
	if !again.IsDonor {
		t.Fatalf("donor flag lost on re-enrollment")
	}
}

func TestAccountService_RegisterDonor_Validation(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAccountService(repo)
	owner := seedAccount(t, repo, "alice", "alice@example.com", domain.RoleUser)

	if _, err := svc.RegisterDonor(context.Background(), asIdentity(owner), owner.ID, ports.DonorEnrollInput{City: "Delhi"}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for missing blood group, got %v", err)
	}
}

func TestAccountService_AddMedicalRecord_AdminOnly(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAccountService(repo)

	owner := seedAccount(t, repo, "alice", "alice@example.com", domain.RoleUser)
	admin := seedAccount(t, repo, "root", "root@example.com", domain.RoleAdmin)

	in := ports.MedicalRecordInput{Weight: 62, Hemoglobin: 13.5, EligibleForDonation: true, CheckupBy: "Dr. Rao"}

	if _, err := svc.AddMedicalRecord(context.Background(), asIdentity(owner), owner.ID, in); !errors.Is(err, domain.ErrAdminRequired) {
		t.Fatalf("expected ErrAdminRequired for owner, got %v", err)
	}

	updated, err := svc.AddMedicalRecord(context.Background(), asIdentity(admin), owner.ID, in)
	if err != nil {
		t.Fatalf("admin append failed: %v", err)
	}
	if len(updated.MedicalRecords) != 1 {
		t.Fatalf("expected 1 record, got %d", len(updated.MedicalRecords))
	}
	if updated.MedicalRecords[0].RecordedAt.IsZero() {
		t.Fatalf("record must be timestamped by the server")
	}

	// Entries accumulate, they are never replaced.
	updated, err = svc.AddMedicalRecord(context.Background(), asIdentity(admin), owner.ID, in)
	if err != nil {
		t.Fatalf("second append failed: %v", err)
	}
	if len(updated.MedicalRecords) != 2 {
		t.Fatalf("expected 2 records, got %d", len(updated.MedicalRecords))
	}
}

func TestAccountService_RecordDonation_BadgesAndDefaults(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAccountService(repo)

	donor := seedAccount(t, repo, "alice", "alice@example.com", domain.RoleDonor)
	admin := seedAccount(t, repo, "root", "root@example.com", domain.RoleAdmin)

	if _, err := svc.RecordDonation(context.Background(), asIdentity(donor), donor.ID, ports.DonationInput{Location: "City Hospital"}); !errors.Is(err, domain.ErrAdminRequired) {
		t.Fatalf("expected ErrAdminRequired for non-admin, got %v", err)
	}

	var updated *domain.Account
	var err error
	for i := 0; i < 3; i++ {
		updated, err = svc.RecordDonation(context.Background(), asIdentity(admin), donor.ID, ports.DonationInput{Location: "City Hospital"})
		if err != nil {
			t.Fatalf("donation %d failed: %v", i+1, err)
		}
	}

	if len(updated.DonationHistory) != 3 {
		t.Fatalf("expected 3 donations, got %d", len(updated.DonationHistory))
	}
	if updated.DonationHistory[0].QuantityML != 450 {
		t.Fatalf("expected default quantity 450, got %d", updated.DonationHistory[0].QuantityML)
	}
	if updated.DonationHistory[0].Date.IsZero() {
		t.Fatalf("expected server-assigned date")
	}

	wantBadges := []string{"First Timer", "Regular Donor"}
	if len(updated.Badges) != len(wantBadges) {
		t.Fatalf("expected badges %v, got %v", wantBadges, updated.Badges)
	}
	for i, b := range wantBadges {
		if updated.Badges[i] != b {
			t.Fatalf("expected badges %v, got %v", wantBadges, updated.Badges)
		}
	}
}

func TestAccountService_EnrollDonorByEmail_Upsert(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAccountService(repo)

	existing := seedAccount(t, repo, "bob", "bob@example.com", domain.RoleUser)

	upgraded, err := svc.EnrollDonorByEmail(context.Background(), "bob", "bob@example.com", "B+", "Delhi")
	if err != nil {
		t.Fatalf("upgrade failed: %v", err)
	}
	if upgraded.ID != existing.ID {
		t.Fatalf("existing account must be upgraded in place")
	}
	if !upgraded.IsDonor || upgraded.BloodGroup != "B+" {
		t.Fatalf("unexpected donor state: %+v", upgraded)
	}

	fresh, err := svc.EnrollDonorByEmail(context.Background(), "carol", "carol@example.com", "A-", "Chennai")
	if err != nil {
		t.Fatalf("fresh enrollment failed: %v", err)
	}
	if fresh.Role != domain.RoleDonor || !fresh.IsDonor {
		t.Fatalf("expected fresh donor account, got %+v", fresh)
	}
	if fresh.PasswordHash == "" {
		t.Fatalf("expected placeholder password hash")
	}
	if time.Since(fresh.CreatedAt) > time.Minute {
		t.Fatalf("unexpected createdAt: %v", fresh.CreatedAt)
	}
}
