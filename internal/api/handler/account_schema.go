package handler

import (
	"time"

	"github.com/bloodlink/coordination-api/internal/core/domain"
)

// messageResponse is the standard success envelope carrying a message.
type messageResponse struct {
	Message string `json:"message"`
}

// --- Request types ---

type registerRequest struct {
	Name       string `json:"name"       validate:"required"`
	Email      string `json:"email"      validate:"required,email"`
	Password   string `json:"password"   validate:"required"`
	Role       string `json:"role"       validate:"omitempty,oneof=user donor admin"`
	BloodGroup string `json:"bloodGroup"`
	Phone      string `json:"phone"`
	City       string `json:"city"`
	IsDonor    bool   `json:"isDonor"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type updateProfileRequest struct {
	Name       *string `json:"name"`
	Phone      *string `json:"phone"`
	City       *string `json:"city"`
	BloodGroup *string `json:"bloodGroup"`
}

type changePasswordRequest struct {
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

type registerDonorRequest struct {
	BloodGroup string `json:"bloodGroup" validate:"required"`
	City       string `json:"city"       validate:"required"`
	Phone      string `json:"phone"`
}

type medicalRecordRequest struct {
	Weight              float64    `json:"weight"`
	BloodPressure       string     `json:"bloodPressure"`
	Hemoglobin          float64    `json:"hemoglobin"`
	LastDonationDate    *time.Time `json:"lastDonationDate"`
	EligibleForDonation bool       `json:"eligibleForDonation"`
	MedicalNotes        string     `json:"medicalNotes"`
	CheckupBy           string     `json:"checkupBy" validate:"required"`
}

type donationRequest struct {
	Date       *time.Time `json:"date"`
	Location   string     `json:"location" validate:"required"`
	QuantityML int        `json:"quantityML"`
}

type enrollDonorRequest struct {
	Name       string `json:"name"       validate:"required"`
	Email      string `json:"email"      validate:"required,email"`
	BloodGroup string `json:"bloodGroup" validate:"required"`
	City       string `json:"city"       validate:"required"`
}

// --- Response types ---

// userSummary is the compact account representation returned by
// register and login. Never carries the password hash.
type userSummary struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	IsDonor    bool   `json:"isDonor"`
	BloodGroup string `json:"bloodGroup,omitempty"`
	City       string `json:"city,omitempty"`
}

type authResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    userSummary `json:"user"`
}

type userResponse struct {
	Message string          `json:"message"`
	User    *domain.Account `json:"user"`
}

type medicalRecordsResponse struct {
	Message        string                 `json:"message"`
	MedicalRecords []domain.MedicalRecord `json:"medicalRecords"`
}

func summarize(a *domain.Account) userSummary {
	return userSummary{
		ID:         a.ID,
		Name:       a.Name,
		Email:      a.Email,
		Role:       a.Role,
		IsDonor:    a.IsDonor,
		BloodGroup: a.BloodGroup,
		City:       a.City,
	}
}
