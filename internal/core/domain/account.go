package domain

import "time"

const (
	RoleUser  = "user"
	RoleDonor = "donor"
	RoleAdmin = "admin"
)

// ValidRole reports whether role is one of the known account roles.
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleDonor || role == RoleAdmin
}

// Account models a registered person: plain users, donors, and admins.
// PasswordHash is never serialized; every representation leaving the
// service strips it.
type Account struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Email           string          `json:"email"`
	PasswordHash    string          `json:"-"`
	Role            string          `json:"role"`
	IsDonor         bool            `json:"isDonor"`
	BloodGroup      string          `json:"bloodGroup,omitempty"`
	Phone           string          `json:"phone,omitempty"`
	City            string          `json:"city,omitempty"`
	MedicalRecords  []MedicalRecord `json:"medicalRecords"`
	DonationHistory []Donation      `json:"donationHistory"`
	Badges          []string        `json:"badges"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// MedicalRecord is one checkup entry. Records are append-only: once
// stored they are never edited or removed.
type MedicalRecord struct {
	Weight              float64    `json:"weight"`
	BloodPressure       string     `json:"bloodPressure"`
	Hemoglobin          float64    `json:"hemoglobin"`
	LastDonationDate    *time.Time `json:"lastDonationDate,omitempty"`
	EligibleForDonation bool       `json:"eligibleForDonation"`
	MedicalNotes        string     `json:"medicalNotes,omitempty"`
	CheckupBy           string     `json:"checkupBy"`
	RecordedAt          time.Time  `json:"recordedAt"`
}

// Donation is one completed donation, counted by the leaderboard.
type Donation struct {
	Date       time.Time `json:"date"`
	Location   string    `json:"location"`
	QuantityML int       `json:"quantityML"`
}

// EligibleForDonation derives eligibility from the most recent medical
// record only, never an aggregate. Accounts with no records are not
// eligible.
func (a *Account) EligibleForDonation() bool {
	if len(a.MedicalRecords) == 0 {
		return false
	}
	return a.MedicalRecords[len(a.MedicalRecords)-1].EligibleForDonation
}

// BadgeFor returns the badge earned at the given donation count, or ""
// when the count does not cross a badge threshold.
func BadgeFor(totalDonations int) string {
	switch {
	case totalDonations >= 5:
		return "Hero Donor"
	case totalDonations >= 3:
		return "Regular Donor"
	case totalDonations >= 1:
		return "First Timer"
	}
	return ""
}
