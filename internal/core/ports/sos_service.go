package ports

import (
	"context"

	"github.com/bloodlink/coordination-api/internal/core/domain"
)

// SOSInput is an incoming emergency request.
type SOSInput struct {
	RequesterName string
	Email         string
	BloodGroup    string
	City          string
	Phone         string
}

// DonorAlert is one notification owed to a matched donor.
type DonorAlert struct {
	DonorEmail     string
	DonorName      string
	BloodGroup     string
	City           string
	RequesterName  string
	RequesterPhone string
}

// SOSService stores emergency requests and fans alerts out to matching
// donors.
type SOSService interface {
	// Create stores the request and returns it with MatchedDonors set to
	// the number of donors alerted.
	Create(ctx context.Context, in SOSInput) (*domain.SOSRequest, error)
	List(ctx context.Context) ([]*domain.SOSRequest, error)
}

// SOSDeduper suppresses identical re-submissions of the same emergency
// within a short window. Implementations must be safe to skip entirely
// (a nil deduper disables the check).
type SOSDeduper interface {
	IsDuplicate(ctx context.Context, in SOSInput) (bool, error)
	Mark(ctx context.Context, in SOSInput) error
}
