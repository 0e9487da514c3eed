package domain

import "time"

// SOSStatus tracks the handling state of an emergency request.
type SOSStatus string

const (
	SOSPending  SOSStatus = "pending"
	SOSResolved SOSStatus = "resolved"
)

// SOSRequest is an emergency call for blood. Matching against donors is
// a linear filter on blood group and city.
type SOSRequest struct {
	ID            string    `json:"id"`
	RequesterName string    `json:"requesterName"`
	Email         string    `json:"email"`
	BloodGroup    string    `json:"bloodGroup"`
	City          string    `json:"city"`
	Phone         string    `json:"phone,omitempty"`
	Status        SOSStatus `json:"status"`
	MatchedDonors int       `json:"matchedDonors"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Matches reports whether the donor account satisfies the request:
// a donor with the same blood group in the same city.
func (r *SOSRequest) Matches(a *Account) bool {
	return a.IsDonor && a.BloodGroup == r.BloodGroup && a.City == r.City
}
