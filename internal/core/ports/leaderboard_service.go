package ports

import "context"

// LeaderboardEntry is one ranked donor.
type LeaderboardEntry struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	BloodGroup     string   `json:"bloodGroup,omitempty"`
	City           string   `json:"city,omitempty"`
	Badges         []string `json:"badges"`
	TotalDonations int      `json:"totalDonations"`
}

// LeaderboardService ranks donors by completed donations, descending.
type LeaderboardService interface {
	Top(ctx context.Context) ([]LeaderboardEntry, error)
	// Invalidate drops any cached ranking; called after a donation is
	// recorded.
	Invalidate(ctx context.Context)
}

// LeaderboardCache stores a computed ranking for a short TTL. A nil
// cache disables caching without changing results.
type LeaderboardCache interface {
	Get(ctx context.Context) ([]LeaderboardEntry, bool, error)
	Set(ctx context.Context, entries []LeaderboardEntry) error
	Drop(ctx context.Context) error
}
