package service

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	"github.com/bloodlink/coordination-api/internal/api/metrics"
	"github.com/bloodlink/coordination-api/internal/core/ports"
)

// LeaderboardService ranks donors by completed donation count. Rankings
// are served from the cache when one is configured; Invalidate drops
// the cached copy after a donation is recorded.
type LeaderboardService struct {
	accounts ports.AccountRepository
	cache    ports.LeaderboardCache // nil disables caching
	log      zerolog.Logger
}

func NewLeaderboardService(accounts ports.AccountRepository, cache ports.LeaderboardCache, log zerolog.Logger) *LeaderboardService {
	return &LeaderboardService{accounts: accounts, cache: cache, log: log}
}

func (s *LeaderboardService) Top(ctx context.Context) ([]ports.LeaderboardEntry, error) {
	if s.cache != nil {
		entries, ok, err := s.cache.Get(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("leaderboard cache read failed, recomputing")
		} else if ok {
			metrics.LeaderboardCacheTotal.WithLabelValues("hit").Inc()
			return entries, nil
		}
		metrics.LeaderboardCacheTotal.WithLabelValues("miss").Inc()
	}

	donors, err := s.accounts.List(ctx, true)
	if err != nil {
		return nil, err
	}

	entries := make([]ports.LeaderboardEntry, 0, len(donors))
	for _, d := range donors {
		badges := d.Badges
		if badges == nil {
			badges = []string{}
		}
		entries = append(entries, ports.LeaderboardEntry{
			ID:             d.ID,
			Name:           d.Name,
			BloodGroup:     d.BloodGroup,
			City:           d.City,
			Badges:         badges,
			TotalDonations: len(d.DonationHistory),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalDonations > entries[j].TotalDonations
	})

	if s.cache != nil {
		if err := s.cache.Set(ctx, entries); err != nil {
			s.log.Warn().Err(err).Msg("leaderboard cache write failed")
		}
	}
	return entries, nil
}

func (s *LeaderboardService) Invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Drop(ctx); err != nil {
		s.log.Warn().Err(err).Msg("leaderboard cache drop failed")
	}
}
