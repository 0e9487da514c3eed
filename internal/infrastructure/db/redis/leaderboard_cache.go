package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bloodlink/coordination-api/internal/core/ports"
)

const (
	leaderboardKey = "leaderboard:top"
	leaderboardTTL = time.Minute
)

// LeaderboardCache stores the computed donor ranking in Redis for a
// short TTL. Recording a donation drops the key so the next read
// recomputes.
type LeaderboardCache struct {
	client *redis.Client
}

// NewLeaderboardCache creates a LeaderboardCache wrapping the given Redis client.
func NewLeaderboardCache(client *redis.Client) *LeaderboardCache {
	return &LeaderboardCache{client: client}
}

func (c *LeaderboardCache) Get(ctx context.Context) ([]ports.LeaderboardEntry, bool, error) {
	raw, err := c.client.Get(ctx, leaderboardKey).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("leaderboard cache get: %w", err)
	}

	var entries []ports.LeaderboardEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, false, fmt.Errorf("leaderboard cache decode: %w", err)
	}
	return entries, true, nil
}

func (c *LeaderboardCache) Set(ctx context.Context, entries []ports.LeaderboardEntry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("leaderboard cache encode: %w", err)
	}
	return c.client.Set(ctx, leaderboardKey, raw, leaderboardTTL).Err()
}

func (c *LeaderboardCache) Drop(ctx context.Context) error {
	return c.client.Del(ctx, leaderboardKey).Err()
}
