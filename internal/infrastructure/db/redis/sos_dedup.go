package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bloodlink/coordination-api/internal/core/ports"
)

const dedupTTL = time.Hour

// SOSDeduper suppresses identical SOS re-submissions backed by Redis.
// Key format: sos:dedup:<email>:<blood_group>:<city>
type SOSDeduper struct {
	client *redis.Client
}

// NewSOSDeduper creates an SOSDeduper wrapping the given Redis client.
func NewSOSDeduper(client *redis.Client) *SOSDeduper {
	return &SOSDeduper{client: client}
}

// IsDuplicate reports whether the same emergency was already submitted
// within the dedup window.
func (d *SOSDeduper) IsDuplicate(ctx context.Context, in ports.SOSInput) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(in)).Result()
	if err != nil {
		return false, fmt.Errorf("sos dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this request has been accepted (expires after dedupTTL).
func (d *SOSDeduper) Mark(ctx context.Context, in ports.SOSInput) error {
	return d.client.Set(ctx, d.key(in), "1", dedupTTL).Err()
}

func (d *SOSDeduper) key(in ports.SOSInput) string {
	return fmt.Sprintf("sos:dedup:%s:%s:%s",
		strings.ToLower(in.Email), in.BloodGroup, strings.ToLower(in.City))
}
