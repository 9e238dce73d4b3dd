package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const tickDedupTTL = time.Hour

// TickDedup remembers which tick batch entries were queued so a retried batch
// does not decrement the same timer twice. Key format: tick:<tick_id>:<index>
type TickDedup struct {
	client *redis.Client
	ttl    time.Duration
}

func NewTickDedup(client *redis.Client) *TickDedup {
	return &TickDedup{client: client, ttl: tickDedupTTL}
}

// FirstSeen claims entry and reports whether this is its first appearance.
// The check and the mark are a single SET NX, so concurrent retries race safely.
func (d *TickDedup) FirstSeen(ctx context.Context, entry string) (bool, error) {
	ok, err := d.client.SetNX(ctx, d.key(entry), "1", d.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("tick dedup: %w", err)
	}
	return ok, nil
}

// Forget drops the claim on entry so a retry can queue it again.
func (d *TickDedup) Forget(ctx context.Context, entry string) error {
	if err := d.client.Del(ctx, d.key(entry)).Err(); err != nil {
		return fmt.Errorf("tick dedup forget: %w", err)
	}
	return nil
}

func (d *TickDedup) key(entry string) string {
	return "tick:" + entry
}
