package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// guardTTL bounds how long a run can hold its slot. A crashed worker frees
// the owner automatically once the key expires.
const guardTTL = 2 * time.Minute

// RunGuard suppresses duplicate simulation runs per owner using Redis.
// Key format: simrun:<owner_id>
type RunGuard struct {
	client *redis.Client
}

// NewRunGuard creates a RunGuard wrapping the given Redis client.
func NewRunGuard(client *redis.Client) *RunGuard {
	return &RunGuard{client: client}
}

// TryAcquire claims the owner's run slot. Returns false when a run is
// already in flight (a double-clicked submit lands here).
func (g *RunGuard) TryAcquire(ctx context.Context, ownerID string) (bool, error) {
	ok, err := g.client.SetNX(ctx, g.key(ownerID), "1", guardTTL).Result()
	if err != nil {
		return false, fmt.Errorf("run guard acquire: %w", err)
	}
	return ok, nil
}

// Release frees the owner's run slot after the run completes.
func (g *RunGuard) Release(ctx context.Context, ownerID string) error {
	return g.client.Del(ctx, g.key(ownerID)).Err()
}

func (g *RunGuard) key(ownerID string) string {
	return "simrun:" + ownerID
}
