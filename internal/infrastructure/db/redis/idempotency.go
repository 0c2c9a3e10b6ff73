package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const idempotencyTTL = 24 * time.Hour

// IdempotencyStore remembers which health entry a submission created.
// Key format: idem:entry:<user_id>:<idempotency_key>
type IdempotencyStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewIdempotencyStore creates an IdempotencyStore wrapping the given Redis client.
func NewIdempotencyStore(client *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{client: client, ttl: idempotencyTTL}
}

// Lookup returns the entry id stored for the key, or 0 when the key is unseen
// or expired.
func (s *IdempotencyStore) Lookup(ctx context.Context, userID int64, key string) (int64, error) {
	val, err := s.client.Get(ctx, s.key(userID, key)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("idempotency lookup: %w", err)
	}

	id, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("idempotency lookup: corrupt value %q: %w", val, err)
	}
	return id, nil
}

// Remember records the entry id for the key (expires after ttl). The first
// writer wins; a concurrent second submission does not overwrite it.
func (s *IdempotencyStore) Remember(ctx context.Context, userID int64, key string, entryID int64) error {
	if err := s.client.SetNX(ctx, s.key(userID, key), entryID, s.ttl).Err(); err != nil {
		return fmt.Errorf("idempotency remember: %w", err)
	}
	return nil
}

func (s *IdempotencyStore) key(userID int64, key string) string {
	return fmt.Sprintf("idem:entry:%d:%s", userID, key)
}
