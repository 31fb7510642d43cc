package idempotency

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store tracks idempotency keys in Redis via SET NX with a TTL.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

// RequestKey namespaces a client-supplied idempotency key by route.
func RequestKey(route, key string) string {
	return fmt.Sprintf("idem:%s:%s", route, key)
}

// Seen reports whether the key was already recorded; the first caller records
// it and gets false.
func (s *Store) Seen(ctx context.Context, key string) (bool, error) {
	ok, err := s.rdb.SetNX(ctx, key, "1", s.ttl).Result()
	if err != nil {
		return false, err
	}
	return !ok, nil
}
