// Package idempotency remembers completed side effects in Redis so a
// repeated invocation can return the first result instead of redoing work.
package idempotency

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// pending marks a key whose side effect is still running.
const pending = "pending"

type RedisStore struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewRedisStore(rdb redis.Cmdable, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

// Lookup returns the value stored under key, if any.
func (s *RedisStore) Lookup(ctx context.Context, key string) (string, bool, error) {
	val, err := s.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("idempotency lookup %s: %w", key, err)
	}
	return val, true, nil
}

// Reserve claims key before the side effect runs. When the key is already
// held it returns the value stored under it, which is empty while the holder
// is still running.
func (s *RedisStore) Reserve(ctx context.Context, key string) (bool, string, error) {
	ok, err := s.rdb.SetNX(ctx, key, pending, s.ttl).Result()
	if err != nil {
		return false, "", fmt.Errorf("idempotency reserve %s: %w", key, err)
	}
	if ok {
		return true, "", nil
	}

	val, found, err := s.Lookup(ctx, key)
	if err != nil {
		return false, "", err
	}
	if !found || val == pending {
		return false, "", nil
	}
	return false, val, nil
}

// Complete replaces the reservation on key with the final value.
func (s *RedisStore) Complete(ctx context.Context, key, value string) error {
	if err := s.rdb.Set(ctx, key, value, s.ttl).Err(); err != nil {
		return fmt.Errorf("idempotency complete %s: %w", key, err)
	}
	return nil
}

// Release drops a reservation so the next invocation can run again.
func (s *RedisStore) Release(ctx context.Context, key string) error {
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("idempotency release %s: %w", key, err)
	}
	return nil
}

// NewClient connects to addr and verifies the connection.
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return rdb, nil
}
