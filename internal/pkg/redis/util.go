package redis

import (
	"context"
	"errors"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss covers both absent keys and an unavailable cache store:
// callers must treat either as "go to the source of truth".
var ErrCacheMiss = errors.New("cache miss")

// SetWithExpiration sets a key with a TTL.
func SetWithExpiration(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if Rdb == nil {
		return nil
	}
	return Rdb.Set(ctx, key, value, expiration).Err()
}

// GetValue returns the string value for key, empty string when absent.
func GetValue(ctx context.Context, key string) (string, error) {
	if Rdb == nil {
		return "", nil
	}
	value, err := Rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}
	return value, nil
}

// GetJSON loads a cached JSON value into dest. Any store error is a miss.
func GetJSON(ctx context.Context, key string, dest interface{}) error {
	if Rdb == nil {
		return ErrCacheMiss
	}
	raw, err := Rdb.Get(ctx, key).Bytes()
	if err != nil {
		return ErrCacheMiss
	}
	if err = json.Unmarshal(raw, dest); err != nil {
		return ErrCacheMiss
	}
	return nil
}

// SetJSON stores value as JSON with a TTL, best effort.
func SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if Rdb == nil {
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return Rdb.Set(ctx, key, raw, expiration).Err()
}

// DeleteKey removes a key.
func DeleteKey(ctx context.Context, key string) error {
	if Rdb == nil {
		return nil
	}
	return Rdb.Del(ctx, key).Err()
}
