package redis

import (
	"context"

	"reeldine/internal/api/config"

	"github.com/redis/go-redis/v9"
)

var Rdb *redis.Client

// InitRedis initializes the Redis client connection.
func InitRedis(cfg config.RedisConfig) error {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})

	ctx := context.Background()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return err
	}

	Rdb = rdb
	return nil
}

// GetRdbClient returns the redis client, nil when the store is unavailable.
func GetRdbClient() *redis.Client {
	return Rdb
}
