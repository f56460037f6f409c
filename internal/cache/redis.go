package cache

import (
	"context"
	"fmt"
	"time"

	"inventory-sync/config"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects and pings the server so a bad address fails at startup.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     10,
		MinIdleConns: 2,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.Addr, err)
	}
	return rdb, nil
}

// RedisDeduper grants at most one notification per (recipient, alert key) inside
// the cool-down window. SETNX with a TTL makes the check and the claim atomic
// across every instance sharing the Redis server.
type RedisDeduper struct {
	client *redis.Client
	prefix string
}

func NewRedisDeduper(client *redis.Client) *RedisDeduper {
	return &RedisDeduper{client: client, prefix: "inventory:notify"}
}

func (d *RedisDeduper) key(recipient, alertKey string) string {
	return fmt.Sprintf("%s:%s:%s", d.prefix, recipient, alertKey)
}

// Acquire reports whether the caller may send message now.
func (d *RedisDeduper) Acquire(ctx context.Context, recipient, alertKey, message string, window time.Duration) (bool, error) {
	ok, err := d.client.SetNX(ctx, d.key(recipient, alertKey), message, window).Result()
	if err != nil {
		return false, fmt.Errorf("claim notification slot: %w", err)
	}
	return ok, nil
}

func (d *RedisDeduper) Release(ctx context.Context, recipient, alertKey string, _ time.Duration) error {
	if err := d.client.Del(ctx, d.key(recipient, alertKey)).Err(); err != nil {
		return fmt.Errorf("release notification slot: %w", err)
	}
	return nil
}
