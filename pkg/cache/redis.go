package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/matzehuels/wordladder/pkg/httputil"
)

// ErrUnavailable is returned when Redis cannot be reached or fails a command.
var ErrUnavailable = errors.New("redis unavailable")

// Connection retry settings for NewRedisCache.
var (
	pingAttempts = 3
	pingDelay    = 200 * time.Millisecond
)

// RedisConfig configures a RedisCache.
type RedisConfig struct {
	Addr     string // host:port
	Password string
	DB       int
	// Prefix is prepended to every key, e.g. "wordladder:".
	Prefix string
}

// RedisCache stores entries in Redis using native key expiry.
type RedisCache struct {
	client *redis.Client
	prefix string
}

// NewRedisCache connects to Redis and verifies the connection with PING,
// retrying transient failures.
func NewRedisCache(ctx context.Context, cfg RedisConfig) (*RedisCache, error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("redis cache: address is required")
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	err := httputil.Retry(ctx, pingAttempts, pingDelay, func() error {
		if err := client.Ping(ctx).Err(); err != nil {
			return &httputil.RetryableError{Err: fmt.Errorf("%w: ping %s: %v", ErrUnavailable, cfg.Addr, err)}
		}
		return nil
	})
	if err != nil {
		_ = client.Close()
		return nil, err
	}
	return NewRedisCacheFromClient(client, cfg.Prefix), nil
}

// NewRedisCacheFromClient wraps an existing client without checking it.
func NewRedisCacheFromClient(client *redis.Client, prefix string) *RedisCache {
	return &RedisCache{client: client, prefix: prefix}
}

// Get retrieves a value. A missing key is a miss, not an error.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: get: %v", ErrUnavailable, err)
	}
	return data, true, nil
}

// Set stores a value. A ttl of zero keeps the key without expiry.
func (c *RedisCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.prefix+key, data, ttl).Err(); err != nil {
		return fmt.Errorf("%w: set: %v", ErrUnavailable, err)
	}
	return nil
}

// Delete removes a key.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, c.prefix+key).Err(); err != nil {
		return fmt.Errorf("%w: delete: %v", ErrUnavailable, err)
	}
	return nil
}

// Close closes the underlying client.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

var _ Cache = (*RedisCache)(nil)
