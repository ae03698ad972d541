package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisPrefix namespaces every key written by the redis store
const DefaultRedisPrefix = "mesa:"

// RedisConfig holds configuration for the Redis store
type RedisConfig struct {
	// Redis client
	RedisClient *redis.Client

	// Prefix is prepended to every key. Empty means DefaultRedisPrefix.
	Prefix string
}

// redisStore implements the Store interface using Redis strings
type redisStore struct {
	client *redis.Client
	prefix string
}

// NewRedis creates a new Redis-backed store
func NewRedis(cfg *RedisConfig) (*redisStore, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	prefix := cfg.Prefix
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}

	return &redisStore{
		client: cfg.RedisClient,
		prefix: prefix,
	}, nil
}

func (r *redisStore) key(key string) string {
	return r.prefix + key
}

// Get retrieves a value from Redis
func (r *redisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, r.key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to get %s: %w", key, err)
	}
	return value, nil
}

// Set stores a value in Redis without expiration
func (r *redisStore) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, r.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

// Delete removes a value from Redis
func (r *redisStore) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}
