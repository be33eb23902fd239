package store

import (
	"context"
	"fmt"

	"flashdeck/internal/config"
	"flashdeck/internal/domain"

	"github.com/redis/go-redis/v9"
)

// RedisStore implements domain.Store using a Redis client. Values are written
// without expiration; durability across restarts is the server's concern
// (AOF/RDB persistence must be enabled on the target instance).
type RedisStore struct {
	client *redis.Client
}

// NewRedisClient creates and returns a new Redis client instance.
// It pings the server to ensure connectivity.
func NewRedisClient(redisCfg config.RedisConfig) (*redis.Client, error) {
	if redisCfg.Address == "" {
		return nil, fmt.Errorf("redis configuration is missing or address is empty")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     redisCfg.Address,
		Password: redisCfg.Password,
		DB:       redisCfg.DB,
	})

	ctx := context.Background()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", redisCfg.Address, err)
	}

	return client, nil
}

// NewRedisStore wraps a connected *redis.Client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Get retrieves an item from Redis.
// It translates redis.Nil to domain.ErrKeyNotFound.
func (r *RedisStore) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", domain.ErrKeyNotFound
		}
		return "", err
	}
	return val, nil
}

// Set writes an item to Redis with no expiration.
func (r *RedisStore) Set(ctx context.Context, key string, value string) error {
	return r.client.Set(ctx, key, value, 0).Err()
}

// Delete removes an item from Redis.
func (r *RedisStore) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

// Ping checks the health of the Redis server.
func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close closes the client connection.
func (r *RedisStore) Close() error {
	return r.client.Close()
}
