package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/johnquangdev/contact-qa/pkg/config"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

// NewRedisClient connects to Redis and verifies the connection
func NewRedisClient(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return client, nil
}

// RedisStore is a SessionStorage backed by one Redis hash per namespace
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a Redis-backed store. Namespaces expire ttl after
// their last write.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func redisKey(namespace string) string {
	return keyPrefix + namespace
}

// Get retrieves a value from the namespace hash
func (s *RedisStore) Get(ctx context.Context, namespace, key string) (string, bool, error) {
	value, err := s.client.HGet(ctx, redisKey(namespace), key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get %s from %s: %w", key, namespace, err)
	}
	return value, true, nil
}

// Set writes a value and refreshes the namespace expiration
func (s *RedisStore) Set(ctx context.Context, namespace, key, value string) error {
	k := redisKey(namespace)

	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, k, key, value)
	pipe.Expire(ctx, k, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to set %s in %s: %w", key, namespace, err)
	}
	return nil
}

// Delete removes fields from the namespace hash
func (s *RedisStore) Delete(ctx context.Context, namespace string, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := s.client.HDel(ctx, redisKey(namespace), keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete keys from %s: %w", namespace, err)
	}
	return nil
}
