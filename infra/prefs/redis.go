package prefs

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/CrestNiraj12/terminalfeed/domain"
)

const redisKeyPrefix = "terminalfeed:prefs:"

// RedisStore keeps each scope's preferences in one Redis hash.
type RedisStore struct {
	client *redis.Client
	hash   string
}

// NewRedisStore connects using a redis:// URL.
func NewRedisStore(ctx context.Context, rawURL, scope string) (*RedisStore, error) {
	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}
	return NewRedisStoreWithClient(client, scope), nil
}

// NewRedisStoreWithClient wraps an existing client.
func NewRedisStoreWithClient(client *redis.Client, scope string) *RedisStore {
	return &RedisStore{client: client, hash: redisKeyPrefix + scope}
}

// Get returns the value stored for key in this store's scope.
func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	v, err := s.client.HGet(ctx, s.hash, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", domain.ErrPreferenceNotFound
	}
	if err != nil {
		return "", fmt.Errorf("reading preference %q: %w", key, err)
	}
	return v, nil
}

// Set stores key=value in the scope hash.
func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.HSet(ctx, s.hash, key, value).Err(); err != nil {
		return fmt.Errorf("writing preference %q: %w", key, err)
	}
	return nil
}

// Close closes the client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
