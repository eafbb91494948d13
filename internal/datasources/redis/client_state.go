// Package redis stores per-client state in Redis.
package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/neuravox/newsfeed/internal/datasources"
	"github.com/redis/go-redis/v9"
)

var _ datasources.ClientStateStore = (*ClientStateStore)(nil)

type ClientStateStore struct {
	client redis.UniversalClient
}

func NewClientStateStore(client redis.UniversalClient) *ClientStateStore {
	return &ClientStateStore{client: client}
}

// Connect accepts either a redis:// URL or a bare host:port address.
func Connect(ctx context.Context, redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		opt = &redis.Options{Addr: redisURL}
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("checking Redis connection: %w", err)
	}
	return client, nil
}

func (s *ClientStateStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", datasources.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("reading client state %s: %w", key, err)
	}
	return value, nil
}

func (s *ClientStateStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("writing client state %s: %w", key, err)
	}
	return nil
}

func (s *ClientStateStore) Remove(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("removing client state %s: %w", key, err)
	}
	return nil
}
