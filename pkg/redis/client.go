package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

var client *redis.Client

// Init connects the package-level client from a redis URL. The URL
// carries host and database; a non-empty password overrides the one
// embedded in the URL.
func Init(url, password string) error {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return err
	}

	if password != "" {
		opts.Password = password
	}

	client = redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return err
	}

	return nil
}

// SetClient swaps the package-level client, letting tests point the
// package at a miniredis instance.
func SetClient(c *redis.Client) {
	client = c
}

// GetClient exposes the underlying client for callers needing
// commands beyond the helpers below.
func GetClient() *redis.Client {
	return client
}

// Set writes a value under key with a TTL.
func Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return client.Set(ctx, key, value, expiration).Err()
}

// Get reads the value under key; absent keys return redis.Nil.
func Get(ctx context.Context, key string) (string, error) {
	return client.Get(ctx, key).Result()
}

// Del drops a key.
func Del(ctx context.Context, key string) error {
	return client.Del(ctx, key).Err()
}

// SetNX writes the key only when absent, reporting whether the write
// happened. Used as a lightweight request lock.
func SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) (bool, error) {
	return client.SetNX(ctx, key, value, expiration).Result()
}
