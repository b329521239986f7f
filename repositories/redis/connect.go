package redis

import (
	// Go Internal Packages
	"context"

	// External Packages
	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"
)

const connectAttempts = 3

// Connect connects to the redis db and returns the client.
func Connect(ctx context.Context, uri, password string) (*redis.Client, error) {
	// Configure the Redis client
	rdb := redis.NewClient(&redis.Options{
		Addr:     uri,      // Redis server address
		Password: password, // Redis password
		DB:       0,        // Default DB
	})

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), connectAttempts), ctx)
	ping := func() error { return rdb.Ping(ctx).Err() }
	if err := backoff.Retry(ping, policy); err != nil {
		_ = rdb.Close()
		return nil, err
	}
	return rdb, nil
}
