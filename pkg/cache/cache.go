// Package cache provides a small TTL byte cache with in-memory and Redis
// backends, used to avoid refetching realtime market data on every request.
package cache

import (
	"context"
	"time"
)

// Service is the byte-oriented cache contract.
type Service interface {
	// GetBytes returns the cached value and whether it was present.
	GetBytes(ctx context.Context, key string) ([]byte, bool, error)
	// SetBytes stores value under key for ttl; ttl <= 0 means no expiry.
	SetBytes(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
