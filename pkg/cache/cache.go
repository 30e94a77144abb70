// Package cache defines a common interface for cache implementations that
// can store and recall generated prime runs, keyed by the run's start bound
// and requested count.
package cache

import (
	"context"
	"strconv"
	"strings"

	"github.com/gomodule/redigo/redis"
)

// Cache defines an interface for a cache implementation that can be used to
// store a completed prime run for subsequent lookup requests.
type Cache interface {
	// Return the run that was stored for key (or "" if unset) and an
	// error if the implementation failed.
	// NOTE: a cache miss *should not* return an error.
	GetRun(ctx context.Context, key string) (string, error)
	// Store the encoded run with the provided key, returning an error if
	// the implementation failed.
	SetRun(ctx context.Context, key string, run string) error
}

// RunKey builds the canonical cache key for a run: the decimal start bound
// and the requested count.
func RunKey(start string, count uint32) string {
	return start + ":" + strconv.FormatUint(uint64(count), 10)
}

// EncodeRun flattens an ordered list of decimal primes into a single cache
// value.
func EncodeRun(primes []string) string {
	return strings.Join(primes, ",")
}

// DecodeRun splits a cache value back into the ordered list of decimal
// primes; an empty value decodes to nil.
func DecodeRun(run string) []string {
	if run == "" {
		return nil
	}
	return strings.Split(run, ",")
}

// NoopCache implements Cache interface without any real cacheing.
type NoopCache struct{}

// Always returns an empty run and no error for every key.
func (n *NoopCache) GetRun(ctx context.Context, key string) (string, error) {
	return "", nil
}

// Ignores the run and returns nil error.
func (n *NoopCache) SetRun(ctx context.Context, key string, run string) error {
	return nil
}

// Creates a no-operation Cache implementation that satisfies the interface
// requirements without performing any real caching. All runs are silently
// dropped by SetRun and calls to GetRun always return an empty string.
func NewNoopCache() *NoopCache {
	return &NoopCache{}
}

// RedisCache implements Cache interface backed by a Redis store.
type RedisCache struct {
	*redis.Pool
}

type RedisCacheOption func(*RedisCache)

// Return a new Cache implementation using Redis.
func NewRedisCache(ctx context.Context, endpoint string, options ...RedisCacheOption) *RedisCache {
	cache := &RedisCache{
		&redis.Pool{
			DialContext: func(ctx context.Context) (redis.Conn, error) {
				return redis.DialContext(ctx, "tcp", endpoint)
			},
		},
	}
	for _, option := range options {
		option(cache)
	}
	return cache
}

// Returns the run stored in Redis under key, if present, or an empty string.
func (r *RedisCache) GetRun(ctx context.Context, key string) (string, error) {
	conn := r.Get()
	defer conn.Close()

	run, err := redis.String(conn.Do("GET", key))
	if err == redis.ErrNil {
		// A cache miss is *NOT* an error to propagate
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return run, nil
}

// Store the encoded run in Redis.
func (r *RedisCache) SetRun(ctx context.Context, key string, run string) error {
	conn := r.Get()
	defer conn.Close()
	_, err := conn.Do("SET", key, run)
	if err != nil {
		return err
	}
	return nil
}
