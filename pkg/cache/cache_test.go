package cache_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/alicebob/miniredis"
	"github.com/memes/primegen/pkg/cache"
)

const (
	TEST_CACHE_LOOP_LIMIT = 10
)

// The NoopCache should do nothing useful. This test confirms that runs can
// appear to be added successfully, but an attempt to recall the run will
// result in an empty string.
func TestNoopCache(t *testing.T) {
	ctx := context.Background()
	noop := cache.NewNoopCache()
	if noop == nil {
		t.Error("Noop cache is nil")
	}
	for i := uint32(0); i < TEST_CACHE_LOOP_LIMIT; i++ {
		expected := ""
		key := cache.RunKey("100", i)
		actual, err := noop.GetRun(ctx, key)
		if err != nil {
			t.Errorf("GetRun returned an error: %v", err)
		}
		if actual != expected {
			t.Errorf("Count %d: Expected %q received %q", i, expected, actual)
		}
		if err = noop.SetRun(ctx, key, "2,3,5,7,11"); err != nil {
			t.Errorf("Count %d: SetRun returned an error: %v", i, err)
		}
		actual, err = noop.GetRun(ctx, key)
		if err != nil {
			t.Errorf("GetRun returned an error: %v", err)
		}
		if actual != expected {
			t.Errorf("Count %d: Expected %q received %q", i, expected, actual)
		}
	}
}

// The RedisCache will use a Redis-like in-memory instance to cache runs. The
// test should confirm that a run can be added to the cache and recalled
// successfully.
func TestRedisCache(t *testing.T) {
	ctx := context.Background()
	mock, err := miniredis.Run()
	if err != nil {
		t.Errorf("Error running miniredis: %v", err)
	}
	redisCache := cache.NewRedisCache(ctx, mock.Addr())
	if redisCache == nil {
		t.Error("Redis cache is nil")
	}
	for i := uint32(1); i <= TEST_CACHE_LOOP_LIMIT; i++ {
		expected := ""
		key := cache.RunKey(fmt.Sprintf("%d", i*100), i)
		actual, err := redisCache.GetRun(ctx, key)
		if err != nil {
			t.Errorf("GetRun returned an error: %v", err)
		}
		if actual != expected {
			t.Errorf("Count %d: Expected %q received %q", i, expected, actual)
		}
		expected = fmt.Sprintf("%d,%d", i*100+1, i*100+3)
		if err = redisCache.SetRun(ctx, key, expected); err != nil {
			t.Errorf("Count %d: SetRun returned an error: %v", i, err)
		}
		actual, err = redisCache.GetRun(ctx, key)
		if err != nil {
			t.Errorf("GetRun returned an error: %v", err)
		}
		if actual != expected {
			t.Errorf("Count %d: Expected %q received %q", i, expected, actual)
		}
	}
}

func TestRunCodec(t *testing.T) {
	primes := []string{"2", "3", "5", "7", "11"}
	encoded := cache.EncodeRun(primes)
	if encoded != "2,3,5,7,11" {
		t.Errorf("Expected %q received %q", "2,3,5,7,11", encoded)
	}
	decoded := cache.DecodeRun(encoded)
	if len(decoded) != len(primes) {
		t.Fatalf("Expected %d entries, got %d", len(primes), len(decoded))
	}
	for i, p := range primes {
		if decoded[i] != p {
			t.Errorf("Index %d: expected %q received %q", i, p, decoded[i])
		}
	}
	if decoded := cache.DecodeRun(""); decoded != nil {
		t.Errorf("Expected nil for empty run, got %v", decoded)
	}
}
