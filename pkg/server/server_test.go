package server_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/alicebob/miniredis"
	"github.com/memes/primegen/pkg/cache"
	"github.com/memes/primegen/pkg/generated"
	"github.com/memes/primegen/pkg/server"
)

func testGeneratePrimes(ctx context.Context, t *testing.T, primeServer *server.PrimeServer, start string, count uint32, expected []string) {
	t.Helper()
	actual, err := primeServer.GeneratePrimes(ctx, &generated.GeneratePrimesRequest{
		Start: start,
		Count: count,
	})
	if err != nil {
		t.Fatalf("Error calling GeneratePrimes: %v", err)
	}
	if actual.Start != start {
		t.Errorf("Expected start %q echoed, got %q", start, actual.Start)
	}
	if expected != nil {
		if len(actual.Primes) != len(expected) {
			t.Fatalf("Expected %d primes, got %d", len(expected), len(actual.Primes))
		}
		for i, p := range expected {
			if actual.Primes[i] != p {
				t.Errorf("Index %d: expected %s got %s", i, p, actual.Primes[i])
			}
		}
	}
}

func TestGeneratePrimes_WithNoopCache(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	primeServer, err := server.NewPrimeServer(server.WithCache(cache.NewNoopCache()))
	if err != nil {
		t.Fatalf("Error calling NewPrimeServer: %v", err)
	}
	testGeneratePrimes(ctx, t, primeServer, "0", 5, []string{"2", "3", "5", "7", "11"})
	testGeneratePrimes(ctx, t, primeServer, "14", 1, []string{"17"})
	testGeneratePrimes(ctx, t, primeServer, "90", 5, []string{"97", "101", "103", "107", "109"})
}

func TestGeneratePrimes_WithRedisCache(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	mock, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Error running miniredis: %v", err)
	}
	primeServer, err := server.NewPrimeServer(server.WithCache(cache.NewRedisCache(ctx, mock.Addr())))
	if err != nil {
		t.Fatalf("Error calling NewPrimeServer: %v", err)
	}
	expected := []string{"2", "3", "5", "7", "11"}
	// Second call should be served from the cache with an identical run.
	testGeneratePrimes(ctx, t, primeServer, "0", 5, expected)
	testGeneratePrimes(ctx, t, primeServer, "0", 5, expected)
}

// A request spanning the uint64 ceiling must hand off from the deterministic
// engine to the arbitrary-precision engine without gaps or duplicates.
func TestGeneratePrimes_AcrossUint64Ceiling(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	primeServer, err := server.NewPrimeServer()
	if err != nil {
		t.Fatalf("Error calling NewPrimeServer: %v", err)
	}
	start := "18446744073709551520"
	actual, err := primeServer.GeneratePrimes(ctx, &generated.GeneratePrimesRequest{
		Start: start,
		Count: 3,
	})
	if err != nil {
		t.Fatalf("Error calling GeneratePrimes: %v", err)
	}
	if len(actual.Primes) != 3 {
		t.Fatalf("Expected 3 primes, got %d", len(actual.Primes))
	}
	// The largest uint64 prime must open the run.
	if actual.Primes[0] != "18446744073709551557" {
		t.Errorf("Expected run to open with 18446744073709551557, got %s", actual.Primes[0])
	}
	previous, ok := new(big.Int).SetString(start, 10)
	if !ok {
		t.Fatalf("Error parsing start %q", start)
	}
	for i, s := range actual.Primes {
		p, ok := new(big.Int).SetString(s, 10)
		if !ok {
			t.Fatalf("Index %d: error parsing %q", i, s)
		}
		if p.Cmp(previous) <= 0 {
			t.Errorf("Index %d: %s is not strictly greater than %s", i, p, previous)
		}
		if !p.ProbablyPrime(0) {
			t.Errorf("Index %d: %s failed the Baillie-PSW oracle", i, p)
		}
		previous = p
	}
}

func TestGeneratePrimes_MalformedStart(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	primeServer, err := server.NewPrimeServer()
	if err != nil {
		t.Fatalf("Error calling NewPrimeServer: %v", err)
	}
	if _, err := primeServer.GeneratePrimes(ctx, &generated.GeneratePrimesRequest{
		Start: "not-a-number",
		Count: 1,
	}); err == nil {
		t.Error("Expected an error for a malformed start bound")
	}
}

func TestGeneratePrimes_CountTooLarge(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	primeServer, err := server.NewPrimeServer()
	if err != nil {
		t.Fatalf("Error calling NewPrimeServer: %v", err)
	}
	if _, err := primeServer.GeneratePrimes(ctx, &generated.GeneratePrimesRequest{
		Start: "0",
		Count: server.MaxRunCount + 1,
	}); err == nil {
		t.Error("Expected an error for an oversized count")
	}
}
