package primegen

import (
	"flag"
	"fmt"
	"log"
	"math"
	"math/big"
	"os"
	"testing"

	"github.com/go-logr/stdr"
)

const (
	EXHAUSTIVE_AGREEMENT_LIMIT = 100000
	HIGH_WINDOW_BASE           = 99990000
	HIGH_WINDOW_LIMIT          = 100000000
	BENCHMARK_EXPONENT_LIMIT   = 16
	// The largest prime representable in a uint64 is 2^64 - 59.
	LARGEST_PRIME_U64 = 18446744073709551557
)

func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Verbose() {
		stdr.SetVerbosity(2)
		Logger = stdr.New(log.New(os.Stderr, "", log.LstdFlags))
	}
	os.Exit(m.Run())
}

// Reference check by trial division; only suitable for test comparisons.
func bruteIsPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for i := uint64(3); i*i <= n; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// Every member of the trial-division table must be reported prime.
func TestIsPrime64_SmallPrimeTable(t *testing.T) {
	for _, p := range smallPrimes64 {
		p := p
		t.Run(fmt.Sprintf("n=%d", p), func(t *testing.T) {
			t.Parallel()
			if !IsPrime64(p) {
				t.Errorf("Expected %d to be prime", p)
			}
		})
	}
}

func TestIsPrime64_Composites(t *testing.T) {
	composites := []uint64{
		0, 1, 4, 100, 1000000,
		// Carmichael numbers; a plain Fermat test would pass these.
		561, 41041, 252601,
		// Strong pseudoprime to bases 2, 3, 5 and 7 with no factor
		// below 38, so only the Miller-Rabin stage can reject it.
		3215031751,
		// 2^63-1 and 2^64-1 are both composite.
		9223372036854775807, 18446744073709551615,
	}
	for _, n := range composites {
		n := n
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()
			if IsPrime64(n) {
				t.Errorf("Expected %d to be composite", n)
			}
		})
	}
}

func TestIsPrime64_LargePrimes(t *testing.T) {
	primes := []uint64{
		2305843009213693951, // 2^61-1, Mersenne
		LARGEST_PRIME_U64,
	}
	for _, n := range primes {
		n := n
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()
			if !IsPrime64(n) {
				t.Errorf("Expected %d to be prime", n)
			}
		})
	}
}

// The deterministic test must agree with trial division exhaustively over a
// dense low range and over a window close to 10^8.
func TestIsPrime64_AgreesWithTrialDivision(t *testing.T) {
	t.Parallel()
	for n := uint64(0); n < EXHAUSTIVE_AGREEMENT_LIMIT; n++ {
		if actual, expected := IsPrime64(n), bruteIsPrime(n); actual != expected {
			t.Fatalf("Checking n=%d: expected %t got %t", n, expected, actual)
		}
	}
	for n := uint64(HIGH_WINDOW_BASE); n < HIGH_WINDOW_LIMIT; n++ {
		if actual, expected := IsPrime64(n), bruteIsPrime(n); actual != expected {
			t.Fatalf("Checking n=%d: expected %t got %t", n, expected, actual)
		}
	}
}

// Exhaustive agreement with a sieve of Eratosthenes over every n up to 10^8.
// The sweep takes minutes; it is skipped in -short mode.
func TestIsPrime64_ExhaustiveSweep(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping exhaustive sweep in short mode")
	}
	t.Parallel()
	const limit = HIGH_WINDOW_LIMIT
	composite := make([]bool, limit+1)
	for i := uint64(2); i*i <= limit; i++ {
		if composite[i] {
			continue
		}
		for j := i * i; j <= limit; j += i {
			composite[j] = true
		}
	}
	for n := uint64(0); n <= limit; n++ {
		expected := n >= 2 && !composite[n]
		if actual := IsPrime64(n); actual != expected {
			t.Fatalf("Checking n=%d: expected %t got %t", n, expected, actual)
		}
	}
}

func TestMulMod64(t *testing.T) {
	t.Parallel()
	cases := []struct{ a, b, m uint64 }{
		{0, 0, 1},
		{5, 7, 1},
		{12345, 67890, 97},
		{1 << 63, 2, 18446744073709551557},
		{(1 << 63) + 5, (1 << 63) + 9, 18446744073709551557},
		{math.MaxUint64, math.MaxUint64, math.MaxUint64},
		{math.MaxUint64 - 1, math.MaxUint64 - 2, math.MaxUint64 - 58},
	}
	for _, tc := range cases {
		expected := new(big.Int).Mul(new(big.Int).SetUint64(tc.a), new(big.Int).SetUint64(tc.b))
		expected.Mod(expected, new(big.Int).SetUint64(tc.m))
		if actual := mulMod64(tc.a, tc.b, tc.m); actual != expected.Uint64() {
			t.Errorf("mulMod64(%d, %d, %d): expected %d got %d", tc.a, tc.b, tc.m, expected.Uint64(), actual)
		}
	}
}

func TestPowMod64(t *testing.T) {
	t.Parallel()
	cases := []struct{ base, exp, m uint64 }{
		{2, 10, 1},
		{0, 0, 7},
		{3, 0, 7},
		{2, 64, 18446744073709551557},
		{2, math.MaxUint64 - 2, 18446744073709551557},
		{math.MaxUint64 - 3, 65537, math.MaxUint64 - 58},
	}
	for _, tc := range cases {
		expected := new(big.Int).Exp(
			new(big.Int).SetUint64(tc.base),
			new(big.Int).SetUint64(tc.exp),
			new(big.Int).SetUint64(tc.m),
		)
		if actual := powMod64(tc.base, tc.exp, tc.m); actual != expected.Uint64() {
			t.Errorf("powMod64(%d, %d, %d): expected %d got %d", tc.base, tc.exp, tc.m, expected.Uint64(), actual)
		}
	}
}

func TestNextCandidate64(t *testing.T) {
	t.Parallel()
	cases := map[uint64]uint64{
		0:  2,
		1:  2,
		2:  2,
		3:  3,
		4:  5,
		5:  5,
		6:  7,
		9:  11,
		14: 17,
		15: 17,
		16: 17,

		math.MaxUint64: math.MaxUint64,
	}
	for n, expected := range cases {
		if actual := NextCandidate64(n); actual != expected {
			t.Errorf("NextCandidate64(%d): expected %d got %d", n, expected, actual)
		}
	}
}

// next_candidate(next_candidate(n)) == next_candidate(n) for all n.
func TestNextCandidate64_Idempotent(t *testing.T) {
	t.Parallel()
	for n := uint64(0); n < 10000; n++ {
		once := NextCandidate64(n)
		if twice := NextCandidate64(once); twice != once {
			t.Fatalf("Checking n=%d: NextCandidate64(%d) = %d, not idempotent", n, once, twice)
		}
	}
}

func TestGeneratePrimes64_FromZero(t *testing.T) {
	t.Parallel()
	expected := []uint64{2, 3, 5, 7, 11}
	actual := GeneratePrimes64(0, len(expected))
	if len(actual) != len(expected) {
		t.Fatalf("Expected %d primes, got %d", len(expected), len(actual))
	}
	for i, p := range expected {
		if actual[i] != p {
			t.Errorf("Index %d: expected %d got %d", i, p, actual[i])
		}
	}
}

// 14 normalizes to the odd candidate 15, the wheel advances past the multiple
// of 3, and 17 is the first prime at or above the filtered start.
func TestGeneratePrimes64_From14(t *testing.T) {
	t.Parallel()
	actual := GeneratePrimes64(14, 1)
	if len(actual) != 1 || actual[0] != 17 {
		t.Errorf("Expected [17], got %v", actual)
	}
}

func TestGeneratePrimes64_ZeroCount(t *testing.T) {
	t.Parallel()
	if actual := GeneratePrimes64(0, 0); len(actual) != 0 {
		t.Errorf("Expected empty result, got %v", actual)
	}
}

// A run close to the uint64 ceiling halts early with a short result instead
// of wrapping around.
func TestGeneratePrimes64_NearCeiling(t *testing.T) {
	t.Parallel()
	actual := GeneratePrimes64(math.MaxUint64-100, 1000)
	if len(actual) >= 1000 {
		t.Fatalf("Expected a short result near the ceiling, got %d primes", len(actual))
	}
	if len(actual) != 1 || actual[0] != LARGEST_PRIME_U64 {
		t.Errorf("Expected [%d], got %v", uint64(LARGEST_PRIME_U64), actual)
	}
	if actual = GeneratePrimes64(math.MaxUint64, 1000); len(actual) != 0 {
		t.Errorf("Expected no primes at the ceiling, got %v", actual)
	}
}

// Every generated value must be a verified prime, at or above the start
// bound, in strictly increasing order.
func TestGeneratePrimes64_Verified(t *testing.T) {
	t.Parallel()
	const start, count = 1000, 50
	actual := GeneratePrimes64(start, count)
	if len(actual) != count {
		t.Fatalf("Expected %d primes, got %d", count, len(actual))
	}
	previous := uint64(0)
	for i, p := range actual {
		if p < start {
			t.Errorf("Index %d: %d is below start bound %d", i, p, start)
		}
		if p <= previous {
			t.Errorf("Index %d: %d is not strictly greater than %d", i, p, previous)
		}
		if !bruteIsPrime(p) {
			t.Errorf("Index %d: %d is not prime", i, p)
		}
		previous = p
	}
}

// Benchmark the deterministic prime generator with starting points as a power
// of 10.
func BenchmarkGeneratePrimes64(b *testing.B) {
	for exp := 0; exp < BENCHMARK_EXPONENT_LIMIT; exp++ {
		start := uint64(math.Pow10(exp))
		b.Run(fmt.Sprintf("start=%d", start), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = GeneratePrimes64(start, 10)
			}
		})
	}
}

func BenchmarkIsPrime64(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = IsPrime64(LARGEST_PRIME_U64)
	}
}
