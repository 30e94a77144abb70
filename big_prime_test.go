package primegen

import (
	"fmt"
	"math/big"
	"math/rand"
	"testing"
)

const (
	PROBABLY_PRIME_AGREEMENT_LIMIT = 20000
	// Default start bound carried over from the CLI; illustrative only.
	LARGE_START = "18446744073713598463"
)

func bigFromString(t *testing.T, s string) *big.Int {
	t.Helper()
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		t.Fatalf("Error parsing %q as an integer", s)
	}
	return n
}

// Every member of the trial-division table must be reported prime.
func TestIsPrime_SmallPrimeTable(t *testing.T) {
	t.Parallel()
	g := NewGenerator(WithSource(rand.NewSource(1)))
	for _, p := range smallPrimes {
		if !g.IsPrime(p) {
			t.Errorf("Expected %s to be prime", p)
		}
	}
}

func TestIsPrime_Composites(t *testing.T) {
	t.Parallel()
	g := NewGenerator(WithSource(rand.NewSource(1)))
	composites := []int64{
		0, 1, 4, 1000, 100000000,
		// Carmichael number; a plain Fermat test would pass it.
		561,
		// 503 * 509; no factor appears in the trial-division table, so
		// only the Miller-Rabin stage can reject it.
		256027,
	}
	for _, n := range composites {
		n := n
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()
			if g.IsPrime(big.NewInt(n)) {
				t.Errorf("Expected %d to be composite", n)
			}
		})
	}
}

// The probabilistic test must agree with the math/big Baillie-PSW oracle over
// a dense low range.
func TestIsPrime_AgreesWithProbablyPrime(t *testing.T) {
	t.Parallel()
	g := NewGenerator(WithSource(rand.NewSource(1)))
	for i := int64(0); i < PROBABLY_PRIME_AGREEMENT_LIMIT; i++ {
		n := big.NewInt(i)
		if actual, expected := g.IsPrime(n), n.ProbablyPrime(0); actual != expected {
			t.Fatalf("Checking n=%d: expected %t got %t", i, expected, actual)
		}
	}
}

// Witness bases must stay in [2, n-2] for the candidate under test.
func TestRandomBase_InRange(t *testing.T) {
	t.Parallel()
	g := NewGenerator(WithSource(rand.NewSource(1)))
	limit := bigFromString(t, "999999999999999999999999999998") // n-2 for a 30-digit n
	for i := 0; i < 1000; i++ {
		a := g.randomBase(limit)
		if a.Cmp(two) < 0 || a.Cmp(limit) > 0 {
			t.Fatalf("Draw %d: base %s is outside [2, %s]", i, a, limit)
		}
	}
}

// Two generators sharing a seed must draw identical witness sequences; the
// engine is seeded once per generator, never per round.
func TestRandomBase_Reproducible(t *testing.T) {
	t.Parallel()
	g1 := NewGenerator(WithSource(rand.NewSource(42)))
	g2 := NewGenerator(WithSource(rand.NewSource(42)))
	limit := bigFromString(t, "170141183460469231731687303715884105727")
	for i := 0; i < 100; i++ {
		a1, a2 := g1.randomBase(limit), g2.randomBase(limit)
		if a1.Cmp(a2) != 0 {
			t.Fatalf("Draw %d: %s != %s", i, a1, a2)
		}
	}
}

func TestNextCandidate(t *testing.T) {
	t.Parallel()
	cases := map[int64]int64{
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
		25: 29,
		// 49 passes the wheel; it is rejected later by the full test.
		49: 49,
	}
	for n, expected := range cases {
		if actual := NextCandidate(big.NewInt(n)); actual.Int64() != expected {
			t.Errorf("NextCandidate(%d): expected %d got %s", n, expected, actual)
		}
	}
}

func TestNextCandidate_Idempotent(t *testing.T) {
	t.Parallel()
	for i := int64(0); i < 10000; i++ {
		once := NextCandidate(big.NewInt(i))
		if twice := NextCandidate(once); twice.Cmp(once) != 0 {
			t.Fatalf("Checking n=%d: NextCandidate(%s) = %s, not idempotent", i, once, twice)
		}
	}
}

func TestGeneratePrimes_FromZero(t *testing.T) {
	t.Parallel()
	g := NewGenerator(WithSource(rand.NewSource(1)))
	expected := []int64{2, 3, 5, 7, 11}
	actual := g.GeneratePrimes(new(big.Int), len(expected))
	if len(actual) != len(expected) {
		t.Fatalf("Expected %d primes, got %d", len(expected), len(actual))
	}
	for i, p := range expected {
		if actual[i].Int64() != p {
			t.Errorf("Index %d: expected %d got %s", i, p, actual[i])
		}
	}
}

func TestGeneratePrimes_From90(t *testing.T) {
	t.Parallel()
	g := NewGenerator(WithSource(rand.NewSource(1)))
	expected := []int64{97, 101, 103, 107, 109}
	actual := g.GeneratePrimes(big.NewInt(90), len(expected))
	if len(actual) != len(expected) {
		t.Fatalf("Expected %d primes, got %d", len(expected), len(actual))
	}
	for i, p := range expected {
		if actual[i].Int64() != p {
			t.Errorf("Index %d: expected %d got %s", i, p, actual[i])
		}
	}
}

func TestGeneratePrimes_ZeroCount(t *testing.T) {
	t.Parallel()
	g := NewGenerator(WithSource(rand.NewSource(1)))
	if actual := g.GeneratePrimes(new(big.Int), 0); len(actual) != 0 {
		t.Errorf("Expected empty result, got %v", actual)
	}
}

// A run from a bound past the uint64 ceiling, verified against the
// independent Baillie-PSW oracle in math/big.
func TestGeneratePrimes_FromLargeBound(t *testing.T) {
	t.Parallel()
	g := NewGenerator()
	start := bigFromString(t, LARGE_START)
	actual := g.GeneratePrimes(start, 3)
	if len(actual) != 3 {
		t.Fatalf("Expected 3 primes, got %d", len(actual))
	}
	previous := new(big.Int).Sub(start, one)
	for i, p := range actual {
		if p.Cmp(start) < 0 {
			t.Errorf("Index %d: %s is below start bound %s", i, p, start)
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

// Benchmark the probabilistic prime generator with bounds of increasing bit
// width.
func BenchmarkGeneratePrimes(b *testing.B) {
	for _, bits := range []uint{32, 64, 128, 256} {
		start := new(big.Int).Lsh(big.NewInt(1), bits)
		b.Run(fmt.Sprintf("bits=%d", bits), func(b *testing.B) {
			g := NewGenerator(WithSource(rand.NewSource(1)))
			for i := 0; i < b.N; i++ {
				_ = g.GeneratePrimes(start, 1)
			}
		})
	}
}
