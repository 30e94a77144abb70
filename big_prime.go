package primegen

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/big"
	"math/rand"
	"time"
)

const (
	// The number of Miller-Rabin rounds applied to each candidate by the
	// arbitrary-precision engine. The probability of reporting a composite
	// as prime is bounded by 4^-MillerRabinRounds.
	MillerRabinRounds = 32
)

var (
	one   = big.NewInt(1)
	two   = big.NewInt(2)
	three = big.NewInt(3)
	five  = big.NewInt(5)

	// The trial-division table used by the arbitrary-precision engine;
	// every prime up to 499. Built once at process start, read-only after.
	smallPrimes = buildSmallPrimes([]uint64{
		2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59,
		61, 67, 71, 73, 79, 83, 89, 97, 101, 103, 107, 109, 113, 127,
		131, 137, 139, 149, 151, 157, 163, 167, 173, 179, 181, 191, 193,
		197, 199, 211, 223, 227, 229, 233, 239, 241, 251, 257, 263, 269,
		271, 277, 281, 283, 293, 307, 311, 313, 317, 331, 337, 347, 349,
		353, 359, 367, 373, 379, 383, 389, 397, 401, 409, 419, 421, 431,
		433, 439, 443, 449, 457, 461, 463, 467, 479, 487, 491, 499,
	})
)

func buildSmallPrimes(primes []uint64) []*big.Int {
	table := make([]*big.Int, len(primes))
	for i, p := range primes {
		table[i] = new(big.Int).SetUint64(p)
	}
	return table
}

// Generator runs the arbitrary-precision primality pipeline. It owns the
// pseudo-random engine used for Miller-Rabin base selection; the engine is
// seeded once at construction and never reseeded between rounds, so a
// Generator built with WithSource produces reproducible witness sequences.
type Generator struct {
	rnd *rand.Rand
}

// Defines the function signature for Generator options.
type GeneratorOption func(*Generator)

// WithSource replaces the entropy-seeded random source with the source
// provided, allowing tests to drive the base selection deterministically.
func WithSource(src rand.Source) GeneratorOption {
	return func(g *Generator) {
		g.rnd = rand.New(src)
	}
}

// Create a new Generator with optional settings. The default random source is
// seeded from the operating system entropy pool.
func NewGenerator(options ...GeneratorOption) *Generator {
	g := &Generator{
		rnd: rand.New(rand.NewSource(entropySeed())),
	}
	for _, option := range options {
		option(g)
	}
	return g
}

func entropySeed() int64 {
	var b [8]byte
	if _, err := cryptorand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}

// Draws a Miller-Rabin base in [2, limit] where limit is n-2 for the
// candidate under test. Enough 64-bit words are assembled to cover the bit
// width of limit before reducing into range by modulo with a +2 offset.
//
// NOTE: the modulo reduction is slightly biased for ranges that are not a
// power of two. That is acceptable for witness selection but this function
// must not be reused where a uniform sample is required.
func (g *Generator) randomBase(limit *big.Int) *big.Int {
	if limit.Cmp(two) <= 0 {
		return new(big.Int).Set(two)
	}
	words := (limit.BitLen() + 63) / 64
	a := new(big.Int)
	w := new(big.Int)
	for i := 0; i < words; i++ {
		a.Lsh(a, 64)
		a.Add(a, w.SetUint64(g.rnd.Uint64()))
	}
	if a.Cmp(one) <= 0 {
		a.Add(a, two)
	}
	a.Mod(a, new(big.Int).Sub(limit, one))
	a.Add(a, two)
	return a
}

// Determine if n is prime. Candidates are screened by trial division against
// the small-prime table before MillerRabinRounds rounds of Miller-Rabin with
// randomly selected bases. A true result is probabilistic: the chance of a
// composite passing every round is bounded by 4^-MillerRabinRounds.
func (g *Generator) IsPrime(n *big.Int) bool {
	if n.Cmp(two) < 0 {
		return false
	}
	rem := new(big.Int)
	for _, p := range smallPrimes {
		if n.Cmp(p) == 0 {
			return true
		}
		if rem.Mod(n, p).Sign() == 0 {
			return false
		}
	}

	// Decompose n-1 = d * 2^s with d odd.
	d := new(big.Int).Sub(n, one)
	s := 0
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		s++
	}

	nMinus1 := new(big.Int).Sub(n, one)
	nMinus2 := new(big.Int).Sub(n, two)
	x := new(big.Int)
	for round := 0; round < MillerRabinRounds; round++ {
		a := g.randomBase(nMinus2)
		x.Exp(a, d, n)
		if x.Cmp(one) == 0 || x.Cmp(nMinus1) == 0 {
			continue
		}
		passed := false
		for r := 1; r < s; r++ {
			x.Mul(x, x)
			x.Mod(x, n)
			if x.Cmp(nMinus1) == 0 {
				passed = true
				break
			}
		}
		if !passed {
			return false
		}
	}
	return true
}

// Return the smallest candidate >= n worth testing: odd and not divisible by
// 3 or 5. Values at or below 2 map to 2, and the primes 3 and 5 are returned
// verbatim since the wheel would otherwise step over them. Every value the
// wheel skips is divisible by 3 or 5 and greater than 5, so no prime is ever
// skipped. Idempotent on its own output.
func NextCandidate(n *big.Int) *big.Int {
	if n.Cmp(two) <= 0 {
		return new(big.Int).Set(two)
	}
	c := new(big.Int).Set(n)
	if c.Bit(0) == 0 {
		c.Add(c, one)
	}
	if c.Cmp(five) <= 0 {
		return c
	}
	rem := new(big.Int)
	for rem.Mod(c, three).Sign() == 0 || rem.Mod(c, five).Sign() == 0 {
		c.Add(c, two)
	}
	return c
}

// Collect count primes >= start, in increasing order. The candidate 2 is
// emitted directly before the odd scan begins at 3; all other candidates
// advance by 2 from the wheel-filtered starting point.
func (g *Generator) GeneratePrimes(start *big.Int, count int) []*big.Int {
	logger := Logger.V(1).WithValues("start", start.String(), "count", count)
	logger.Info("GeneratePrimes: enter")
	primes := make([]*big.Int, 0, count)
	if count <= 0 {
		return primes
	}
	n := NextCandidate(start)
	if n.Cmp(two) == 0 {
		primes = append(primes, new(big.Int).Set(two))
		n.SetInt64(3)
	}
	for len(primes) < count {
		if g.IsPrime(n) {
			primes = append(primes, new(big.Int).Set(n))
		}
		n.Add(n, two)
	}
	logger.Info("GeneratePrimes: exit", "found", len(primes))
	return primes
}
