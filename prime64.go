package primegen

import (
	"math"
	"math/bits"
)

var (
	// The trial-division table used by the 64-bit engine. The table is
	// deliberately shorter than the arbitrary-precision table: with a
	// deterministic Miller-Rabin test this cheap, trial division past 37
	// costs more than it saves.
	smallPrimes64 = []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}

	// Witness bases that make Miller-Rabin deterministic for every
	// n < 2^64. This is a proven-sufficient set, not a heuristic.
	witnesses64 = []uint64{2, 325, 9375, 28178, 450775, 9780504, 1795265022}
)

// Return (a*b) mod m for m >= 1. The operands are reduced before the multiply
// so the exact 128-bit intermediate product always divides without overflow:
// with a, b < m the high word of a*b is strictly less than m.
func mulMod64(a, b, m uint64) uint64 {
	a %= m
	b %= m
	hi, lo := bits.Mul64(a, b)
	_, rem := bits.Div64(hi, lo, m)
	return rem
}

// Return (base^exp) mod m for m >= 1 by binary square-and-multiply. The
// res = 1 % m normalization makes every result 0 when m is 1.
func powMod64(base, exp, m uint64) uint64 {
	res := uint64(1) % m
	base %= m
	for exp > 0 {
		if exp&1 == 1 {
			res = mulMod64(res, base, m)
		}
		base = mulMod64(base, base, m)
		exp >>= 1
	}
	return res
}

// Determine if n is prime. Candidates are screened by trial division against
// the small-prime table, then tested with Miller-Rabin using the fixed
// witness set. Unlike the arbitrary-precision engine this test is exact for
// every uint64 input: there are no false positives.
func IsPrime64(n uint64) bool {
	if n < 2 {
		return false
	}
	for _, p := range smallPrimes64 {
		if n == p {
			return true
		}
		if n%p == 0 {
			return false
		}
	}

	// Decompose n-1 = d * 2^s with d odd.
	d := n - 1
	s := 0
	for d&1 == 0 {
		d >>= 1
		s++
	}

	for _, a := range witnesses64 {
		if a%n == 0 {
			continue
		}
		x := powMod64(a, d, n)
		if x == 1 || x == n-1 {
			continue
		}
		composite := true
		for r := 1; r < s; r++ {
			x = mulMod64(x, x, n)
			if x == n-1 {
				composite = false
				break
			}
		}
		if composite {
			return false
		}
	}
	return true
}

// Return the smallest candidate >= n worth testing: odd and not divisible by
// 3. Values at or below 2 map to 2, and the primes 3 and 5 are returned
// verbatim since the wheel would otherwise step over 3. The advance stops
// short of the uint64 ceiling rather than wrap; the caller's generation loop
// rejects whatever composite that leaves behind. Idempotent on its own
// output.
func NextCandidate64(n uint64) uint64 {
	if n <= 2 {
		return 2
	}
	if n&1 == 0 {
		n++
	}
	if n <= 5 {
		return n
	}
	for n%3 == 0 {
		if n >= math.MaxUint64-2 {
			break
		}
		n += 2
	}
	return n
}

// Collect up to count primes >= start, in increasing order. The candidate 2
// is emitted directly before the odd scan begins at 3. Generation halts early
// when the next candidate would pass the uint64 ceiling; the result is then
// shorter than requested, which is not an error.
func GeneratePrimes64(start uint64, count int) []uint64 {
	logger := Logger.V(1).WithValues("start", start, "count", count)
	logger.Info("GeneratePrimes64: enter")
	primes := make([]uint64, 0, count)
	if count <= 0 {
		return primes
	}
	n := NextCandidate64(start)
	if n == 2 {
		primes = append(primes, 2)
		n = 3
	}
	for len(primes) < count {
		if IsPrime64(n) {
			primes = append(primes, n)
		}
		if n >= math.MaxUint64-2 {
			break
		}
		n += 2
	}
	logger.Info("GeneratePrimes64: exit", "found", len(primes))
	return primes
}
