package server

import (
	"math/big"
	"testing"
)

// The engine label must reflect which engine actually contributed primes to
// the run: the deterministic 64-bit engine, the arbitrary-precision engine,
// or a handoff between the two across the uint64 ceiling.
func TestComputeRun_EngineSelection(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		start  string
		count  int
		engine string
	}{
		{
			name:   "u64 only",
			start:  "0",
			count:  5,
			engine: "u64",
		},
		{
			name:   "handoff across ceiling",
			start:  "18446744073709551520",
			count:  3,
			engine: "u64+big",
		},
		{
			// Fits in uint64 but sits above the largest uint64 prime,
			// so the 64-bit engine finds nothing.
			name:   "past largest uint64 prime",
			start:  "18446744073709551558",
			count:  2,
			engine: "big",
		},
		{
			name:   "wider than 64 bits",
			start:  "18446744073713598463",
			count:  1,
			engine: "big",
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			start, ok := new(big.Int).SetString(tc.start, 10)
			if !ok {
				t.Fatalf("Error parsing start %q", tc.start)
			}
			run, engine := computeRun(start, tc.count)
			if len(run) != tc.count {
				t.Errorf("Expected %d primes, got %d", tc.count, len(run))
			}
			if engine != tc.engine {
				t.Errorf("Expected engine %q, got %q", tc.engine, engine)
			}
		})
	}
}
