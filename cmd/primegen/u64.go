package main

import (
	"bufio"
	"fmt"
	"math"
	"strconv"

	primegen "github.com/memes/primegen"
	"github.com/spf13/cobra"
)

// The start bound used by the u64 command when no argument is given. Starting
// at the ceiling shows the short-run behaviour: no uint64 prime is at or above
// it, so the default run is empty.
const DefaultU64Start = uint64(math.MaxUint64)

func NewU64Cmd() *cobra.Command {
	return &cobra.Command{
		Use:   "u64 [start [count]]",
		Short: "Generate primes at or above a 64-bit start bound",
		Long:  "Generates a run of primes greater than or equal to start, which must fit in an unsigned 64-bit integer, and writes one prime per line to stdout. Candidates are tested with a Miller-Rabin witness set that is deterministic for every 64-bit value; no probabilistic rounds are involved. The run ends early when no further primes exist below 2^64.",
		Args:  cobra.MaximumNArgs(2),
		RunE:  u64Main,
	}
}

func u64Main(cmd *cobra.Command, args []string) error {
	start := DefaultU64Start
	if len(args) > 0 {
		var err error
		start, err = strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("start argument %q cannot be parsed: %w", args[0], err)
		}
	}
	count := DefaultRunCount
	if len(args) > 1 {
		var err error
		count, err = strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("count argument %q cannot be parsed: %w", args[1], err)
		}
	}
	primegen.Logger = logger
	writer := bufio.NewWriter(cmd.OutOrStdout())
	defer writer.Flush()
	for _, prime := range primegen.GeneratePrimes64(start, count) {
		fmt.Fprintln(writer, strconv.FormatUint(prime, 10))
	}
	return nil
}
