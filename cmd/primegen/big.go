package main

import (
	"bufio"
	"fmt"
	"math/big"
	"strconv"

	primegen "github.com/memes/primegen"
	"github.com/spf13/cobra"
)

// The start bound used by the big command when no argument is given; one above
// the largest uint64 plus a gap, so a default run exercises multi-word values.
const DefaultBigStart = "18446744073713598463"

func NewBigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "big [start [count]]",
		Short: "Generate primes at or above an arbitrary-precision start bound",
		Long:  "Generates a run of primes greater than or equal to start, which may be any non-negative decimal integer, and writes one prime per line to stdout. Candidates are tested with trial division and 32 rounds of Miller-Rabin against randomly drawn bases.",
		Args:  cobra.MaximumNArgs(2),
		RunE:  bigMain,
	}
}

func bigMain(cmd *cobra.Command, args []string) error {
	startArg := DefaultBigStart
	if len(args) > 0 {
		startArg = args[0]
	}
	start, ok := new(big.Int).SetString(startArg, 10)
	if !ok {
		return fmt.Errorf("start argument %q cannot be parsed as a decimal integer", startArg)
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
	generator := primegen.NewGenerator()
	writer := bufio.NewWriter(cmd.OutOrStdout())
	defer writer.Flush()
	for _, prime := range generator.GeneratePrimes(start, count) {
		fmt.Fprintln(writer, prime.String())
	}
	return nil
}
