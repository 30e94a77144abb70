// Package primegen generates runs of prime numbers at or above a starting
// bound. Two engines are provided: an arbitrary-precision engine backed by
// math/big with a probabilistic 32-round Miller-Rabin test, and a uint64
// engine whose Miller-Rabin test is deterministic for every 64-bit input.
package primegen

import (
	"github.com/go-logr/logr"
)

// Logger is the logr sink used by this package; default is a no-op logger.
var Logger = logr.Discard()
