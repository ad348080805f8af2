// Package random wraps a seedable pseudo-random source and the handful of
// draws the distribution job needs: integers and durations in inclusive
// ranges, and in-place shuffles.
package random

import (
	"math/rand/v2"
	"time"
)

// Source is the subset of *rand.Rand used by this module. It is not safe for
// concurrent use; the job draws from it on a single goroutine.
type Source interface {
	IntN(n int) int
	Int64N(n int64) int64
	Shuffle(n int, swap func(i, j int))
}

// New returns a Source. A zero seed yields a randomly seeded source; any
// other value produces a deterministic sequence.
func New(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// IntBetween returns a uniform integer in [lo, hi]. When hi <= lo it returns lo.
func IntBetween(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}

	return lo + src.IntN(hi-lo+1)
}

// DurationBetween returns a uniform duration in [lo, hi]. When hi <= lo it returns lo.
func DurationBetween(src Source, lo, hi time.Duration) time.Duration {
	if hi <= lo {
		return lo
	}

	return lo + time.Duration(src.Int64N(int64(hi-lo)+1))
}

// Shuffle permutes values in place.
func Shuffle[T any](src Source, values []T) {
	src.Shuffle(len(values), func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})
}
