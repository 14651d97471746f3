package arkanoid

import (
	"math/rand/v2"
	"time"
)

// RNG is the random source consumed by field generation and bonus spawning.
// *rand.Rand from math/rand/v2 satisfies it.
type RNG interface {
	// IntN returns a value in [0, n). n is always positive.
	IntN(n int) int
}

// NewRNG returns a PCG source for the seed. Seed 0 seeds from the clock.
func NewRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := uint64(seed) //#nosec G115 -- bit reinterpretation is intended
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}

// roll returns a percentage in [0, 100).
func roll(rng RNG) int {
	return rng.IntN(100)
}
