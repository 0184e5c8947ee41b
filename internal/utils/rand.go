package utils

import (
	"math/rand/v2"
	"time"
)

// pcgStream is the fixed second word of the PCG seed
const pcgStream = 0x9e3779b97f4a7c15

// Rand is the randomness source injected into combat and enhancement so
// outcomes can be replayed under test.
type Rand interface {
	// Float64 returns a value in [0.0, 1.0)
	Float64() float64
	// IntN returns a value in [0, n)
	IntN(n int) int
}

// NewRand returns a PCG-backed source. A zero seed seeds from the clock.
func NewRand(seed uint64) Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^pcgStream)) //nolint:gosec // Game logic randomness, not security critical
}

// RandomInt returns a random integer between min and max (inclusive)
func RandomInt(r Rand, min, max int) int {
	if min >= max {
		return min
	}
	return r.IntN(max-min+1) + min
}

// Chance reports whether a uniform draw lands under probability p
func Chance(r Rand, p float64) bool {
	return r.Float64() < p
}
