package artgen

import "math/rand/v2"

// RandomSource supplies uniform floats in [0, 1).
// Every stage that needs randomness draws from the single source passed to
// Render, in a fixed order, so equal seeds give equal rasters.
type RandomSource interface {
	Float64() float64
}

// NewRandomSource returns a seeded PCG generator.
func NewRandomSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// between returns a uniform value in [lo, hi).
func between(rng RandomSource, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
