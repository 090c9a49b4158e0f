package core

import "math/rand/v2"

// Source is the randomness a simulation consumes. *rand.Rand satisfies it, and
// tests substitute scripted sequences.
type Source interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// IntN returns a uniform value in [0, n). n must be positive.
	IntN(n int) int
}

// NewRNG creates a deterministic PCG-backed source using the provided seed.
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// SplitSeed derives the seed for the i-th independent run of a batch.
func SplitSeed(seed int64, i int) int64 {
	return seed + int64(i)*0x9E3779B9
}
