package polymap

import (
	"math"
	"math/rand/v2"
)

// RNG is a thin wrapper around math/rand/v2 for deterministic seeding. One RNG
// is threaded through every stage of a run, so a seed reproduces the map.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// IntN returns a uniform int in [0, n).
func (r *RNG) IntN(n int) int {
	return r.r.IntN(n)
}

// IntRange returns a uniform int in [lo, hi], both ends inclusive.
func (r *RNG) IntRange(lo, hi int) int {
	return lo + r.r.IntN(hi-lo+1)
}

// Uniform returns a uniform float64 in [lo, hi).
func (r *RNG) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*r.r.Float64()
}

// Angle returns a uniform angle in [0, 2π).
func (r *RNG) Angle() float64 {
	return r.Uniform(0, 2*math.Pi)
}

// Int64 returns a non-negative pseudo-random int64, used to derive seeds for
// libraries that take their own.
func (r *RNG) Int64() int64 {
	return r.r.Int64()
}
