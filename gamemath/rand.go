package gamemath

import (
	"math"
	"math/rand/v2"
)

// Rand wraps a seeded PCG source. The game simulations hold exactly one of
// these each; given the same seed and call sequence two runs roll identical
// spawns, crits and drops.
type Rand struct {
	src *rand.Rand
}

// NewRand returns a generator seeded from a single value.
func NewRand(seed uint64) *Rand {
	return &Rand{src: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Float64 returns a value in [0, 1).
func (r *Rand) Float64() float64 {
	return r.src.Float64()
}

// Range returns a value in [lo, hi).
func (r *Rand) Range(lo, hi float64) float64 {
	return lo + r.src.Float64()*(hi-lo)
}

// IntN returns a value in [0, n). n must be positive.
func (r *Rand) IntN(n int) int {
	return r.src.IntN(n)
}

// Chance rolls true with probability p (clamped to [0, 1]).
func (r *Rand) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.src.Float64() < p
}

// Angle returns a value in [0, 2*Pi).
func (r *Rand) Angle() float64 {
	return r.src.Float64() * 2 * math.Pi
}

// Shuffle randomizes the order of n elements via swap.
func (r *Rand) Shuffle(n int, swap func(i, j int)) {
	r.src.Shuffle(n, swap)
}
