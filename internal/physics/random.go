package physics

import (
	"math"
	"math/rand/v2"
)

// Rand is the single random source shared by spawning, collision side effects
// and cosmetic jitter. Seeding it makes a session replayable.
type Rand struct {
	r *rand.Rand
}

// NewRand creates a Rand seeded with the given value.
func NewRand(seed uint64) *Rand {
	return NewRandSource(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewRandSource creates a Rand drawing from src.
func NewRandSource(src rand.Source) *Rand {
	return &Rand{r: rand.New(src)}
}

// Float64 returns a value in [0, 1).
func (r *Rand) Float64() float64 {
	return r.r.Float64()
}

// Range returns a value in [lo, hi).
func (r *Rand) Range(lo, hi float64) float64 {
	return lo + r.r.Float64()*(hi-lo)
}

// Jitter returns a value in [-spread/2, spread/2).
func (r *Rand) Jitter(spread float64) float64 {
	return (r.r.Float64() - 0.5) * spread
}

// IntRange returns an integer in [lo, hi].
// Uses Float64 only, so any Source (including constant ones) terminates.
func (r *Rand) IntRange(lo, hi int) int {
	return lo + int(math.Floor(r.r.Float64()*float64(hi-lo+1)))
}

// Chance reports true with probability p.
func (r *Rand) Chance(p float64) bool {
	return r.r.Float64() < p
}

// Angle returns a direction in [0, 2π).
func (r *Rand) Angle() float64 {
	return r.r.Float64() * 2 * math.Pi
}
