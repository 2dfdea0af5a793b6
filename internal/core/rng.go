package core

import "math/rand/v2"

// Source is the random capability threaded through every stochastic step of
// sprite generation. *rand.Rand and *RNG both satisfy it.
type Source interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// NewEntropyRNG creates an RNG seeded from the runtime's entropy source.
func NewEntropyRNG() *RNG {
	return &RNG{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// Float64 returns a uniform value in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

// OrEntropy returns src unchanged, or a fresh entropy-seeded RNG when src is nil.
func OrEntropy(src Source) Source {
	if src == nil {
		return NewEntropyRNG()
	}
	return src
}
