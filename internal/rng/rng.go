// Package rng implements a small reproducible xorshift32 generator.
// It is not cryptographically secure.
package rng

// zeroSeed replaces a zero seed, which would pin xorshift at zero forever.
const zeroSeed uint32 = 0x9e3779b9

// Rand is a xorshift32 generator. The zero value is not usable; call New.
type Rand struct {
	state uint32
}

// New returns a generator seeded with seed.
func New(seed uint32) *Rand {
	if seed == 0 {
		seed = zeroSeed
	}
	return &Rand{state: seed}
}

// NextU32 advances the state and returns it.
func (r *Rand) NextU32() uint32 {
	r.state ^= r.state << 13
	r.state ^= r.state >> 17
	r.state ^= r.state << 5
	return r.state
}

// NextFloat returns a value in [0, 1).
func (r *Rand) NextFloat() float64 {
	return float64(r.NextU32()) / (1 << 32)
}

// NextInt returns a value in [0, maxExclusive), or 0 for a non-positive bound.
func (r *Rand) NextInt(maxExclusive int) int {
	if maxExclusive <= 0 {
		return 0
	}
	return int(r.NextFloat() * float64(maxExclusive))
}

// Shuffle permutes items in place with Fisher-Yates and returns it.
func Shuffle[T any](items []T, r *Rand) []T {
	for i := len(items) - 1; i > 0; i-- {
		j := r.NextInt(i + 1)
		items[i], items[j] = items[j], items[i]
	}
	return items
}
