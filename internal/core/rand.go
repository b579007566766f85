package core

// Default state used when a zero seed is supplied, from Marsaglia's
// "Xorshift RNGs" paper. The generator cannot leave the zero state.
const xorshiftDefaultSeed = 2463534242

// XorShift32 is a tiny deterministic PRNG. The theme generator relies on the
// same seed always yielding the same sequence, so the algorithm is fixed and
// must not be swapped for math/rand.
type XorShift32 struct {
	state uint32
}

// NewXorShift32 creates a generator seeded with the given value.
func NewXorShift32(seed uint32) *XorShift32 {
	if seed == 0 {
		seed = xorshiftDefaultSeed
	}
	return &XorShift32{state: seed}
}

// Uint32 advances the generator and returns the next value.
func (r *XorShift32) Uint32() uint32 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Float64 returns a value in [0, 1).
func (r *XorShift32) Float64() float64 {
	return float64(r.Uint32()) / (1 << 32)
}

// Intn returns a value in [0, n). Returns 0 when n <= 0.
func (r *XorShift32) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Float64() * float64(n))
}
