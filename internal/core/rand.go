package core

// Rand is a counter-based generator (Widynski's "squares" RNG).
// Each draw hashes an incrementing counter with a seed-derived key, so the
// whole sequence is a pure function of the seed.
type Rand struct {
	key     uint64
	counter uint64
}

// NewRand creates a generator for the given seed.
func NewRand(seed int64) *Rand {
	r := &Rand{}
	r.Seed(seed)
	return r
}

// Seed resets the generator to the start of the sequence for seed.
func (r *Rand) Seed(seed int64) {
	// splitmix64 spreads small seeds over the key space; squares wants an
	// odd key with well mixed bits.
	z := uint64(seed) + 0x9e3779b97f4a7c15 //nolint:gosec // bit reinterpretation
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	z ^= z >> 31
	r.key = z | 1
	r.counter = 0
}

// Uint32 returns the next uniformly distributed 32-bit value.
func (r *Rand) Uint32() uint32 {
	v := squares32(r.counter, r.key)
	r.counter++
	return v
}

// Float01 returns a value in [0, 1) by treating a 32-bit draw as a
// fixed-point fraction.
func (r *Rand) Float01() float64 {
	return float64(r.Uint32()) * (1.0 / 4294967296.0)
}

// Intn returns an unbiased value in [0, bound).
// Panics if bound is zero.
func (r *Rand) Intn(bound uint32) uint32 {
	if bound == 0 {
		panic("core: Intn called with zero bound")
	}
	m := uint64(r.Uint32()) * uint64(bound)
	low := uint32(m) //nolint:gosec // low word of the product
	if low < bound {
		threshold := -bound % bound
		for low < threshold {
			m = uint64(r.Uint32()) * uint64(bound)
			low = uint32(m) //nolint:gosec // low word of the product
		}
	}
	return uint32(m >> 32) //nolint:gosec // high word is < bound
}

func squares32(ctr, key uint64) uint32 {
	x := ctr * key
	y := x
	z := y + key
	x = x*x + y
	x = (x >> 32) | (x << 32)
	x = x*x + z
	x = (x >> 32) | (x << 32)
	x = x*x + y
	x = (x >> 32) | (x << 32)
	return uint32((x*x + z) >> 32) //nolint:gosec // high word
}
