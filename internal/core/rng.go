package core

// RNG is a deterministic pseudo-random number generator (xorshift64).
// The same seed always yields the same sequence, which keeps generated
// levels reproducible from a logged seed.
type RNG struct {
	state uint64
}

// NewRNG creates a new RNG with the given seed.
func NewRNG(seed uint64) *RNG {
	if seed == 0 {
		seed = 88172645463325252 // xorshift state must be non-zero
	}
	return &RNG{state: seed}
}

// Next returns the next random uint64.
func (r *RNG) Next() uint64 {
	r.state ^= r.state << 13
	r.state ^= r.state >> 7
	r.state ^= r.state << 17
	return r.state
}

// Intn returns a uniform int in [0, n). Uses rejection sampling so small
// ranges carry no modulo bias.
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	bound := uint64(n)
	limit := ^uint64(0) - (^uint64(0) % bound)
	for {
		v := r.Next()
		if v < limit {
			return int(v % bound)
		}
	}
}

// IntRange returns a uniform int in [lo, hi], both inclusive.
func (r *RNG) IntRange(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + r.Intn(hi-lo+1)
}
