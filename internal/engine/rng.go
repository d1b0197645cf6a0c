package engine

// RNG is a deterministic pseudo-random number generator (xorshift64).
// The same seed always yields the same sequence, which makes whole
// board evolutions replayable.
type RNG struct {
	state uint64
}

// defaultSeed is used when a zero seed is supplied.
const defaultSeed = 88172645463325252

// NewRNG creates a new RNG with the given seed.
func NewRNG(seed uint64) *RNG {
	if seed == 0 {
		seed = defaultSeed
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

// Float returns a random float64 in [0, 1).
func (r *RNG) Float() float64 {
	return float64(r.Next()&0x7FFFFFFFFFFFFFFF) / float64(0x8000000000000000)
}

// Intn returns a random int in [0, n).
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Shuffle performs a Fisher-Yates shuffle over n elements, calling swap
// for each exchanged pair.
func (r *RNG) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		if i != j {
			swap(i, j)
		}
	}
}
