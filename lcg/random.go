package lcg

import "math/rand"

var _ rand.Source = (*Random)(nil)
var _ rand.Source64 = (*Random)(nil)

// Random reproduces the output sequences of java.util.Random.
// It is not safe for concurrent use.
type Random struct {
	state State
}

// New returns a generator seeded like `new Random(seed)`.
func New(seed int64) *Random {
	return &Random{state: Scramble(seed)}
}

// NewFromState returns a generator continuing from raw internal state.
func NewFromState(s State) *Random {
	return &Random{state: s & Mask}
}

// NewSource returns a rand.Source backed by a Java-compatible generator.
func NewSource(seed int64) rand.Source {
	return New(seed)
}

// SetSeed reseeds the generator like Random.setSeed.
func (r *Random) SetSeed(seed int64) {
	r.state = Scramble(seed)
}

// State returns the current internal state.
func (r *Random) State() State {
	return r.state
}

// Next returns the next bits-wide output (1..32), as Random.next does.
func (r *Random) Next(bits uint) int32 {
	if bits == 0 || bits > 32 {
		panic("lcg: bits out of range")
	}
	r.state, _ = Advance(r.state)
	return int32(uint32(r.state >> (StateBits - bits)))
}

func (r *Random) NextInt() int32 {
	return r.Next(32)
}

// NextIntn returns a value in [0, bound). It panics if bound <= 0.
func (r *Random) NextIntn(bound int32) int32 {
	if bound <= 0 {
		panic("lcg: bound must be positive")
	}
	if bound&-bound == bound {
		return int32((int64(bound) * int64(r.Next(31))) >> 31)
	}
	for {
		u := r.Next(31)
		val := u % bound
		// int32 overflow marks a draw from the biased tail
		if u-val+(bound-1) >= 0 {
			return val
		}
	}
}

func (r *Random) NextLong() int64 {
	var v int64
	r.state, v = NextLong(r.state)
	return v
}

func (r *Random) NextBoolean() bool {
	return r.Next(1) != 0
}

func (r *Random) NextFloat() float32 {
	return float32(r.Next(24)) / (1 << 24)
}

func (r *Random) NextDouble() float64 {
	hi := int64(r.Next(26))
	lo := int64(r.Next(27))
	return float64(hi<<27+lo) / (1 << 53)
}

// Seed implements rand.Source.
func (r *Random) Seed(seed int64) {
	r.SetSeed(seed)
}

// Uint64 implements rand.Source64.
func (r *Random) Uint64() uint64 {
	return uint64(r.NextLong())
}

// Int63 implements rand.Source.
func (r *Random) Int63() int64 {
	return int64(r.Uint64() >> 1)
}
