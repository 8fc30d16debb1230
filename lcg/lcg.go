// Package lcg implements the 48-bit linear congruential generator behind
// java.util.Random: its transition, output extraction and seed scrambling.
package lcg

import "github.com/tutils/jcrack/bits"

// Generator parameters, as published for java.util.Random.
const (
	Multiplier       = 0x5DEECE66D
	Increment        = 0xB
	ScrambleConstant = 0x5DEECE66D

	// StateBits is the width of the internal state.
	StateBits = 48
	Mask      = 1<<StateBits - 1
)

// State is the 48-bit internal state. Values are always masked to StateBits.
type State uint64

// Advance performs one transition and returns the new state together with
// the 32-bit output word taken from its top bits.
func Advance(s State) (State, int32) {
	next := (s*Multiplier + Increment) & Mask
	return next, int32(bits.ToSigned(uint64(next)>>16, 32))
}

// NextLong performs two transitions and combines their words a and b the way
// Random.nextLong does: int64(a)<<32 + int64(b) with wrapping arithmetic.
// For b >= 0 this is the plain concatenation of both bit patterns; a negative
// b borrows one from the upper half.
func NextLong(s State) (State, int64) {
	s, a := Advance(s)
	s, b := Advance(s)
	return s, int64(a)<<32 + int64(b)
}

// Scramble turns a user supplied seed into internal state, like setSeed.
func Scramble(seed int64) State {
	return State(uint64(seed)^ScrambleConstant) & Mask
}

// Unscramble returns the seed that Scramble maps onto s.
func Unscramble(s State) int64 {
	return int64(s) ^ ScrambleConstant
}
