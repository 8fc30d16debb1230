// Package bits converts between two's-complement integers and their raw bit
// patterns at a chosen width.
package bits

import "fmt"

// MaxWidth is the widest supported bit width.
const MaxWidth = 64

// Mask returns a value with the low width bits set.
func Mask(width uint) uint64 {
	if width >= MaxWidth {
		return ^uint64(0)
	}
	return 1<<width - 1
}

func checkWidth(width uint) {
	if width == 0 || width > MaxWidth {
		panic(fmt.Sprintf("bits: invalid width %d", width))
	}
}

// ToSigned interprets the low width bits of u as a two's-complement number.
// If bit width-1 is set the result is u - 2^width, otherwise u.
func ToSigned(u uint64, width uint) int64 {
	checkWidth(width)
	m := Mask(width)
	u &= m
	if u>>(width-1)&1 == 1 {
		return int64(u | ^m)
	}
	return int64(u)
}

// ToUnsignedBits returns the width-bit two's-complement pattern of v.
// v must be representable in width bits.
func ToUnsignedBits(v int64, width uint) uint64 {
	checkWidth(width)
	if v < 0 {
		// complement plus one of |v|; -MinInt64 wraps to itself, which is still right
		return (^uint64(-v) + 1) & Mask(width)
	}
	return uint64(v) & Mask(width)
}

// Split returns the most and least significant 32-bit halves of v's
// 64-bit pattern.
func Split(v int64) (hi, lo uint32) {
	u := ToUnsignedBits(v, 64)
	return uint32(u >> 32), uint32(u)
}

// Join concatenates hi and lo into a 64-bit pattern and reads it as signed.
func Join(hi, lo uint32) int64 {
	return ToSigned(uint64(hi)<<32|uint64(lo), 64)
}
