// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package mathutil moves IEEE-754 values between their floating-point and raw bit forms.
package mathutil

import (
	"math"
	"unsafe"
)

// Float is a binary32 or binary64 floating-point type.
type Float interface {
	~float32 | ~float64
}

// BitSize returns the width of F in bits.
func BitSize[F Float]() uint {
	var f F
	return uint(unsafe.Sizeof(f) * 8)
}

// Bits returns the bit pattern of x.
// For 32-bit types the pattern occupies the low 32 bits.
func Bits[F Float](x F) uint64 {
	if BitSize[F]() == 32 {
		return uint64(math.Float32bits(float32(x)))
	}
	return math.Float64bits(float64(x))
}

// FromBits is the inverse of Bits.
// For 32-bit types the high 32 bits of b are ignored.
func FromBits[F Float](b uint64) F {
	if BitSize[F]() == 32 {
		return F(math.Float32frombits(uint32(b)))
	}
	return F(math.Float64frombits(b))
}

// RelErr returns |got-want|/|want|, or |got-want| if want is 0.
func RelErr(got, want float64) float64 {
	diff := math.Abs(got - want)
	if want == 0 {
		return diff
	}
	return diff / math.Abs(want)
}
