// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fastlog

import (
	mu "github.com/avdva/fastlog/internal/mathutil"
)

const (
	// NegNaN32Bits is the float32 bit pattern returned for negative inputs.
	NegNaN32Bits uint32 = 0xFFC00000
	// NegInf32Bits is the float32 bit pattern returned for zero inputs.
	NegInf32Bits uint32 = 0xFF800000
	// NegNaN64Bits is the float64 bit pattern returned for negative inputs.
	NegNaN64Bits uint64 = 0xFFF8000000000000
	// NegInf64Bits is the float64 bit pattern returned for zero inputs.
	NegInf64Bits uint64 = 0xFFF0000000000000
)

// layout describes an IEEE-754 binary format.
//   w-1  w-2       m-1                 0
//   ____|_________|____________________
//   s    eeeeeeeee mmmmmmmmmmmmmmmmmmmm
type layout struct {
	signBit  uint64
	expMask  uint64
	mantMask uint64
	absMask  uint64
	one      uint64 // bits of 1.0
	mantBits uint
	bias     int64
	negNaN   uint64
	negInf   uint64
	terms    int // number of series terms
}

var (
	layout32 = newLayout(8, 23, 6)
	layout64 = newLayout(11, 52, 10)
)

func newLayout(expBits, mantBits uint, terms int) layout {
	width := 1 + expBits + mantBits
	signBit := uint64(1) << (width - 1)
	expMask := (uint64(1)<<expBits - 1) << mantBits
	bias := int64(1)<<(expBits-1) - 1
	return layout{
		signBit:  signBit,
		expMask:  expMask,
		mantMask: uint64(1)<<mantBits - 1,
		absMask:  signBit - 1,
		one:      uint64(bias) << mantBits,
		mantBits: mantBits,
		bias:     bias,
		negInf:   signBit | expMask,
		negNaN:   signBit | expMask | uint64(1)<<(mantBits-1),
		terms:    terms,
	}
}

func layoutOf[F Float]() *layout {
	if mu.BitSize[F]() == 32 {
		return &layout32
	}
	return &layout64
}

func (l *layout) negative(b uint64) bool {
	return b&l.signBit == l.signBit
}

// exceptional reports whether all exponent bits are set (Inf or NaN).
func (l *layout) exceptional(b uint64) bool {
	return b&l.expMask == l.expMask
}

// zero is true for both +0 and -0.
func (l *layout) zero(b uint64) bool {
	return b&l.absMask == 0
}

// exponent returns the unbiased power of two stored in b.
func (l *layout) exponent(b uint64) int64 {
	return int64((b&l.expMask)>>l.mantBits) - l.bias
}

// mantissa returns 1.m for the mantissa bits m of b, a value in [1, 2).
func mantissa[F Float](l *layout, b uint64) F {
	return mu.FromBits[F](b&l.mantMask | l.one)
}
