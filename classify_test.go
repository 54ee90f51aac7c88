// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fastlog

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayout(t *testing.T) {
	a := assert.New(t)
	a.Equal(layout{
		signBit:  0x80000000,
		expMask:  0x7F800000,
		mantMask: 0x007FFFFF,
		absMask:  0x7FFFFFFF,
		one:      0x3F800000,
		mantBits: 23,
		bias:     127,
		negNaN:   uint64(NegNaN32Bits),
		negInf:   uint64(NegInf32Bits),
		terms:    6,
	}, layout32)
	a.Equal(layout{
		signBit:  0x8000000000000000,
		expMask:  0x7FF0000000000000,
		mantMask: 0x000FFFFFFFFFFFFF,
		absMask:  0x7FFFFFFFFFFFFFFF,
		one:      0x3FF0000000000000,
		mantBits: 52,
		bias:     1023,
		negNaN:   NegNaN64Bits,
		negInf:   NegInf64Bits,
		terms:    10,
	}, layout64)
	a.Same(&layout32, layoutOf[float32]())
	a.Same(&layout64, layoutOf[float64]())
}

func TestFields(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x    float64
		exp  int64
		mant float64
	}{
		{1, 0, 1},
		{2, 1, 1},
		{3, 1, 1.5},
		{0.75, -1, 1.5},
		{1e-7, -24, 1.6777216},
		{10000, 13, 1.220703125},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			b64 := math.Float64bits(test.x)
			a.Equal(test.exp, layout64.exponent(b64))
			a.InDelta(test.mant, mantissa[float64](&layout64, b64), 1e-15)

			b32 := uint64(math.Float32bits(float32(test.x)))
			a.Equal(test.exp, layout32.exponent(b32))
			a.InDelta(test.mant, float64(mantissa[float32](&layout32, b32)), 1e-6)
		})
	}
}

func TestClassify(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x       float64
		class   Class
		class32 Class // class of float32(x)
	}{
		{1, Normal, Normal},
		{math.SmallestNonzeroFloat64, Normal, Zero},
		{math.MaxFloat64, Normal, Exceptional},
		{-math.SmallestNonzeroFloat64, Negative, Negative},
		{math.SmallestNonzeroFloat32, Normal, Normal},
		{math.MaxFloat32, Normal, Normal},
		{0, Zero, Zero},
		{math.Copysign(0, -1), Negative, Negative},
		{-1, Negative, Negative},
		{math.Inf(-1), Negative, Negative},
		{math.Copysign(math.NaN(), -1), Negative, Negative},
		{math.Inf(1), Exceptional, Exceptional},
		{math.NaN(), Exceptional, Exceptional},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.class, Classify(test.x))
			a.Equal(test.class32, Classify(float32(test.x)))
		})
	}
}

func TestClassString(t *testing.T) {
	a := assert.New(t)
	a.Equal("normal", Normal.String())
	a.Equal("negative", Negative.String())
	a.Equal("zero", Zero.String())
	a.Equal("exceptional", Exceptional.String())
	a.Equal("unknown", Class(42).String())
	a.Equal("unknown", Class(-1).String())
}
