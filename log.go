// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package fastlog implements a fast approximation of the natural logarithm
// for float32 and float64 values.
// It works on the IEEE-754 representation directly: the exponent field gives
// the integer part of log2(x), and ln of the mantissa is approximated with a
// truncated series. The result is less precise than math.Log.
package fastlog

import (
	mu "github.com/avdva/fastlog/internal/mathutil"
)

// Float is a type NaturalLog can be computed for.
type Float = mu.Float

// ln2 is math.Ln2 rounded to 11 digits.
const ln2 = 0.69314718056

// oddReciprocals are 1/3, 1/5, ..., 1/19.
var oddReciprocals = [...]float64{
	1.0 / 3.0, 1.0 / 5.0, 1.0 / 7.0, 1.0 / 9.0, 1.0 / 11.0,
	1.0 / 13.0, 1.0 / 15.0, 1.0 / 17.0, 1.0 / 19.0,
}

// NaturalLog returns an approximation of ln(x).
//
// Special cases are:
//	NaturalLog(x) = the bits of NegNaN32Bits/NegNaN64Bits, if x has the sign bit set (including -0, -Inf, -NaN)
//	NaturalLog(+Inf) = +Inf
//	NaturalLog(NaN) = the same NaN
//	NaturalLog(+0) = the bits of NegInf32Bits/NegInf64Bits
//
// float32 values are approximated with 6 series terms, float64 values with 10.
func NaturalLog[F Float](x F) F {
	l := layoutOf[F]()
	b := mu.Bits(x)
	switch l.classify(b) {
	case Negative:
		return mu.FromBits[F](l.negNaN)
	case Exceptional:
		return x
	case Zero:
		return mu.FromBits[F](l.negInf)
	}
	nx := mantissa[F](l, b)
	// ln(nx) = 2*atanh(z), z in [0, 1/3).
	result := atanh((nx-1)/(nx+1), l.terms)
	result += result
	result += F(l.exponent(b)) * F(ln2)
	return result
}

// Log32 returns an approximation of ln(x), see NaturalLog.
func Log32(x float32) float32 {
	return NaturalLog(x)
}

// Log64 returns an approximation of ln(x), see NaturalLog.
func Log64(x float64) float64 {
	return NaturalLog(x)
}

// atanh sums z + z^3/3 + z^5/5 + ... up to the given number of terms.
func atanh[F Float](z F, terms int) F {
	zsq := z * z
	result := z
	for _, r := range oddReciprocals[:terms-1] {
		z *= zsq
		result += z * F(r)
	}
	return result
}
