// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fastlog

import (
	mu "github.com/avdva/fastlog/internal/mathutil"
)

// Class is the category NaturalLog puts its input in before any approximation work.
type Class int

const (
	// Normal is a positive finite non-zero value.
	Normal Class = iota
	// Negative is any value with the sign bit set, including -0, -Inf and negative NaNs.
	Negative
	// Zero is +0.
	Zero
	// Exceptional is +Inf or a positive NaN.
	Exceptional
)

var classNames = [...]string{
	Normal:      "normal",
	Negative:    "negative",
	Zero:        "zero",
	Exceptional: "exceptional",
}

func (c Class) String() string {
	if c < 0 || int(c) >= len(classNames) {
		return "unknown"
	}
	return classNames[c]
}

// Classify returns the class of x.
func Classify[F Float](x F) Class {
	return layoutOf[F]().classify(mu.Bits(x))
}

// classify checks the sign first, so -0 is Negative rather than Zero.
func (l *layout) classify(b uint64) Class {
	switch {
	case l.negative(b):
		return Negative
	case l.exceptional(b):
		return Exceptional
	case l.zero(b):
		return Zero
	default:
		return Normal
	}
}
