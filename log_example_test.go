// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fastlog

import (
	"fmt"
	"math"
)

func ExampleNaturalLog() {
	fmt.Printf("ln(10) as float64 = %.6f, as float32 = %.4f\n", NaturalLog(10.0), NaturalLog(float32(10)))
	fmt.Printf("ln(1) = %v, ln(0) = %v, ln(+Inf) = %v\n", Log64(1), Log64(0), Log64(math.Inf(1)))

	neg := Log64(-1)
	fmt.Printf("ln(-1) = %v, bits = %#x\n", neg, math.Float64bits(neg))

	// Output:
	// ln(10) as float64 = 2.302585, as float32 = 2.3026
	// ln(1) = 0, ln(0) = -Inf, ln(+Inf) = +Inf
	// ln(-1) = NaN, bits = 0xfff8000000000000
}

func ExampleClassify() {
	for _, x := range []float64{2.5, 0, math.Copysign(0, -1), math.Inf(1), math.NaN()} {
		fmt.Printf("%v: %s\n", x, Classify(x))
	}

	// Output:
	// 2.5: normal
	// 0: zero
	// -0: negative
	// +Inf: exceptional
	// NaN: exceptional
}
