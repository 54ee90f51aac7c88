// Copyright 2020 Aleksandr Demakin. All rights reserved.

package table

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ValueError is returned by ParseValues for a token that is not a number.
type ValueError struct {
	Pos   int
	Token string
	Err   error
}

func (ve *ValueError) Error() string {
	return fmt.Sprintf("bad value %q at pos %d: %v", ve.Token, ve.Pos, ve.Err)
}

func (ve *ValueError) Unwrap() error {
	return ve.Err
}

// DefaultValues returns the inputs the comparison is usually run on:
// infinities, NaNs of both signs, negative numbers, zero and a range of positive numbers.
func DefaultValues() []float64 {
	values := []float64{
		math.Inf(1), math.Inf(-1), math.NaN(), math.Copysign(math.NaN(), -1),
		-2, -1.5, -1, -0.5, 0, 0.0000001, 0.01, 0.05, 0.1, 0.2, 0.5, 0.6, 0.85, 1,
	}
	for i := 11; i <= 22; i++ {
		values = append(values, float64(i)/10)
	}
	return append(values, 100, 1000, 10000)
}

// ParseValues parses numbers, where "inf", "-inf", "nan" and "-nan" are also accepted.
// Positions in returned errors start from 1.
func ParseValues(tokens []string) ([]float64, error) {
	values := make([]float64, 0, len(tokens))
	for i, token := range tokens {
		v, err := parseValue(strings.TrimSpace(token))
		if err != nil {
			return nil, &ValueError{Pos: i + 1, Token: token, Err: err}
		}
		values = append(values, v)
	}
	return values, nil
}

func parseValue(s string) (float64, error) {
	if len(s) == 0 {
		return 0, fmt.Errorf("empty input")
	}
	// strconv does not accept a sign before nan.
	if strings.EqualFold(s, "-nan") {
		return math.Copysign(math.NaN(), -1), nil
	}
	if strings.EqualFold(s, "+nan") {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(s, 64)
}
