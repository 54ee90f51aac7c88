// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package table builds and prints a side-by-side comparison of fastlog
// results with math.Log and another fast logarithm.
package table

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	approx "github.com/meko-christian/algo-approx"
	"github.com/robaho/fixed"
	"github.com/shopspring/decimal"

	"github.com/avdva/fastlog"
)

// Format selects how numbers are rendered in a table.
type Format int

const (
	// FormatFloat prints shortest float representations, or `prec` significant digits if prec > 0.
	FormatFloat Format = iota
	// FormatDecimal prints values with `prec` digits after the decimal point.
	FormatDecimal
	// FormatFixed prints values as 7-digit fixed-point numbers, ignoring `prec`.
	// Values outside of the fixed-point range are printed as FormatFloat does.
	FormatFixed
)

// maxFixed bounds the magnitude of values robaho/fixed can hold.
const maxFixed = 99999999999

var formatNames = [...]string{
	FormatFloat:   "float",
	FormatDecimal: "decimal",
	FormatFixed:   "fixed",
}

var header = []string{"x", "fp32", "math.Log(fp32)", "fp64", "math.Log", "algo-approx"}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return "unknown"
	}
	return formatNames[f]
}

// ParseFormat returns a format by its name.
func ParseFormat(s string) (Format, error) {
	for i, name := range formatNames {
		if strings.EqualFold(s, name) {
			return Format(i), nil
		}
	}
	return FormatFloat, fmt.Errorf("unknown format %q", s)
}

// Row is a single line of a table.
type Row struct {
	X      float64
	F32    float32
	Ref32  float32 // math.Log of float32(x), rounded to float32.
	F64    float64
	Ref    float64
	Approx float64 // NaN if x is not positive and finite.
}

// Build computes a row for every value.
func Build(values []float64) []Row {
	rows := make([]Row, 0, len(values))
	for _, x := range values {
		row := Row{
			X:      x,
			F32:    fastlog.Log32(float32(x)),
			Ref32:  float32(math.Log(float64(float32(x)))),
			F64:    fastlog.Log64(x),
			Ref:    math.Log(x),
			Approx: math.NaN(),
		}
		if fastlog.Classify(x) == fastlog.Normal {
			row.Approx = approx.FastLog(x)
		}
		rows = append(rows, row)
	}
	return rows
}

// Write prints rows as a right-aligned table.
func Write(w io.Writer, rows []Row, format Format, prec int32) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	if err := writeLine(tw, header); err != nil {
		return fmt.Errorf("table write failed: %w", err)
	}
	for _, r := range rows {
		err := writeLine(tw, []string{
			formatValue(r.X, 64, format, prec),
			formatValue(float64(r.F32), 32, format, prec),
			formatValue(float64(r.Ref32), 32, format, prec),
			formatValue(r.F64, 64, format, prec),
			formatValue(r.Ref, 64, format, prec),
			formatValue(r.Approx, 64, format, prec),
		})
		if err != nil {
			return fmt.Errorf("table write failed: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("table write failed: %w", err)
	}
	return nil
}

func writeLine(w io.Writer, cells []string) error {
	var builder strings.Builder
	for _, c := range cells {
		builder.WriteString(c)
		builder.WriteByte('\t')
	}
	builder.WriteByte('\n')
	_, err := io.WriteString(w, builder.String())
	return err
}

// formatValue renders non-finite values the same way for all formats.
func formatValue(v float64, bitSize int, format Format, prec int32) string {
	switch {
	case math.IsNaN(v):
		if math.Signbit(v) {
			return "-NaN"
		}
		return "NaN"
	case math.IsInf(v, 0):
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	switch format {
	case FormatDecimal:
		return decimal.NewFromFloat(v).StringFixed(prec)
	case FormatFixed:
		if math.Abs(v) < maxFixed {
			return fixed.NewF(v).String()
		}
		return formatFloat(v, bitSize, 0)
	default:
		return formatFloat(v, bitSize, prec)
	}
}

func formatFloat(v float64, bitSize int, prec int32) string {
	digits := -1
	if prec > 0 {
		digits = int(prec)
	}
	return strconv.FormatFloat(v, 'g', digits, bitSize)
}
