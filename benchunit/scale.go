// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchunit

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// A Scaler represents a scaling factor for a number and
// its scientific representation.
type Scaler struct {
	Prec   int     // Digits after the decimal point
	Factor float64 // Unscaled value of 1 Prefix (e.g., 1 k => 1000)
	Prefix string  // Unit prefix ("k", "M", "Ki", etc)
}

// Format formats val and appends the unit prefix according to the
// given scale. For example, if the Scaler has class Decimal,
// Format(123456789) returns "123.5M".
func (s Scaler) Format(val float64) string {
	buf := make([]byte, 0, 20)
	buf = strconv.AppendFloat(buf, val/s.Factor, 'f', s.Prec, 64)
	buf = append(buf, s.Prefix...)
	return string(buf)
}

// Trim is like Format, but drops trailing zeros after the decimal
// point. It suits axis tick labels, which are already round numbers.
func (s Scaler) Trim(val float64) string {
	if val == 0 {
		return "0"
	}
	num := strconv.FormatFloat(val/s.Factor, 'f', s.Prec, 64)
	if strings.Contains(num, ".") {
		num = strings.TrimRight(num, "0")
		num = strings.TrimSuffix(num, ".")
	}
	return num + s.Prefix
}

// NoOpScaler is a Scaler that formats numbers with the smallest
// number of digits necessary to capture the exact value, and no
// prefix. This is intended for when the output will be consumed by
// another program, such as when producing CSV format.
var NoOpScaler = Scaler{-1, 1, ""}

type factor struct {
	factor float64
	prefix string
	// Thresholds for 100.0, 10.00, 1.000.
	t100, t10, t1 float64
}

var (
	siFactors    = mkFactors(10, 3, 12, "T", "G", "M", "k", "", "m", "µ", "n")
	iecFactors   = mkFactors(2, 10, 40, "Ti", "Gi", "Mi", "Ki", "")
	plainFactors = mkFactors(10, 0, 0, "")

	sigfigs, sigfigsBase = mkSigfigs()
)

// mkFactors returns the factors base^exp, base^(exp-step), ... named
// by prefixes.
//
// To ensure that the thresholds for printing values with each factor
// exactly match how printing itself will round, decimal thresholds
// are parsed from their printed form. Binary thresholds are scaled by
// a power of two, which is exact. For binary factors the threshold of
// one factor represents 1024 of the next smaller factor, so values in
// [1000, 1024) are rendered with the smaller factor (1020Ki, not
// 0.996Mi).
func mkFactors(base float64, step, exp int, prefixes ...string) []factor {
	var factors []factor
	for _, p := range prefixes {
		f := math.Pow(base, float64(exp))
		thresh := func(m float64, digits string) float64 {
			if base == 2 {
				return m * f
			}
			t, _ := strconv.ParseFloat(fmt.Sprintf("%se%d", digits, exp), 64)
			return t
		}
		factors = append(factors, factor{f, p, thresh(99.995, "99.995"), thresh(9.9995, "9.9995"), thresh(.99995, ".99995")})
		exp -= step
	}
	return factors
}

func mkSigfigs() ([]float64, int) {
	var sigfigs []float64
	// Print up to 10 digits after the decimal place.
	for exp := -1; exp > -9; exp-- {
		thresh, _ := strconv.ParseFloat(fmt.Sprintf("9.9995e%d", exp), 64)
		sigfigs = append(sigfigs, thresh)
	}
	// sigfigs[0] is the threshold for 3 digits after the decimal.
	return sigfigs, 3
}

// Scale formats val using at least three significant digits,
// appending an SI or binary prefix. See Scaler.Format for details.
func Scale(val float64, cls Class) string {
	return CommonScale([]float64{val}, cls).Format(val)
}

// CommonScale returns a common Scaler to apply to all values in vals.
// This scale will show at least three significant digits for every
// value. The scale is determined by the non-zero value closest to
// zero.
func CommonScale(vals []float64, cls Class) Scaler {
	var min float64
	for _, v := range vals {
		v = math.Abs(v)
		if v != 0 && (min == 0 || v < min) {
			min = v
		}
	}
	if min == 0 {
		return Scaler{3, 1, ""}
	}

	var factors []factor
	switch cls {
	default:
		panic(fmt.Sprintf("bad Class %v", cls))
	case Decimal:
		factors = siFactors
	case Binary:
		factors = iecFactors
	case Plain:
		factors = plainFactors
	}

	for _, factor := range factors {
		switch {
		case min >= factor.t100:
			return Scaler{1, factor.factor, factor.prefix}
		case min >= factor.t10:
			return Scaler{2, factor.factor, factor.prefix}
		case min >= factor.t1:
			return Scaler{3, factor.factor, factor.prefix}
		}
	}

	// The value is less than the smallest factor. Print it using
	// the smallest factor and more precision to achieve the
	// desired sigfigs.
	factor := factors[len(factors)-1]
	val := min / factor.factor
	for i, thresh := range sigfigs {
		if val >= thresh || i == len(sigfigs)-1 {
			return Scaler{i + sigfigsBase, factor.factor, factor.prefix}
		}
	}

	panic("not reachable")
}
