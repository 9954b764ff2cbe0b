// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

// Package math32 is a float32 based math package for procedural values:
// clamping, interpolation and range mapping.
package math32

import (
	"cmp"
	"math"
	"strconv"

	"github.com/chewxy/math32"
)

// These are mostly just wrappers around chewxy/math32, which has
// some optimized implementations.

// MaxFloat32 is the largest finite float32 value.
const MaxFloat32 = math.MaxFloat32

// Max returns the larger of x or y.
func Max(x, y float32) float32 {
	return math32.Max(x, y)
}

// Min returns the smaller of x or y.
func Min(x, y float32) float32 {
	return math32.Min(x, y)
}

//////////////////////////////////////////////////////////////
// Special additions to math. functions

// Clamp clamps x to the provided closed interval [a, b]
func Clamp[T cmp.Ordered](x, a, b T) T {
	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}

// Lerp returns the linear interpolation between start and stop in proportion to amount
func Lerp(start, stop, amount float32) float32 {
	return (1-amount)*start + amount*stop
}

// InvLerp returns the proportion of the way that x lies between start and stop,
// the inverse of [Lerp]. It returns 0 when start == stop.
func InvLerp(start, stop, x float32) float32 {
	if start == stop {
		return 0
	}
	return (x - start) / (stop - start)
}

// Remap maps x from the range [inMin, inMax] to the range [outMin, outMax].
// The result is not clamped, so values outside the input range extrapolate.
func Remap(x, inMin, inMax, outMin, outMax float32) float32 {
	return Lerp(outMin, outMax, InvLerp(inMin, inMax, x))
}

// Truncate rounds a float32 number to the given level of precision,
// which the number of significant digits to include in the result.
func Truncate(val float32, prec int) float32 {
	frep := strconv.FormatFloat(float64(val), 'g', prec, 32)
	tval, _ := strconv.ParseFloat(frep, 32)
	return float32(tval)
}
