// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package minmax provides structs that hold Min and Max values,
// with support for clipping, normalizing and remapping between ranges.
package minmax

// MaxFloat64 is the largest finite float64 value.
const MaxFloat64 float64 = 1.7976931348623158e+308

// F64 accumulates the min / max range of a series of float64 values,
// such as the samples drawn from a provider.
type F64 struct {
	Min float64
	Max float64
}

// SetInfinity sets the Min to +MaxFloat, Max to -MaxFloat -- suitable for
// iteratively calling FitValInRange
func (mr *F64) SetInfinity() {
	mr.Min = MaxFloat64
	mr.Max = -MaxFloat64
}

// FitValInRange adjusts our Min, Max to fit given value within Min, Max range
// returns true if we had to adjust to fit.
func (mr *F64) FitValInRange(val float64) bool {
	adj := false
	if val < mr.Min {
		mr.Min = val
		adj = true
	}
	if val > mr.Max {
		mr.Max = val
		adj = true
	}
	return adj
}
