// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package minmax

import (
	"testing"

	"cogentcore.org/valgen/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func TestF32(t *testing.T) {
	r := Range32(2, 6)
	assert.True(t, r.IsValid())
	assert.Equal(t, float32(4), r.Range())
	assert.Equal(t, float32(4), r.Midpoint())
	assert.True(t, r.InRange(2))
	assert.True(t, r.InRange(6))
	assert.False(t, r.InRange(6.5))
	assert.True(t, r.IsLow(1))
	assert.True(t, r.IsHigh(7))
	assert.False(t, r.IsHigh(3))

	assert.Equal(t, float32(2), r.ClipValue(-10))
	assert.Equal(t, float32(6), r.ClipValue(10))
	tolassert.Equal(t, 0.5, r.NormValue(4))
	tolassert.Equal(t, 1, r.NormValue(100))
	tolassert.Equal(t, 5, r.ProjValue(0.75))
	assert.Equal(t, "[2, 6]", r.String())
}

func TestF32Normalized(t *testing.T) {
	r := Range32(5, 1)
	assert.False(t, r.IsValid())
	n := r.Normalized()
	assert.Equal(t, Range32(1, 5), n)
	assert.Equal(t, Range32(5, 1), r)
	assert.Equal(t, n, n.Normalized())
}

func TestF32Remap(t *testing.T) {
	from := Range32(0, 10)
	to := Range32(-1, 1)
	tolassert.Equal(t, -1, from.Remap(0, to))
	tolassert.Equal(t, 0, from.Remap(5, to))
	tolassert.Equal(t, 1, from.Remap(20, to))

	zero := Range32(3, 3)
	assert.Equal(t, float32(0), zero.Scale())
	tolassert.Equal(t, -1, zero.Remap(3, to))
}

func TestFitInRange(t *testing.T) {
	var r F32
	r.SetInfinity()
	for _, v := range []float32{3, -1, 8, 2} {
		r.FitValInRange(v)
	}
	assert.Equal(t, Range32(-1, 8), r)
	assert.True(t, r.FitInRange(Range32(-2, 4)))
	assert.Equal(t, Range32(-2, 8), r)
	assert.False(t, r.FitInRange(Range32(0, 1)))

	var d F64
	d.SetInfinity()
	assert.True(t, d.FitValInRange(0.5))
	assert.True(t, d.FitValInRange(1.5))
	assert.False(t, d.FitValInRange(1))
	assert.Equal(t, F64{0.5, 1.5}, d)
}
