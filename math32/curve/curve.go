// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package curve provides keyframed scalar curves, typically
// defined over the unit domain [0, 1], with step, linear and smooth
// (cubic Hermite) interpolation between control points.
package curve

import (
	"fmt"
	"math"
	"slices"
	"sort"
	"strings"

	"cogentcore.org/valgen/math32"
	"cogentcore.org/valgen/math32/minmax"
)

// Mode is the interpolation mode used between the keys of a [Curve].
type Mode int32

const (
	// Smooth interpolates with cubic Hermite segments using the key tangents.
	Smooth Mode = iota

	// Linear interpolates linearly between key values.
	Linear

	// Constant holds the value of each key until the next key (a step function).
	Constant
)

func (m Mode) String() string {
	switch m {
	case Smooth:
		return "Smooth"
	case Linear:
		return "Linear"
	case Constant:
		return "Constant"
	}
	return fmt.Sprintf("Mode(%d)", int32(m))
}

// Key is a control point of a [Curve].
type Key struct {

	// Time is the position of the key in the curve domain.
	Time float32

	// Value is the curve value at Time.
	Value float32

	// InTangent is the slope of the curve arriving at the key,
	// used in [Smooth] mode unless Auto is set.
	InTangent float32

	// OutTangent is the slope of the curve leaving the key,
	// used in [Smooth] mode unless Auto is set.
	OutTangent float32

	// Auto computes both tangents from the neighboring keys
	// (Catmull-Rom), ignoring InTangent and OutTangent.
	Auto bool
}

// AutoKey returns a key at the given time and value with automatic tangents.
func AutoKey(time, value float32) Key {
	return Key{Time: time, Value: value, Auto: true}
}

// FlatKey returns a key at the given time and value with zero tangents,
// which eases in and out of the key in [Smooth] mode.
func FlatKey(time, value float32) Key {
	return Key{Time: time, Value: value}
}

// Curve is a sequence of keys sorted by time. It is evaluated by
// interpolating between the two keys surrounding a given time,
// and holds the first and last key values outside of the key domain.
// A Curve is not safe for concurrent modification.
type Curve struct {

	// Keys are the control points, in increasing Time order.
	Keys []Key

	// Mode is the interpolation mode between keys.
	Mode Mode
}

// New returns a new curve with the given mode and keys.
// The keys are copied and sorted by time.
func New(mode Mode, keys ...Key) *Curve {
	c := &Curve{Mode: mode, Keys: slices.Clone(keys)}
	c.Sort()
	return c
}

// Linear01 returns a linear curve going from 0 at time 0 to 1 at time 1.
func Linear01() *Curve {
	return New(Linear, Key{Time: 0, Value: 0}, Key{Time: 1, Value: 1})
}

// EaseInOut returns a smooth curve going from 0 at time 0 to 1 at time 1
// with zero slope at both ends.
func EaseInOut() *Curve {
	return New(Smooth, FlatKey(0, 0), FlatKey(1, 1))
}

// Sort sorts the keys by time, keeping the order of keys with equal times.
func (c *Curve) Sort() {
	slices.SortStableFunc(c.Keys, func(a, b Key) int {
		switch {
		case a.Time < b.Time:
			return -1
		case a.Time > b.Time:
			return 1
		}
		return 0
	})
}

// Add inserts a key with automatic tangents at the given time and value,
// keeping the keys sorted, and returns the curve for chaining.
func (c *Curve) Add(time, value float32) *Curve {
	i := sort.Search(len(c.Keys), func(i int) bool { return c.Keys[i].Time > time })
	c.Keys = slices.Insert(c.Keys, i, AutoKey(time, value))
	return c
}

// Len returns the number of keys.
func (c *Curve) Len() int {
	return len(c.Keys)
}

// Domain returns the range of key times. It is empty (zero) for
// a curve without keys.
func (c *Curve) Domain() minmax.F32 {
	if len(c.Keys) == 0 {
		return minmax.F32{}
	}
	return minmax.Range32(c.Keys[0].Time, c.Keys[len(c.Keys)-1].Time)
}

// Clone returns a deep copy of the curve.
func (c *Curve) Clone() *Curve {
	return &Curve{Mode: c.Mode, Keys: slices.Clone(c.Keys)}
}

// Eval returns the value of the curve at time t. Times outside of the
// key domain return the first or last key value. A curve without keys
// evaluates to 0.
func (c *Curve) Eval(t float32) float32 {
	n := len(c.Keys)
	switch {
	case n == 0:
		return 0
	case t <= c.Keys[0].Time:
		return c.Keys[0].Value
	case t >= c.Keys[n-1].Time:
		return c.Keys[n-1].Value
	}
	i := sort.Search(n, func(i int) bool { return c.Keys[i].Time > t })
	return c.segment(i - 1).eval(t)
}

// Bounds returns the exact range of values the curve takes over its
// domain, including any overshoot of smooth segments between keys.
func (c *Curve) Bounds() minmax.F32 {
	if len(c.Keys) == 0 {
		return minmax.F32{}
	}
	var b minmax.F32
	b.SetInfinity()
	for _, k := range c.Keys {
		b.FitValInRange(k.Value)
	}
	if c.Mode != Smooth {
		return b
	}
	for i := 0; i < len(c.Keys)-1; i++ {
		s := c.segment(i)
		for _, x := range s.extrema() {
			b.FitValInRange(s.at(x))
		}
	}
	return b
}

func (c *Curve) String() string {
	var sb strings.Builder
	sb.WriteString(c.Mode.String())
	sb.WriteString("{")
	for i, k := range c.Keys {
		if i > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "%g:%g", k.Time, k.Value)
	}
	sb.WriteString("}")
	return sb.String()
}

// tangents returns the incoming and outgoing slopes at key i.
func (c *Curve) tangents(i int) (in, out float32) {
	k := c.Keys[i]
	if !k.Auto {
		return k.InTangent, k.OutTangent
	}
	n := len(c.Keys)
	lo, hi := max(i-1, 0), min(i+1, n-1)
	if lo == hi {
		return 0, 0
	}
	dt := c.Keys[hi].Time - c.Keys[lo].Time
	if dt == 0 {
		return 0, 0
	}
	m := (c.Keys[hi].Value - c.Keys[lo].Value) / dt
	return m, m
}

// segment returns the segment from key i to key i+1.
func (c *Curve) segment(i int) segment {
	k0, k1 := c.Keys[i], c.Keys[i+1]
	_, m0 := c.tangents(i)
	m1, _ := c.tangents(i + 1)
	return segment{k0: k0, k1: k1, m0: m0, m1: m1, mode: c.Mode}
}

// segment is the part of a curve between two adjacent keys.
type segment struct {
	k0, k1 Key
	m0, m1 float32
	mode   Mode
}

func (s segment) eval(t float32) float32 {
	dt := s.k1.Time - s.k0.Time
	if dt <= 0 {
		return s.k1.Value
	}
	return s.at((t - s.k0.Time) / dt)
}

// at returns the segment value at normalized position x in [0, 1].
func (s segment) at(x float32) float32 {
	switch s.mode {
	case Constant:
		if x >= 1 {
			return s.k1.Value
		}
		return s.k0.Value
	case Linear:
		return math32.Lerp(s.k0.Value, s.k1.Value, x)
	}
	a, b, c, d := s.coefficients()
	return float32(((a*float64(x)+b)*float64(x)+c)*float64(x) + d)
}

// coefficients returns the cubic polynomial a x^3 + b x^2 + c x + d
// equivalent to the Hermite form of the segment over x in [0, 1].
func (s segment) coefficients() (a, b, c, d float64) {
	dt := float64(s.k1.Time - s.k0.Time)
	v0, v1 := float64(s.k0.Value), float64(s.k1.Value)
	t0, t1 := dt*float64(s.m0), dt*float64(s.m1)
	a = 2*(v0-v1) + t0 + t1
	b = 3*(v1-v0) - 2*t0 - t1
	c = t0
	d = v0
	return
}

// extrema returns the positions in (0, 1) where a smooth
// segment has a local minimum or maximum.
func (s segment) extrema() []float32 {
	if s.k1.Time-s.k0.Time <= 0 {
		return nil
	}
	a, b, c, _ := s.coefficients()
	// derivative: 3a x^2 + 2b x + c
	qa, qb, qc := 3*a, 2*b, c
	var roots []float64
	const eps = 1e-12
	if math.Abs(qa) < eps {
		if math.Abs(qb) > eps {
			roots = append(roots, -qc/qb)
		}
	} else {
		disc := qb*qb - 4*qa*qc
		if disc >= 0 {
			sq := math.Sqrt(disc)
			roots = append(roots, (-qb+sq)/(2*qa), (-qb-sq)/(2*qa))
		}
	}
	var xs []float32
	for _, r := range roots {
		if r > 0 && r < 1 {
			xs = append(xs, float32(r))
		}
	}
	return xs
}
