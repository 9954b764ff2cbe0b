// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package provider

import (
	"fmt"

	"cogentcore.org/valgen/base/errors"
	"cogentcore.org/valgen/base/randx"
	"cogentcore.org/valgen/math32"
	"cogentcore.org/valgen/math32/minmax"
)

// Children returns the non-nil children of the given provider.
func Children(p Provider) []Provider {
	c, ok := p.(*Combinator)
	if !ok {
		return nil
	}
	var ch []Provider
	if c.A != nil {
		ch = append(ch, c.A)
	}
	if c.B != nil {
		ch = append(ch, c.B)
	}
	return ch
}

// Walk calls fn for p and each provider below it, depth-first with
// parents before children, passing the depth of each (p is at depth 0).
// If fn returns false, the children of that provider are skipped.
// Each provider is visited at most once.
func Walk(p Provider, fn func(p Provider, depth int) bool) {
	if p == nil {
		return
	}
	seen := map[Provider]bool{}
	var walk func(p Provider, depth int)
	walk = func(p Provider, depth int) {
		if seen[p] {
			return
		}
		seen[p] = true
		if !fn(p, depth) {
			return
		}
		for _, c := range Children(p) {
			walk(c, depth+1)
		}
	}
	walk(p, 0)
}

// Depth returns the number of levels in the tree rooted at p:
// 0 for nil, 1 for a leaf.
func Depth(p Provider) int {
	d := 0
	Walk(p, func(p Provider, depth int) bool {
		d = max(d, depth+1)
		return true
	})
	return d
}

// Validate checks the tree rooted at p for configuration errors:
// combinators with missing children, random curves without a curve,
// and providers reachable more than once. All errors found are
// returned, joined. A swapped random range is not an error.
func Validate(p Provider) error {
	if p == nil {
		return fmt.Errorf("root: %w", ErrMissingChild)
	}
	var errs []error
	seen := map[Provider]bool{}
	var check func(p Provider, path string)
	check = func(p Provider, path string) {
		if seen[p] {
			errs = append(errs, fmt.Errorf("%s: %w", path, ErrSharedChild))
			return
		}
		seen[p] = true
		switch x := p.(type) {
		case *RandomCurve:
			if x.Curve == nil {
				errs = append(errs, fmt.Errorf("%s: %w", path, ErrMissingCurve))
			}
		case *Combinator:
			if x.A == nil {
				errs = append(errs, fmt.Errorf("%s.a: %w", path, ErrMissingChild))
			} else {
				check(x.A, path+".a")
			}
			if x.B == nil {
				errs = append(errs, fmt.Errorf("%s.b: %w", path, ErrMissingChild))
			} else {
				check(x.B, path+".b")
			}
		}
	}
	check(p, "root")
	return errors.Join(errs...)
}

// SetRand sets the random source of every random provider in the
// tree rooted at p. A nil source restores each provider's own source.
func SetRand(p Provider, rnd randx.Rand) {
	Walk(p, func(p Provider, depth int) bool {
		if r, ok := p.(Randomizer); ok {
			r.SetRand(rnd)
		}
		return true
	})
}

// Reseed gives every random provider in the tree rooted at p its own
// source, seeded with seed plus its position in depth-first order,
// so that providers in the same tree draw independent streams.
func Reseed(p Provider, seed int64) {
	i := int64(0)
	Walk(p, func(p Provider, depth int) bool {
		if s := source(p); s != nil {
			s.SetRand(nil)
			s.Reseed(seed + i)
			i++
		}
		return true
	})
}

// source returns the random source of p, or nil if p is not random.
func source(p Provider) *Source {
	switch x := p.(type) {
	case *RandomRange:
		return &x.Source
	case *RandomCurve:
		return &x.Source
	}
	return nil
}

// distinctSeeds reseeds each random provider in the tree rooted at p
// whose own source has the same seed as an earlier provider, using
// the lowest seeds not yet in use. Providers with an injected source
// are left alone.
func distinctSeeds(p Provider) {
	used := map[int64]bool{}
	var dups []*Source
	Walk(p, func(p Provider, depth int) bool {
		s := source(p)
		if s == nil || s.Rand != nil {
			return true
		}
		if used[s.Seed] {
			dups = append(dups, s)
		} else {
			used[s.Seed] = true
		}
		return true
	})
	next := int64(0)
	for _, s := range dups {
		for used[next] {
			next++
		}
		used[next] = true
		s.Reseed(next)
	}
}

// Bounds returns a conservative range of the values that the tree
// rooted at p can produce, using interval arithmetic. The range may
// be wider than the values actually produced, for example when the
// same random value would be needed at both ends of two intervals.
func Bounds(p Provider) (minmax.F32, error) {
	if err := Validate(p); err != nil {
		return minmax.F32{}, err
	}
	return bounds(p), nil
}

func bounds(p Provider) minmax.F32 {
	switch x := p.(type) {
	case *Constant:
		return minmax.Range32(x.Value, x.Value)
	case *RandomRange:
		return x.Range.Normalized()
	case *RandomCurve:
		return x.Curve.Bounds()
	case *Combinator:
		return x.Op.bounds(bounds(x.A), bounds(x.B))
	}
	return minmax.F32{}
}

// bounds returns the range of op applied to values in a and b.
func (op Op) bounds(a, b minmax.F32) minmax.F32 {
	switch op {
	case Add:
		return minmax.Range32(a.Min+b.Min, a.Max+b.Max)
	case Subtract:
		return minmax.Range32(a.Min-b.Max, a.Max-b.Min)
	case Min:
		return minmax.Range32(math32.Min(a.Min, b.Min), math32.Min(a.Max, b.Max))
	case Max:
		return minmax.Range32(math32.Max(a.Min, b.Min), math32.Max(a.Max, b.Max))
	case Divide:
		if b.Min == 0 && b.Max == 0 {
			return minmax.Range32(0, 0)
		}
		if b.Min <= 0 && b.Max >= 0 {
			return minmax.Range32(-math32.MaxFloat32, math32.MaxFloat32)
		}
	case Multiply:
	default:
		return minmax.F32{}
	}
	var r minmax.F32
	r.SetInfinity()
	for _, x := range [2]float32{a.Min, a.Max} {
		for _, y := range [2]float32{b.Min, b.Max} {
			r.FitValInRange(op.Apply(x, y))
		}
	}
	return r
}
