// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package provider implements procedural value providers: nodes that
produce a scalar value on demand, recomputed on every call to Evaluate.

There are exactly four kinds of provider: [Constant], [RandomRange],
[RandomCurve] and [Combinator]. A Combinator owns its two children, so
a provider graph is always a tree. Trees are built by the authoring code
and then evaluated repeatedly, typically once per simulation step:

	size := provider.Mul(provider.NewConstant(2), provider.NewRandomRange(0.5, 1.5))
	v, err := size.Evaluate()

Providers are not safe for concurrent use: random providers advance their
random source on every evaluation. To share one random stream between
goroutines, inject a [randx.LockedRand] with [SetRand].
*/
package provider

import (
	"fmt"

	"cogentcore.org/valgen/base/errors"
	"cogentcore.org/valgen/base/randx"
	"cogentcore.org/valgen/math32/curve"
	"cogentcore.org/valgen/math32/minmax"
)

var (
	// ErrMissingChild is returned when a [Combinator] with a nil child is evaluated.
	ErrMissingChild = errors.New("provider: missing child")

	// ErrMissingCurve is returned when a [RandomCurve] without a curve is evaluated.
	ErrMissingCurve = errors.New("provider: missing curve")

	// ErrSharedChild is reported by [Validate] when a provider is
	// reachable more than once in a tree.
	ErrSharedChild = errors.New("provider: child is shared")
)

// Provider is a node that yields a scalar value when evaluated,
// possibly by composing other providers.
type Provider interface {
	fmt.Stringer

	// Evaluate computes the current value of the provider.
	// Random providers return a new value on every call.
	Evaluate() (float32, error)

	// Clone returns a deep copy of the provider and all of its children.
	Clone() Provider

	// provider restricts implementations to this package.
	provider()
}

// Randomizer is implemented by the providers that consume a random source.
type Randomizer interface {
	Provider

	// SetRand sets the random source used by the provider.
	// A nil source restores the provider's own seeded source.
	SetRand(rnd randx.Rand)
}

// Constant is a [Provider] that always returns Value.
type Constant struct {
	Value float32
}

// NewConstant returns a new [Constant] provider with the given value.
func NewConstant(v float32) *Constant {
	return &Constant{Value: v}
}

func (c *Constant) Evaluate() (float32, error) {
	return c.Value, nil
}

func (c *Constant) Clone() Provider {
	return &Constant{Value: c.Value}
}

func (c *Constant) String() string {
	return fmt.Sprintf("%g", c.Value)
}

func (c *Constant) provider() {}

// Source is the random source embedded in random providers.
// By default each provider owns a source seeded with Seed, created on first
// use, so that a tree evaluates reproducibly. Combinators built with
// [NewCombinator] keep the seeds within a tree distinct. Setting Rand makes the
// provider draw from that (possibly shared) source instead.
type Source struct {

	// Seed is the seed of the provider's own random source.
	Seed int64

	// Rand, if non-nil, is used instead of the provider's own source.
	Rand randx.Rand `display:"-"`

	own *randx.SysRand
}

// SetRand sets the random source. A nil source restores the
// provider's own seeded source.
func (s *Source) SetRand(rnd randx.Rand) {
	s.Rand = rnd
}

// Reseed sets Seed and restarts the provider's own source from it.
func (s *Source) Reseed(seed int64) {
	s.Seed = seed
	s.own = nil
}

// rand returns the source to draw from.
func (s *Source) rand() randx.Rand {
	if s.Rand != nil {
		return s.Rand
	}
	if s.own == nil {
		s.own = randx.NewSysRand(s.Seed)
	}
	return s.own
}

// clone returns a copy that shares an injected source
// but restarts its own source.
func (s *Source) clone() Source {
	return Source{Seed: s.Seed, Rand: s.Rand}
}

// RandomRange is a [Provider] that returns a value drawn
// uniformly from Range on every evaluation. A range with
// Min > Max is treated as the swapped range.
type RandomRange struct {
	Range minmax.F32
	Source
}

// NewRandomRange returns a new [RandomRange] provider over [min, max].
func NewRandomRange(min, max float32) *RandomRange {
	return &RandomRange{Range: minmax.Range32(min, max)}
}

func (r *RandomRange) Evaluate() (float32, error) {
	return r.Range.Normalized().ProjValue(r.rand().Float32()), nil
}

func (r *RandomRange) Clone() Provider {
	return &RandomRange{Range: r.Range, Source: r.Source.clone()}
}

func (r *RandomRange) String() string {
	return fmt.Sprintf("rand[%g, %g]", r.Range.Min, r.Range.Max)
}

func (r *RandomRange) provider() {}

// RandomCurve is a [Provider] that samples Curve at a uniformly
// random position in [0, 1) on every evaluation.
type RandomCurve struct {
	Curve *curve.Curve
	Source
}

// NewRandomCurve returns a new [RandomCurve] provider sampling the given curve.
// The provider takes ownership of the curve.
func NewRandomCurve(c *curve.Curve) *RandomCurve {
	return &RandomCurve{Curve: c}
}

func (r *RandomCurve) Evaluate() (float32, error) {
	if r.Curve == nil {
		return 0, ErrMissingCurve
	}
	return r.Curve.Eval(r.rand().Float32()), nil
}

func (r *RandomCurve) Clone() Provider {
	cp := &RandomCurve{Source: r.Source.clone()}
	if r.Curve != nil {
		cp.Curve = r.Curve.Clone()
	}
	return cp
}

func (r *RandomCurve) String() string {
	if r.Curve == nil {
		return "curve(<nil>)"
	}
	return "curve(" + r.Curve.String() + ")"
}

func (r *RandomCurve) provider() {}

// Combinator is a [Provider] that combines the values of its
// two children A and B with a binary operator. A is always
// evaluated before B. The combinator owns its children: they
// must not be used elsewhere in the same or another tree.
type Combinator struct {
	Op Op
	A  Provider
	B  Provider
}

// NewCombinator returns a new [Combinator] applying op to a and b,
// taking ownership of both. Random providers in the new tree that
// share a seed with an earlier one (in depth-first order) are given
// the lowest unused seed, so that they draw independent streams.
func NewCombinator(op Op, a, b Provider) *Combinator {
	c := &Combinator{Op: op, A: a, B: b}
	distinctSeeds(c)
	return c
}

// Mul returns a new [Combinator] multiplying a and b.
func Mul(a, b Provider) *Combinator {
	return NewCombinator(Multiply, a, b)
}

func (c *Combinator) Evaluate() (float32, error) {
	if c.A == nil {
		return 0, fmt.Errorf("%v combinator: child a: %w", c.Op, ErrMissingChild)
	}
	if c.B == nil {
		return 0, fmt.Errorf("%v combinator: child b: %w", c.Op, ErrMissingChild)
	}
	a, err := c.A.Evaluate()
	if err != nil {
		return 0, err
	}
	b, err := c.B.Evaluate()
	if err != nil {
		return 0, err
	}
	return c.Op.Apply(a, b), nil
}

func (c *Combinator) Clone() Provider {
	cp := &Combinator{Op: c.Op}
	if c.A != nil {
		cp.A = c.A.Clone()
	}
	if c.B != nil {
		cp.B = c.B.Clone()
	}
	return cp
}

func (c *Combinator) String() string {
	a, b := "<nil>", "<nil>"
	if c.A != nil {
		a = c.A.String()
	}
	if c.B != nil {
		b = c.B.String()
	}
	return c.Op.Format(a, b)
}

func (c *Combinator) provider() {}
