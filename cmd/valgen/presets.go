// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"cogentcore.org/valgen/math32/curve"
	"cogentcore.org/valgen/preset"
	"cogentcore.org/valgen/provider"
)

// Emitter holds the value providers that parameterize a particle emitter.
type Emitter struct {

	// Size is the particle size, in world units.
	Size provider.Provider

	// Speed is the initial particle speed, in world units per second.
	Speed provider.Provider

	// Spin is the angular velocity, in degrees per second.
	Spin provider.Provider
}

// Param is a named emitter parameter.
type Param struct {
	Name     string
	Provider provider.Provider
}

// Params returns the parameters of the emitter, in a fixed order.
func (e Emitter) Params() []Param {
	return []Param{{"size", e.Size}, {"speed", e.Speed}, {"spin", e.Spin}}
}

// Clone returns a deep copy of the emitter.
func (e Emitter) Clone() Emitter {
	cp := Emitter{}
	if e.Size != nil {
		cp.Size = e.Size.Clone()
	}
	if e.Speed != nil {
		cp.Speed = e.Speed.Clone()
	}
	if e.Spin != nil {
		cp.Spin = e.Spin.Clone()
	}
	return cp
}

// Presets returns the built-in emitter presets.
func Presets() *preset.Set[Emitter] {
	s := preset.New[Emitter]()
	s.Add("calm", Emitter{
		Size:  provider.NewConstant(1),
		Speed: provider.NewRandomRange(0.5, 1),
		Spin:  provider.Mul(provider.NewRandomCurve(curve.EaseInOut()), provider.NewConstant(90)),
	})
	s.Add("sparks", Emitter{
		Size: provider.NewCombinator(provider.Max, provider.NewRandomRange(0.05, 0.3), provider.NewConstant(0.1)),
		Speed: provider.Mul(provider.NewRandomRange(4, 8),
			provider.NewRandomCurve(curve.New(curve.Smooth, curve.AutoKey(0, 0.2), curve.AutoKey(0.7, 1), curve.AutoKey(1, 0.6)))),
		Spin: provider.NewRandomRange(-720, 720),
	})
	s.Add("storm", Emitter{
		Size:  provider.NewCombinator(provider.Add, provider.NewConstant(2), provider.NewRandomRange(-0.5, 1.5)),
		Speed: provider.Mul(provider.NewConstant(12), provider.NewRandomCurve(curve.New(curve.Constant, curve.FlatKey(0, 0.5), curve.FlatKey(0.8, 2), curve.FlatKey(1, 2)))),
		Spin:  provider.NewCombinator(provider.Subtract, provider.NewRandomRange(0, 360), provider.NewConstant(180)),
	})
	return s
}
