// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package preset

import (
	"testing"

	"cogentcore.org/valgen/base/randx"
	"cogentcore.org/valgen/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func levels() *Set[int] {
	s := New[int]()
	s.Add("low", 1)
	s.Add("mid", 5)
	s.Add("high", 9)
	return s
}

func current[T any](t *testing.T, s *Set[T]) T {
	t.Helper()
	v, err := s.Current()
	require.NoError(t, err)
	return v
}

func TestEmpty(t *testing.T) {
	var s Set[int]
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0, s.Count())
	_, err := s.Current()
	assert.ErrorIs(t, err, ErrEmpty)
	_, err = s.CurrentName()
	assert.ErrorIs(t, err, ErrEmpty)

	assert.Equal(t, 0, s.SetCurrentIndex(5))
	assert.Equal(t, 0, s.CurrentIndex())
	assert.Equal(t, 0, s.Next())
	assert.Equal(t, 0, s.Prev())
	assert.Equal(t, 0, s.Random(randx.NewSysRand(1)))
	assert.Equal(t, "", s.String())

	var np *Set[string]
	assert.Equal(t, 0, np.Len())
}

func TestCursor(t *testing.T) {
	s := levels()
	assert.Equal(t, 3, s.Count())
	assert.Equal(t, 0, s.CurrentIndex())
	assert.Equal(t, 1, current(t, s))

	s.SetCurrentIndex(1)
	assert.Equal(t, 1, s.CurrentIndex())
	assert.Equal(t, 5, current(t, s))

	s.SetCurrentIndex(99)
	assert.Equal(t, 2, s.CurrentIndex())
	assert.Equal(t, 9, current(t, s))

	s.SetCurrentIndex(-1)
	assert.Equal(t, 0, s.CurrentIndex())
	assert.Equal(t, 1, current(t, s))
}

func TestClampBounds(t *testing.T) {
	for n := 1; n <= 5; n++ {
		s := New[int]()
		for i := 0; i < n; i++ {
			s.Add("p", i*10)
		}
		assert.Equal(t, 0, s.SetCurrentIndex(-5))
		assert.Equal(t, n-1, s.SetCurrentIndex(n+5))
		for i := 0; i < n; i++ {
			assert.Equal(t, i, s.SetCurrentIndex(i))
			assert.Equal(t, i*10, current(t, s))
		}
	}
}

func TestRevalidateAfterExternalChange(t *testing.T) {
	s := levels()
	s.SetCurrentIndex(2)
	s.Names = s.Names[:1]
	s.Values = s.Values[:1]
	assert.Equal(t, 2, s.CurrentIndex())
	assert.Equal(t, 1, current(t, s))
	assert.Equal(t, 0, s.CurrentIndex())

	s.Reset()
	_, err := s.Current()
	assert.ErrorIs(t, err, ErrEmpty)
	s.Add("again", 3)
	assert.Equal(t, 3, current(t, s))
}

func TestNames(t *testing.T) {
	s := levels()
	s.Add("mid", 6)
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, 1, s.IndexByName("mid"))
	assert.Equal(t, -1, s.IndexByName("max"))
	assert.Equal(t, "high", s.Name(2))
	assert.Equal(t, "", s.Name(10))

	assert.True(t, s.SetCurrentByName("high"))
	assert.Equal(t, 9, current(t, s))
	nm, err := s.CurrentName()
	require.NoError(t, err)
	assert.Equal(t, "high", nm)

	assert.False(t, s.SetCurrentByName("max"))
	assert.Equal(t, 2, s.CurrentIndex())

	assert.NoError(t, s.IndexIsValid(3))
	assert.Error(t, s.IndexIsValid(4))
	assert.Error(t, s.IndexIsValid(-1))
}

func TestCycle(t *testing.T) {
	s := levels()
	var got []int
	for i := 0; i < 4; i++ {
		got = append(got, s.Next())
	}
	assert.Equal(t, []int{1, 2, 0, 1}, got)

	got = nil
	for i := 0; i < 4; i++ {
		got = append(got, s.Prev())
	}
	assert.Equal(t, []int{0, 2, 1, 0}, got)
}

func TestRandom(t *testing.T) {
	s := levels()
	rnd := randx.NewSysRand(2)
	counts := make([]int, s.Len())
	for i := 0; i < 3000; i++ {
		idx := s.Random(rnd)
		require.Equal(t, idx, s.CurrentIndex())
		counts[idx]++
	}
	for _, c := range counts {
		assert.InDelta(t, 1000, c, 150)
	}
}

type params struct {
	Speed float32
	Tags  []string
}

func TestCloneGeneric(t *testing.T) {
	s := New[params]()
	s.Add("slow", params{Speed: 1, Tags: []string{"calm"}})
	s.Add("fast", params{Speed: 9, Tags: []string{"wild", "loud"}})
	s.SetCurrentIndex(1)

	cp, err := s.Clone()
	require.NoError(t, err)
	s.Values[1].Tags[0] = "changed"
	s.Values[1].Speed = 0
	s.Names[1] = "renamed"

	assert.Equal(t, 1, cp.CurrentIndex())
	v := current(t, cp)
	assert.Equal(t, float32(9), v.Speed)
	assert.Equal(t, []string{"wild", "loud"}, v.Tags)
	assert.Equal(t, "fast", cp.Name(1))

	ints, err := levels().Clone()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 5, 9}, ints.Values)
}

func TestCloneProviders(t *testing.T) {
	s := New[provider.Provider]()
	c := provider.NewConstant(3)
	s.Add("three", provider.Mul(c, provider.NewConstant(4)))

	cp, err := s.Clone()
	require.NoError(t, err)
	c.Value = 10

	p := current(t, cp)
	v, err := p.Evaluate()
	require.NoError(t, err)
	assert.Equal(t, float32(12), v)

	p = current(t, s)
	v, err = p.Evaluate()
	require.NoError(t, err)
	assert.Equal(t, float32(40), v)
}

func TestCloneNilEntry(t *testing.T) {
	s := New[provider.Provider]()
	s.Add("unset", nil)
	s.Add("one", provider.NewConstant(1))
	cp, err := s.Clone()
	require.NoError(t, err)
	assert.Nil(t, cp.Values[0])
	assert.Equal(t, "1", cp.Values[1].String())

	ptrs := New[*params]()
	ptrs.Add("unset", nil)
	cpp, err := ptrs.Clone()
	require.NoError(t, err)
	assert.Nil(t, cpp.Values[0])
}

type emitter struct {
	Name string
	Size provider.Provider
	Spin provider.Provider
}

func TestCloneNestedProviders(t *testing.T) {
	size := provider.NewConstant(3)
	spin := provider.NewRandomRange(0, 1)
	s := New[emitter]()
	s.Add("e", emitter{Name: "e", Size: size, Spin: spin})

	cp, err := s.Clone()
	require.NoError(t, err)
	size.Value = 10
	v := current(t, cp)
	assert.Equal(t, "e", v.Name)
	assert.NotSame(t, size, v.Size)
	assert.NotSame(t, spin, v.Spin)
	sv, err := v.Size.Evaluate()
	require.NoError(t, err)
	assert.Equal(t, float32(3), sv)
	assert.Equal(t, "rand[0, 1]", v.Spin.String())
}

func TestClonePointers(t *testing.T) {
	combs := New[*provider.Combinator]()
	c := provider.NewConstant(3)
	combs.Add("three", provider.Mul(c, provider.NewConstant(4)))
	cp, err := combs.Clone()
	require.NoError(t, err)
	c.Value = 10
	v, err := current(t, cp).Evaluate()
	require.NoError(t, err)
	assert.Equal(t, float32(12), v)

	ps := New[*params]()
	orig := &params{Speed: 2, Tags: []string{"a"}}
	ps.Add("p", orig)
	cpp, err := ps.Clone()
	require.NoError(t, err)
	orig.Speed = 5
	orig.Tags[0] = "b"
	got := current(t, cpp)
	assert.NotSame(t, orig, got)
	assert.Equal(t, float32(2), got.Speed)
	assert.Equal(t, []string{"a"}, got.Tags)
}

func TestString(t *testing.T) {
	s := levels()
	s.SetCurrentIndex(1)
	assert.Equal(t, "  0 low: 1\n> 1 mid: 5\n  2 high: 9\n", s.String())
}
