// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package preset implements an ordered set of named configuration
values of any type, with a single current entry selected by a cursor.

Entries are added by authoring code before the set is used, and the
cursor is then moved by the application, for example in response to the
user cycling through presets. Writes to the cursor never fail: indexes
outside of the set are clamped to the nearest valid entry. Reading the
current entry of an empty set returns [ErrEmpty] instead of a zero value.

Names are not required to be unique; lookups by name use the first match.
A Set is not safe for concurrent use.
*/
package preset

import (
	"fmt"
	"reflect"
	"strings"

	"cogentcore.org/valgen/base/errors"
	"cogentcore.org/valgen/base/randx"
	"cogentcore.org/valgen/math32"
)

// ErrEmpty is returned when the current entry of an empty [Set] is requested.
var ErrEmpty = errors.New("preset: set is empty")

// Cloner is implemented by values that know how to make a deep copy
// of themselves, which [Set.Clone] uses instead of a generic deep copy.
type Cloner[T any] interface {
	Clone() T
}

// Set is an ordered list of named values with a current entry cursor.
// Names and Values are parallel slices which must be kept in sync
// by code that modifies them directly; [Set.Add] does this.
type Set[T any] struct {

	// Names are the names of the entries, in the same order as Values.
	Names []string

	// Values are the entry values.
	Values []T

	// index is the cursor; 0 <= index < Len() when Len() > 0.
	index int
}

// New returns a new empty [Set]. The zero value is usable
// without initialization, so this is just a convenience.
func New[T any]() *Set[T] {
	return &Set[T]{}
}

// Add appends an entry with the given name and value,
// returning its index. Duplicate names are allowed.
func (s *Set[T]) Add(name string, value T) int {
	s.Names = append(s.Names, name)
	s.Values = append(s.Values, value)
	return len(s.Values) - 1
}

// Reset removes all entries and resets the cursor.
func (s *Set[T]) Reset() {
	s.Names = nil
	s.Values = nil
	s.index = 0
}

// Len returns the number of entries.
func (s *Set[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Values)
}

// Count returns the number of entries; it is the same as [Set.Len].
func (s *Set[T]) Count() int {
	return s.Len()
}

// IndexIsValid returns an error if the given index is out of range.
func (s *Set[T]) IndexIsValid(idx int) error {
	if idx < 0 || idx >= s.Len() {
		return fmt.Errorf("preset.Set: index %d is out of range of a set of length %d", idx, s.Len())
	}
	return nil
}

// CurrentIndex returns the cursor as last stored.
func (s *Set[T]) CurrentIndex() int {
	return s.index
}

// SetCurrentIndex moves the cursor to idx, clamped to the valid
// range of entries, and returns the stored index. On an empty set
// the cursor stays at 0.
func (s *Set[T]) SetCurrentIndex(idx int) int {
	s.index = idx
	s.clamp()
	return s.index
}

// clamp brings the cursor back into range, in case it was set
// on a different number of entries.
func (s *Set[T]) clamp() {
	n := s.Len()
	if n == 0 {
		s.index = 0
		return
	}
	s.index = math32.Clamp(s.index, 0, n-1)
}

// Current returns the value of the current entry, or [ErrEmpty]
// if the set has no entries.
func (s *Set[T]) Current() (T, error) {
	if s.Len() == 0 {
		var zv T
		return zv, ErrEmpty
	}
	s.clamp()
	return s.Values[s.index], nil
}

// CurrentName returns the name of the current entry, or [ErrEmpty]
// if the set has no entries.
func (s *Set[T]) CurrentName() (string, error) {
	if s.Len() == 0 {
		return "", ErrEmpty
	}
	s.clamp()
	return s.Name(s.index), nil
}

// Name returns the name of the entry at idx, or "" if there is none.
func (s *Set[T]) Name(idx int) string {
	if idx < 0 || idx >= len(s.Names) {
		return ""
	}
	return s.Names[idx]
}

// IndexByName returns the index of the first entry with
// the given name, or -1 if there is none.
func (s *Set[T]) IndexByName(name string) int {
	for i, nm := range s.Names {
		if nm == name {
			return i
		}
	}
	return -1
}

// SetCurrentByName moves the cursor to the first entry with the given
// name, returning false and leaving the cursor unchanged if there is none.
func (s *Set[T]) SetCurrentByName(name string) bool {
	idx := s.IndexByName(name)
	if idx < 0 || idx >= s.Len() {
		return false
	}
	s.index = idx
	return true
}

// Next moves the cursor to the next entry, wrapping around
// to the first one, and returns the new index.
func (s *Set[T]) Next() int {
	return s.step(1)
}

// Prev moves the cursor to the previous entry, wrapping around
// to the last one, and returns the new index.
func (s *Set[T]) Prev() int {
	return s.step(-1)
}

func (s *Set[T]) step(delta int) int {
	n := s.Len()
	if n == 0 {
		s.index = 0
		return 0
	}
	s.clamp()
	s.index = ((s.index+delta)%n + n) % n
	return s.index
}

// Random moves the cursor to a uniformly random entry drawn
// from rnd, and returns the new index.
func (s *Set[T]) Random(rnd randx.Rand) int {
	n := s.Len()
	if n == 0 {
		s.index = 0
		return 0
	}
	s.index = rnd.Intn(n)
	return s.index
}

// Clone returns a deep copy of the set, including the cursor.
// Values implementing [Cloner] are copied with their Clone method,
// and others with a generic deep copy, in which any nested value that
// has a Clone method returning its own type (such as a provider tree)
// is copied with that method. Nil values stay nil.
func (s *Set[T]) Clone() (*Set[T], error) {
	cp := &Set[T]{
		Names:  make([]string, len(s.Names)),
		Values: make([]T, len(s.Values)),
		index:  s.index,
	}
	copy(cp.Names, s.Names)
	for i, v := range s.Values {
		if c, ok := any(v).(Cloner[T]); ok && !isNil(reflect.ValueOf(&v).Elem()) {
			cp.Values[i] = c.Clone()
			continue
		}
		cv, err := deepCopy(reflect.ValueOf(&v).Elem())
		if err != nil {
			return nil, fmt.Errorf("preset.Set.Clone: entry %q: %w", s.Name(i), err)
		}
		cp.Values[i] = cv.Interface().(T)
	}
	return cp, nil
}

// String returns a list of the entries, one per line,
// with the current entry marked by a '>'.
func (s *Set[T]) String() string {
	var sb strings.Builder
	for i, v := range s.Values {
		mark := " "
		if i == s.index {
			mark = ">"
		}
		fmt.Fprintf(&sb, "%s %d %s: %v\n", mark, i, s.Name(i), v)
	}
	return sb.String()
}
