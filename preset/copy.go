// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package preset

import (
	"reflect"

	"github.com/jinzhu/copier"
)

var deepCopyOption = copier.Option{DeepCopy: true}

// isNil returns whether v is a nil pointer, interface, map, slice or func.
func isNil(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func:
		return v.IsNil()
	}
	return false
}

// cloneOf calls the Clone method of v if it has one that takes no
// arguments and returns a single value assignable to the type of v.
// The result has the type of v.
func cloneOf(v reflect.Value) (reflect.Value, bool) {
	m := v.MethodByName("Clone")
	if !m.IsValid() {
		return reflect.Value{}, false
	}
	mt := m.Type()
	if mt.NumIn() != 0 || mt.NumOut() != 1 {
		return reflect.Value{}, false
	}
	out := mt.Out(0)
	if !out.AssignableTo(v.Type()) && !(out.Kind() == reflect.Interface && v.Type().Implements(out)) {
		return reflect.Value{}, false
	}
	c := m.Call(nil)[0]
	if c.Kind() == reflect.Interface {
		c = c.Elem()
	}
	res := reflect.New(v.Type()).Elem()
	if !c.IsValid() {
		return res, true
	}
	if !c.Type().AssignableTo(v.Type()) {
		return reflect.Value{}, false
	}
	res.Set(c)
	return res, true
}

// deepCopy returns a deep copy of v, with the type of v.
func deepCopy(v reflect.Value) (reflect.Value, error) {
	if isNil(v) {
		return reflect.Zero(v.Type()), nil
	}
	if c, ok := cloneOf(v); ok {
		return c, nil
	}
	dst := reflect.New(v.Type()).Elem()
	switch v.Kind() {
	case reflect.Interface:
		c, err := deepCopy(v.Elem())
		if err != nil {
			return dst, err
		}
		dst.Set(c)
		return dst, nil
	case reflect.Pointer:
		dst.Set(reflect.New(v.Type().Elem()))
		if err := copier.CopyWithOption(dst.Interface(), v.Interface(), deepCopyOption); err != nil {
			return dst, err
		}
		cloneFields(dst.Elem(), v.Elem())
		return dst, nil
	}
	src := reflect.New(v.Type())
	src.Elem().Set(v)
	if err := copier.CopyWithOption(dst.Addr().Interface(), src.Interface(), deepCopyOption); err != nil {
		return dst, err
	}
	cloneFields(dst, v)
	return dst, nil
}

// cloneFields replaces the values in dst, a generic copy of src, that
// have a Clone method with clones of the corresponding values in src,
// so that the copy does not share them.
func cloneFields(dst, src reflect.Value) {
	switch src.Kind() {
	case reflect.Interface, reflect.Pointer:
		if src.IsNil() || !dst.CanSet() {
			return
		}
		if c, ok := cloneOf(src); ok {
			dst.Set(c)
			return
		}
		if src.Kind() == reflect.Pointer && !dst.IsNil() {
			cloneFields(dst.Elem(), src.Elem())
		}
	case reflect.Struct:
		st := src.Type()
		for i, n := 0, st.NumField(); i < n; i++ {
			if !st.Field(i).IsExported() {
				continue
			}
			cloneFields(dst.Field(i), src.Field(i))
		}
	case reflect.Slice, reflect.Array:
		if dst.Len() != src.Len() {
			return
		}
		for i, n := 0, src.Len(); i < n; i++ {
			cloneFields(dst.Index(i), src.Index(i))
		}
	}
}
