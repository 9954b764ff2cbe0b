// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package provider

import (
	"fmt"
	"strings"

	"cogentcore.org/valgen/math32"
)

// Op is a binary operator applied by a [Combinator].
type Op int32

const (
	// Multiply returns a * b.
	Multiply Op = iota

	// Add returns a + b.
	Add

	// Subtract returns a - b.
	Subtract

	// Divide returns a / b, or 0 if b is 0.
	Divide

	// Min returns the smaller of a and b.
	Min

	// Max returns the larger of a and b.
	Max

	opN
)

var opNames = [...]string{"Multiply", "Add", "Subtract", "Divide", "Min", "Max"}

var opSymbols = [...]string{"*", "+", "-", "/", "min", "max"}

// Ops returns all of the supported operators.
func Ops() []Op {
	ops := make([]Op, opN)
	for i := range ops {
		ops[i] = Op(i)
	}
	return ops
}

// IsValid returns whether the operator is one of the supported operators.
func (op Op) IsValid() bool {
	return op >= 0 && op < opN
}

// Apply returns the result of the operator applied to a and b.
// An invalid operator returns 0.
func (op Op) Apply(a, b float32) float32 {
	switch op {
	case Multiply:
		return a * b
	case Add:
		return a + b
	case Subtract:
		return a - b
	case Divide:
		if b == 0 {
			return 0
		}
		return a / b
	case Min:
		return math32.Min(a, b)
	case Max:
		return math32.Max(a, b)
	}
	return 0
}

// Format returns the expression form of the operator applied
// to the given operand strings.
func (op Op) Format(a, b string) string {
	if !op.IsValid() {
		return fmt.Sprintf("%v(%s, %s)", op, a, b)
	}
	sym := opSymbols[op]
	if op == Min || op == Max {
		return sym + "(" + a + ", " + b + ")"
	}
	return "(" + a + " " + sym + " " + b + ")"
}

func (op Op) String() string {
	if !op.IsValid() {
		return fmt.Sprintf("Op(%d)", int32(op))
	}
	return opNames[op]
}

// MarshalText encodes the operator as its name.
func (op Op) MarshalText() ([]byte, error) {
	if !op.IsValid() {
		return nil, fmt.Errorf("provider.Op: invalid operator %d", int32(op))
	}
	return []byte(op.String()), nil
}

// UnmarshalText sets the operator from its name, ignoring case.
func (op *Op) UnmarshalText(text []byte) error {
	s := string(text)
	for i, nm := range opNames {
		if strings.EqualFold(nm, s) {
			*op = Op(i)
			return nil
		}
	}
	return fmt.Errorf("provider.Op: unknown operator %q", s)
}
