// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command valgen lists, samples and cycles through the built-in
// particle emitter presets, whose parameters are procedural value
// providers. It is useful for checking the ranges and distributions
// that a set of presets produces.
package main

import (
	"os"

	"cogentcore.org/valgen/base/errors"
)

func main() {
	if errors.Log(newRootCmd().Execute()) != nil {
		os.Exit(1)
	}
}
