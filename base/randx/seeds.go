// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import (
	"time"
)

// Seeds is a set of random seeds, typically used one per sampling run.
type Seeds []int64

// Init allocates given number of seeds and initializes them to
// sequential numbers base+1..base+n, so that runs are reproducible
// for a given base seed.
func (rs *Seeds) Init(n int, base int64) {
	*rs = make([]int64, n)
	for i := range *rs {
		(*rs)[i] = base + int64(i) + 1
	}
}

// Set seeds the given Rand with the seed at idx.
func (rs Seeds) Set(idx int, rnd Rand) {
	rnd.Seed(rs[idx])
}

// NewSeeds sets a new set of random seeds based on current time
func (rs Seeds) NewSeeds() {
	rn := time.Now().UnixNano()
	for i := range rs {
		rs[i] = rn + int64(i)
	}
}
