// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import "sync"

// LockedRand wraps a [Rand] with a mutex so that a single random
// stream can be shared by value providers evaluated on different
// goroutines. The order in which goroutines draw values is not
// deterministic, only the stream itself is.
type LockedRand struct {
	mu  sync.Mutex
	src Rand
}

// NewLockedRand returns a new [LockedRand] guarding the given source.
// If src is nil, a new [SysRand] with the given seed is used.
func NewLockedRand(src Rand, seed int64) *LockedRand {
	if src == nil {
		src = NewSysRand(seed)
	}
	return &LockedRand{src: src}
}

func (r *LockedRand) Seed(seed int64) {
	r.mu.Lock()
	r.src.Seed(seed)
	r.mu.Unlock()
}

func (r *LockedRand) Int63() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.src.Int63()
}

func (r *LockedRand) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.src.Intn(n)
}

func (r *LockedRand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.src.Float64()
}

func (r *LockedRand) Float32() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.src.Float32()
}
