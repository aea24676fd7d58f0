// File: pool/scratch.go
// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package pool

import "sync"

// Scratch hands out transient slices for operations that need to park
// elements outside the capacity block, such as mixed-state swaps.
// Backed by sync.Pool; slices are scrubbed before reuse.
type Scratch[T any] struct {
	pool sync.Pool
}

// NewScratch creates a scratch slice pool.
func NewScratch[T any]() *Scratch[T] {
	return &Scratch[T]{
		pool: sync.Pool{New: func() any { return []T(nil) }},
	}
}

// Get returns a slice with length n.
func (s *Scratch[T]) Get(n int) []T {
	buf := s.pool.Get().([]T)
	if cap(buf) < n {
		return make([]T, n)
	}
	return buf[:n]
}

// Put returns a slice for reuse.
func (s *Scratch[T]) Put(buf []T) {
	var zero T
	for i := range buf {
		buf[i] = zero
	}
	s.pool.Put(buf[:0])
}
