// File: pool/slabcache.go
// Package pool implements slab recycling for dynamic capacity blocks.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// A SlabCache keeps released slot arrays warm in per-capacity FIFO free
// lists so that grow/shrink churn on a sequence does not hit the
// allocator every time. Free lists are exact-capacity: a dynamic block
// allocated for n slots is only ever satisfied by a recycled array of
// exactly n slots, which preserves the capacity arithmetic of the
// storage layer.

package pool

import (
	"sync"
	"unsafe"

	"github.com/eapache/queue"
	"golang.org/x/sys/cpu"

	"github.com/momentics/hioload-seq/api"
	"github.com/momentics/hioload-seq/internal/platform"
)

// slabsPerClass bounds the free-list depth per capacity class.
const slabsPerClass = 4

// CacheStats aggregates slab allocation/reuse counters.
type CacheStats struct {
	Acquires int64
	Releases int64
	Reuses   int64
	Drops    int64
}

// SlabCache recycles slot arrays for one element type. It is safe for
// concurrent use, although sequences themselves are single-threaded.
type SlabCache[T any] struct {
	mu   sync.Mutex
	free map[int]*queue.Queue // capacity -> FIFO of []T
	_    cpu.CacheLinePad
	stats       CacheStats
	retainSlots int // slabs larger than this are not retained
}

// NewSlabCache creates an empty cache. The retention bound is derived
// from the platform page size.
func NewSlabCache[T any]() *SlabCache[T] {
	var probe T
	elem := int(unsafe.Sizeof(probe))
	retain := platform.RetainLimit()
	if elem > 0 {
		retain /= elem
	}
	return &SlabCache[T]{
		free:        make(map[int]*queue.Queue),
		retainSlots: retain,
	}
}

// Acquire returns a slot array of exactly n slots, recycled when a
// matching slab is available. All slots hold the zero value.
func (c *SlabCache[T]) Acquire(n int) ([]T, error) {
	if n < 0 {
		return nil, api.NewError(api.ErrCodeAllocationFailure, "negative slot count").WithContext("slots", n)
	}
	if n == 0 {
		return nil, nil
	}
	c.mu.Lock()
	c.stats.Acquires++
	if q, ok := c.free[n]; ok && q.Length() > 0 {
		s := q.Remove().([]T)
		c.stats.Reuses++
		c.mu.Unlock()
		return s, nil
	}
	c.mu.Unlock()
	return make([]T, n), nil
}

// Release hands a slot array back for reuse. The array is scrubbed
// before retention so no element references outlive their extent.
// Oversized and over-full classes are dropped to the collector.
func (c *SlabCache[T]) Release(s []T) {
	if len(s) == 0 {
		return
	}
	var zero T
	for i := range s {
		s[i] = zero
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats.Releases++
	if len(s) > c.retainSlots {
		c.stats.Drops++
		return
	}
	q, ok := c.free[len(s)]
	if !ok {
		q = queue.New()
		c.free[len(s)] = q
	}
	if q.Length() >= slabsPerClass {
		c.stats.Drops++
		return
	}
	q.Add(s)
}

// Stats returns a snapshot of the cache counters.
func (c *SlabCache[T]) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}
