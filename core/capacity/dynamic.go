// File: core/capacity/dynamic.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Dynamic capacity block: a uniquely-owned heap slot array acquired
// from and recycled through a slab cache. The block itself never moves
// elements; the storage layer installs the new array through Adopt,
// relocates the live extent into it, and only then recycles the old
// array, so every destination is written before any source is given up.

package capacity

import "github.com/momentics/hioload-seq/pool"

// Dynamic owns a heap slot array. The zero state is null: nil slots,
// zero capacity.
type Dynamic[T any] struct {
	slots []T
	cache *pool.SlabCache[T]
}

// NewDynamic creates a null block drawing from cache.
func NewDynamic[T any](cache *pool.SlabCache[T]) *Dynamic[T] {
	return &Dynamic[T]{cache: cache}
}

// Slots returns the raw slot array, nil when null.
func (d *Dynamic[T]) Slots() []T { return d.slots }

// Cap reports the slot count.
func (d *Dynamic[T]) Cap() int { return len(d.slots) }

// IsNull reports whether the block owns no array.
func (d *Dynamic[T]) IsNull() bool { return d.slots == nil }

// Grab acquires a fresh array of n slots without installing it.
func (d *Dynamic[T]) Grab(n int) ([]T, error) {
	return d.cache.Acquire(n)
}

// Adopt installs slots as the owned array and returns the previous one.
// The caller is responsible for relocating live elements before
// recycling the returned array.
func (d *Dynamic[T]) Adopt(slots []T) (old []T) {
	old = d.slots
	d.slots = slots
	return old
}

// Recycle hands an array back to the slab cache.
func (d *Dynamic[T]) Recycle(slots []T) {
	d.cache.Release(slots)
}

// Release recycles the owned array and leaves the block null.
func (d *Dynamic[T]) Release() {
	d.cache.Release(d.slots)
	d.slots = nil
}

// Move steals src's array, leaving src null. The destination's previous
// array is recycled; it must hold no live elements.
func (d *Dynamic[T]) Move(src *Dynamic[T]) {
	d.cache.Release(d.slots)
	d.slots = src.slots
	src.slots = nil
}

// Swap exchanges the owned arrays.
func (d *Dynamic[T]) Swap(other *Dynamic[T]) {
	d.slots, other.slots = other.slots, d.slots
}
