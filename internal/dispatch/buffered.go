// File: internal/dispatch/buffered.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Buffered dispatcher: a tagged alternation of an inline fixed block
// and a heap-backed dynamic storage. Exactly one side is active and
// the other holds no elements. Reallocation past the inline capacity
// upgrades to the heap; reallocation back inside it downgrades to the
// inline buffer again.

package dispatch

import (
	"github.com/momentics/hioload-seq/api"
	"github.com/momentics/hioload-seq/core/capacity"
	"github.com/momentics/hioload-seq/core/storage"
	"github.com/momentics/hioload-seq/pool"
)

type buffered[T any] struct {
	traits  api.Traits
	cache   *pool.SlabCache[T]
	scratch *pool.Scratch[T]
	inline  storage.Engine[T]
	heap    *storage.Dynamic[T]
	dynamic bool // which side is active
}

func newBuffered[T any](traits api.Traits, cache *pool.SlabCache[T], scratch *pool.Scratch[T]) *buffered[T] {
	blk := capacity.NewFixed[T](traits.Capacity)
	return &buffered[T]{
		traits:  traits,
		cache:   cache,
		scratch: scratch,
		inline:  storage.NewEngine[T](traits.Location, blk.Slots()),
		heap:    storage.NewDynamicStorage[T](traits.Location, cache),
	}
}

var _ api.Store[int] = (*buffered[int])(nil)

// active returns the engine of the live side.
func (b *buffered[T]) active() storage.Engine[T] {
	if b.dynamic {
		return b.heap.Eng
	}
	return b.inline
}

func (b *buffered[T]) Size() int       { return b.active().Size() }
func (b *buffered[T]) Capacity() int   { return b.active().Cap() }
func (b *buffered[T]) MaxSize() int    { return b.traits.MaxSize() }
func (b *buffered[T]) IsDynamic() bool { return b.dynamic }
func (b *buffered[T]) Data() []T       { return b.active().Data() }
func (b *buffered[T]) FrontGap() int   { return b.active().FrontGap() }
func (b *buffered[T]) BackGap() int    { return b.active().BackGap() }

func (b *buffered[T]) AddAt(i int, v T) error { return b.active().AddAt(i, v) }
func (b *buffered[T]) AddFront(v T) error     { return b.active().AddFront(v) }
func (b *buffered[T]) AddBack(v T) error      { return b.active().AddBack(v) }
func (b *buffered[T]) AddN(n int, v T) error  { return b.active().AddN(n, v) }
func (b *buffered[T]) Fill(vs []T) error      { return b.active().Fill(vs) }
func (b *buffered[T]) Erase(i, j int)         { b.active().Erase(i, j) }
func (b *buffered[T]) PopFront()              { b.active().PopFront() }
func (b *buffered[T]) PopBack()               { b.active().PopBack() }
func (b *buffered[T]) Clear()                 { b.active().Clear() }

// Reallocate transitions between the inline and heap states. Growing
// past the buffer capacity moves the elements into a fresh heap block
// of newCap slots at the layout-appropriate offset; shrinking to the
// buffer capacity or below moves them back inline. Reallocating while
// already inline and within the buffer is a no-op: the inline capacity
// is immutable.
func (b *buffered[T]) Reallocate(newCap int) error {
	if newCap > b.traits.Capacity {
		if b.dynamic {
			return b.heap.Reallocate(newCap)
		}
		if err := b.heap.Reallocate(newCap); err != nil {
			return err
		}
		if err := b.heap.Eng.Fill(b.inline.Data()); err != nil {
			return err
		}
		b.inline.Clear()
		b.dynamic = true
		return nil
	}
	if !b.dynamic {
		return nil
	}
	if err := b.inline.Fill(b.heap.Eng.Data()); err != nil {
		return err
	}
	b.heap.Free()
	b.dynamic = false
	return nil
}

func (b *buffered[T]) MoveFrom(src api.Store[T]) {
	o := src.(*buffered[T])
	b.reset()
	if o.dynamic {
		b.heap.MoveFrom(o.heap)
		b.dynamic = true
		o.dynamic = false
		return
	}
	b.inline.CloneFrom(o.inline.Data(), o.inline.FrontGap())
	o.inline.Clear()
}

// reset empties the dispatcher back to the inline state.
func (b *buffered[T]) reset() {
	if b.dynamic {
		b.heap.Free()
		b.dynamic = false
		return
	}
	b.inline.Clear()
}

func (b *buffered[T]) CloneFrom(src api.Store[T]) error {
	o := src.(*buffered[T])
	b.reset()
	if o.Size() <= b.traits.Capacity {
		gap := b.traits.FrontGap(b.traits.Capacity, o.Size())
		if !o.dynamic {
			gap = o.inline.FrontGap()
		}
		b.inline.CloneFrom(o.Data(), gap)
		return nil
	}
	if err := b.heap.CloneFrom(o.Data()); err != nil {
		return err
	}
	b.dynamic = true
	return nil
}

// Swap handles the four state combinations. Matching states exchange
// storage directly; mixed states park the inline side in a scratch
// slice, hand the heap side across, and rebuild the inline side on the
// other dispatcher, so each block keeps exactly one owner throughout.
func (b *buffered[T]) Swap(other api.Store[T]) {
	o := other.(*buffered[T])
	switch {
	case !b.dynamic && !o.dynamic:
		mine, myGap := parkExtent(b.scratch, b.inline)
		theirs, theirGap := parkExtent(b.scratch, o.inline)
		restoreExtent(b.scratch, b.inline, theirs, theirGap)
		restoreExtent(b.scratch, o.inline, mine, myGap)
	case b.dynamic && o.dynamic:
		b.heap.Swap(o.heap)
	case b.dynamic:
		o.swapMixed(b)
	default:
		b.swapMixed(o)
	}
}

// swapMixed swaps an inline receiver with a heap-state peer.
func (b *buffered[T]) swapMixed(heapSide *buffered[T]) {
	parked, gap := parkExtent(b.scratch, b.inline)
	b.heap.MoveFrom(heapSide.heap)
	b.dynamic = true
	heapSide.dynamic = false
	restoreExtent(b.scratch, heapSide.inline, parked, gap)
}
