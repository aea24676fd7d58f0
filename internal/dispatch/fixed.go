// File: internal/dispatch/fixed.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fixed dispatcher: the capacity block lives on the heap but never
// changes size. The block is allocated lazily on first mutation;
// Clear destroys the elements and releases the block again, so an
// untouched or cleared sequence costs nothing but the header.

package dispatch

import (
	"github.com/momentics/hioload-seq/api"
	"github.com/momentics/hioload-seq/core/storage"
	"github.com/momentics/hioload-seq/pool"
)

type fixed[T any] struct {
	traits api.Traits
	cache  *pool.SlabCache[T]
	eng    storage.Engine[T] // nil until the first mutation
}

func newFixed[T any](traits api.Traits, cache *pool.SlabCache[T]) *fixed[T] {
	return &fixed[T]{traits: traits, cache: cache}
}

var _ api.Store[int] = (*fixed[int])(nil)

// ensure allocates the storage record on first use.
func (f *fixed[T]) ensure() error {
	if f.eng != nil {
		return nil
	}
	slots, err := f.cache.Acquire(f.traits.Capacity)
	if err != nil {
		return err
	}
	f.eng = storage.NewEngine[T](f.traits.Location, slots)
	return nil
}

// release drops the storage record, handing the slot array back.
func (f *fixed[T]) release() {
	if f.eng == nil {
		return
	}
	f.eng.Clear()
	f.cache.Release(f.eng.Slots())
	f.eng = nil
}

func (f *fixed[T]) Size() int {
	if f.eng == nil {
		return 0
	}
	return f.eng.Size()
}

func (f *fixed[T]) Capacity() int   { return f.traits.Capacity }
func (f *fixed[T]) MaxSize() int    { return f.traits.MaxSize() }
func (f *fixed[T]) IsDynamic() bool { return true }

func (f *fixed[T]) Data() []T {
	if f.eng == nil {
		return nil
	}
	return f.eng.Data()
}

func (f *fixed[T]) FrontGap() int {
	if f.eng == nil {
		return f.traits.FrontGap(f.traits.Capacity, 0)
	}
	return f.eng.FrontGap()
}

func (f *fixed[T]) BackGap() int {
	if f.eng == nil {
		return f.traits.Capacity - f.traits.FrontGap(f.traits.Capacity, 0)
	}
	return f.eng.BackGap()
}

func (f *fixed[T]) AddAt(i int, v T) error {
	if err := f.ensure(); err != nil {
		return err
	}
	return f.eng.AddAt(i, v)
}

func (f *fixed[T]) AddFront(v T) error {
	if err := f.ensure(); err != nil {
		return err
	}
	return f.eng.AddFront(v)
}

func (f *fixed[T]) AddBack(v T) error {
	if err := f.ensure(); err != nil {
		return err
	}
	return f.eng.AddBack(v)
}

func (f *fixed[T]) AddN(n int, v T) error {
	if err := f.ensure(); err != nil {
		return err
	}
	return f.eng.AddN(n, v)
}

func (f *fixed[T]) Fill(vs []T) error {
	if err := f.ensure(); err != nil {
		return err
	}
	return f.eng.Fill(vs)
}

func (f *fixed[T]) Erase(i, j int) { f.eng.Erase(i, j) }
func (f *fixed[T]) PopFront()      { f.eng.PopFront() }
func (f *fixed[T]) PopBack()       { f.eng.PopBack() }

func (f *fixed[T]) Clear() { f.release() }

func (f *fixed[T]) Reallocate(newCap int) error {
	// The only reallocation a fixed storage honors is the empty shrink,
	// which releases the lazily allocated block.
	if newCap == 0 && f.Size() == 0 {
		f.release()
		return nil
	}
	return errNotResizable(api.Fixed)
}

func (f *fixed[T]) MoveFrom(src api.Store[T]) {
	o := src.(*fixed[T])
	f.release()
	f.eng = o.eng
	o.eng = nil
}

func (f *fixed[T]) CloneFrom(src api.Store[T]) error {
	o := src.(*fixed[T])
	f.release()
	if o.Size() == 0 {
		return nil
	}
	if err := f.ensure(); err != nil {
		return err
	}
	f.eng.CloneFrom(o.eng.Data(), o.eng.FrontGap())
	return nil
}

func (f *fixed[T]) Swap(other api.Store[T]) {
	o := other.(*fixed[T])
	f.eng, o.eng = o.eng, f.eng
}
