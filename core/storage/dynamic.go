// File: core/storage/dynamic.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Dynamic sequence storage: a location engine layered over an owning
// dynamic capacity block. Same observable contract as the fixed form
// plus Reallocate. Starts null; the first reallocation installs a slot
// array.

package storage

import (
	"github.com/momentics/hioload-seq/api"
	"github.com/momentics/hioload-seq/core/capacity"
	"github.com/momentics/hioload-seq/pool"
)

// Dynamic composes an engine with a heap capacity block.
type Dynamic[T any] struct {
	Eng Engine[T]
	blk *capacity.Dynamic[T]
	loc api.LocationMode
}

// NewDynamicStorage creates a null dynamic storage for loc drawing slot
// arrays from cache.
func NewDynamicStorage[T any](loc api.LocationMode, cache *pool.SlabCache[T]) *Dynamic[T] {
	blk := capacity.NewDynamic[T](cache)
	return &Dynamic[T]{
		Eng: NewEngine[T](loc, blk.Slots()),
		blk: blk,
		loc: loc,
	}
}

// Reallocate resizes the capacity block to newCap slots and relocates
// the live extent at the location-appropriate offset: flush low for
// front, flush high for back, centered for middle. Every destination
// slot is written before any source array is recycled.
func (d *Dynamic[T]) Reallocate(newCap int) error {
	if newCap < d.Eng.Size() {
		return api.NewError(api.ErrCodeCapacityExceeded, "reallocation below live size").
			WithContext("newCap", newCap).
			WithContext("size", d.Eng.Size())
	}
	if newCap == d.Eng.Cap() {
		return nil
	}
	newSlots, err := d.blk.Grab(newCap)
	if err != nil {
		return err
	}
	old := d.blk.Adopt(newSlots)
	d.Eng.Relocate(newSlots)
	d.blk.Recycle(old)
	return nil
}

// Free destroys all elements and releases the capacity block.
func (d *Dynamic[T]) Free() {
	d.Eng.Clear()
	d.blk.Release()
	d.Eng.Reset(nil)
}

// MoveFrom steals src's block and metadata, leaving src null. The
// destination must hold no live elements.
func (d *Dynamic[T]) MoveFrom(src *Dynamic[T]) {
	d.blk.Move(src.blk)
	d.Eng = src.Eng
	src.Eng = NewEngine[T](src.loc, nil)
}

// Swap exchanges blocks and metadata.
func (d *Dynamic[T]) Swap(other *Dynamic[T]) {
	d.blk.Swap(other.blk)
	d.Eng, other.Eng = other.Eng, d.Eng
}

// CloneFrom replaces the contents with a copy of data in a freshly
// allocated block of exactly len(data) slots, destination layout
// applied.
func (d *Dynamic[T]) CloneFrom(data []T) error {
	d.Free()
	if len(data) == 0 {
		return nil
	}
	if err := d.Reallocate(len(data)); err != nil {
		return err
	}
	return d.Eng.Fill(data)
}
