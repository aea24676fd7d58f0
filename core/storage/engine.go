// File: core/storage/engine.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// The common contract of the three location engines. Positions are
// indexes into the live extent. Engines never allocate; they work on
// whatever slot array they are handed and can be re-pointed at a new
// one through Relocate or Reset.

package storage

import "github.com/momentics/hioload-seq/api"

// Engine is the location-strategy contract shared by Front, Back and
// Middle.
type Engine[T any] interface {
	// Size reports the number of live elements.
	Size() int

	// Cap reports the slot count of the underlying array.
	Cap() int

	// Data returns the live extent as a view into the slot array.
	Data() []T

	// Slots returns the whole slot array, gaps included.
	Slots() []T

	// FrontGap and BackGap report the zero-valued slot counts at the
	// two ends of the array.
	FrontGap() int
	BackGap() int

	// AddAt inserts v before extent position i, 0 <= i <= Size.
	AddAt(i int, v T) error

	// AddFront and AddBack insert at the extent ends.
	AddFront(v T) error
	AddBack(v T) error

	// AddN appends n copies of v at the back.
	AddN(n int, v T) error

	// Fill places vs per the location rule. The engine must be empty.
	Fill(vs []T) error

	// Erase removes extent positions [i, j), destroying them before the
	// surrounding metadata changes.
	Erase(i, j int)

	// PopFront and PopBack remove a single element at an extent end.
	PopFront()
	PopBack()

	// Clear destroys every element and resets the layout metadata to
	// its empty state.
	Clear()

	// Relocate moves the live extent into newSlots at the offset the
	// location rule dictates for the new capacity, scrubs the vacated
	// slots, and re-points the engine at newSlots. len(newSlots) must
	// be at least Size.
	Relocate(newSlots []T)

	// Reset re-points the engine at slots, which must hold no live
	// elements, and resets the metadata to the empty state.
	Reset(slots []T)

	// CloneFrom replaces the contents with a copy of data, mirroring
	// the source's front gap where the layout keeps one. The engine
	// must be empty and len(data) must fit the array.
	CloneFrom(data []T, frontGap int)
}

// NewEngine constructs the engine for loc over slots.
func NewEngine[T any](loc api.LocationMode, slots []T) Engine[T] {
	switch loc {
	case api.Back:
		return NewBack(slots)
	case api.Middle:
		return NewMiddle(slots)
	default:
		return NewFront(slots)
	}
}

// errFull is the shared capacity failure for engine mutations.
func errFull(cap int) error {
	return api.NewError(api.ErrCodeCapacityExceeded, "sequence storage is full").WithContext("capacity", cap)
}
