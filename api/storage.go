// File: api/storage.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Storage contract implemented by the dispatcher layer. The facade
// routes every mutation through this interface; the four storage modes
// (static, fixed, variable, buffered) present identical behavior here
// and differ only in where the capacity block lives and whether it can
// be resized.
//
// Positions are indexes into the live extent. Slice views returned by
// Data are invalidated by any capacity change and by recentering.

package api

// Store is the storage contract consumed by the sequence facade.
type Store[T any] interface {
	// Size reports the number of live elements.
	Size() int

	// Capacity reports the number of slots currently owned.
	Capacity() int

	// MaxSize reports the largest size the storage can represent.
	MaxSize() int

	// IsDynamic reports whether the current capacity block is
	// heap-backed.
	IsDynamic() bool

	// Data returns a view of the live extent. The view aliases the
	// capacity block; it is invalidated by any mutation.
	Data() []T

	// FrontGap and BackGap report the uninitialized slot counts at the
	// low and high ends of the capacity block.
	FrontGap() int
	BackGap() int

	// AddAt inserts v before position i, 0 <= i <= Size.
	AddAt(i int, v T) error

	// AddFront and AddBack insert at the extent ends.
	AddFront(v T) error
	AddBack(v T) error

	// AddN appends n copies of v.
	AddN(n int, v T) error

	// Fill replaces the contents with vs, placed per the location rule.
	// The storage must be empty.
	Fill(vs []T) error

	// Erase removes positions [i, j).
	Erase(i, j int)

	// PopFront and PopBack remove one element at the extent ends.
	PopFront()
	PopBack()

	// Clear removes all elements. Fixed-mode storage also releases its
	// heap block.
	Clear()

	// Reallocate resizes the capacity block to newCap slots, relocating
	// the live extent per the location rule. Non-resizable storages
	// fail with ErrCapacityExceeded.
	Reallocate(newCap int) error

	// MoveFrom steals src's contents, leaving src empty. src must be a
	// storage of the same mode and location.
	MoveFrom(src Store[T])

	// CloneFrom replaces the contents with an independent copy of src,
	// mirroring src's layout metadata where the capacity is fixed and
	// allocating exactly src.Size slots where it is dynamic.
	CloneFrom(src Store[T]) error

	// Swap exchanges contents with other, which must be a storage of
	// the same mode, location, and configured capacity.
	Swap(other Store[T])
}
