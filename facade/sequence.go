// File: facade/sequence.go
// Unified container facade for hioload-seq.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// This file defines Sequence, the public general-purpose contiguous
// container. A Sequence aggregates a trait record, the storage
// dispatcher it selects, and the pooling services the storage draws
// on. One abstraction covers the roles of an inline fixed-capacity
// vector, a heap fixed-capacity vector, a growable vector, and a
// small-buffer hybrid, with the live elements packed low, packed high,
// or floating in the middle of the capacity.
//
// Sequences are single-threaded aggregates: no operation is safe for
// concurrent mutation, and views handed out by Data are invalidated by
// any capacity change or recentering.

package facade

import (
	"fmt"
	"iter"

	"github.com/momentics/hioload-seq/api"
	"github.com/momentics/hioload-seq/internal/dispatch"
	"github.com/momentics/hioload-seq/pool"
)

// Sequence is a trait-configured contiguous sequence container.
type Sequence[T any] struct {
	traits  api.Traits
	store   api.Store[T]
	cache   *pool.SlabCache[T]
	scratch *pool.Scratch[T]
}

// newSequence wires a sequence from an already validated trait record.
func newSequence[T any](traits api.Traits) *Sequence[T] {
	cache := pool.NewSlabCache[T]()
	scratch := pool.NewScratch[T]()
	return &Sequence[T]{
		traits:  traits,
		store:   dispatch.New[T](traits, cache, scratch),
		cache:   cache,
		scratch: scratch,
	}
}

// New creates an empty sequence configured by traits.
func New[T any](traits api.Traits) (*Sequence[T], error) {
	if err := traits.Validate(); err != nil {
		return nil, err
	}
	return newSequence[T](traits), nil
}

// From creates a sequence holding elems. Static storage fails with
// ErrCapacityExceeded when elems exceed the configured capacity;
// variable storage allocates exactly len(elems) slots; buffered
// storage stays inline when elems fit the buffer and otherwise starts
// on the heap with capacity exactly len(elems).
func From[T any](traits api.Traits, elems ...T) (*Sequence[T], error) {
	s, err := New[T](traits)
	if err != nil {
		return nil, err
	}
	if len(elems) == 0 {
		return s, nil
	}
	if len(elems) > s.store.MaxSize() {
		return nil, api.NewError(api.ErrCodeCapacityExceeded, "initializer exceeds maximum size").
			WithContext("count", len(elems)).
			WithContext("maxSize", s.store.MaxSize())
	}
	if len(elems) > s.store.Capacity() {
		if err := s.store.Reallocate(len(elems)); err != nil {
			return nil, err
		}
	}
	if err := s.store.Fill(elems); err != nil {
		return nil, err
	}
	return s, nil
}

// Of creates a sequence with default traits holding elems.
func Of[T any](elems ...T) (*Sequence[T], error) {
	return From[T](api.DefaultTraits(), elems...)
}

// Traits returns the trait record the sequence was built from.
func (s *Sequence[T]) Traits() api.Traits { return s.traits }

// Len reports the number of live elements.
func (s *Sequence[T]) Len() int { return s.store.Size() }

// Cap reports the number of slots currently owned.
func (s *Sequence[T]) Cap() int { return s.store.Capacity() }

// MaxSize reports the largest size this sequence can represent: the
// size-field maximum for fixed-width storage, the platform word
// otherwise.
func (s *Sequence[T]) MaxSize() int { return s.store.MaxSize() }

// Empty reports whether the sequence holds no elements.
func (s *Sequence[T]) Empty() bool { return s.store.Size() == 0 }

// IsDynamic reports whether the current capacity block is heap-backed.
func (s *Sequence[T]) IsDynamic() bool { return s.store.IsDynamic() }

// FrontGap reports the unused slots below the live extent.
func (s *Sequence[T]) FrontGap() int { return s.store.FrontGap() }

// BackGap reports the unused slots above the live extent.
func (s *Sequence[T]) BackGap() int { return s.store.BackGap() }

// Data returns the live extent as a slice view. The view aliases the
// capacity block and is invalidated by any mutation.
func (s *Sequence[T]) Data() []T { return s.store.Data() }

// At returns the element at position i, bounds-checked.
func (s *Sequence[T]) At(i int) (T, error) {
	if i < 0 || i >= s.store.Size() {
		var zero T
		return zero, api.NewError(api.ErrCodeIndexOutOfRange, "sequence index out of range").
			WithContext("index", i).
			WithContext("size", s.store.Size())
	}
	return s.store.Data()[i], nil
}

// Set replaces the element at position i, bounds-checked.
func (s *Sequence[T]) Set(i int, v T) error {
	if i < 0 || i >= s.store.Size() {
		return api.NewError(api.ErrCodeIndexOutOfRange, "sequence index out of range").
			WithContext("index", i).
			WithContext("size", s.store.Size())
	}
	s.store.Data()[i] = v
	return nil
}

// Get returns the element at position i without bounds checking beyond
// the slice's own.
func (s *Sequence[T]) Get(i int) T { return s.store.Data()[i] }

// Front returns the first element. Calling Front on an empty sequence
// is a programmer error.
func (s *Sequence[T]) Front() T {
	if s.Empty() {
		panic("hioload-seq: Front of empty sequence")
	}
	return s.store.Data()[0]
}

// Back returns the last element. Calling Back on an empty sequence is
// a programmer error.
func (s *Sequence[T]) Back() T {
	if s.Empty() {
		panic("hioload-seq: Back of empty sequence")
	}
	d := s.store.Data()
	return d[len(d)-1]
}

// Values iterates the live extent front to back.
func (s *Sequence[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.store.Data() {
			if !yield(v) {
				return
			}
		}
	}
}

// Backward iterates the live extent back to front.
func (s *Sequence[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		d := s.store.Data()
		for i := len(d) - 1; i >= 0; i-- {
			if !yield(d[i]) {
				return
			}
		}
	}
}

// String summarizes the sequence for diagnostics.
func (s *Sequence[T]) String() string {
	return fmt.Sprintf("Sequence[%s/%s %d/%d]",
		s.traits.Storage, s.traits.Location, s.Len(), s.Cap())
}

// ensureRoom grows the capacity so that extra more elements fit,
// stepping through the trait record's growth schedule.
func (s *Sequence[T]) ensureRoom(extra int) error {
	need := s.store.Size() + extra
	if need <= s.store.Capacity() {
		return nil
	}
	if need > s.store.MaxSize() {
		return api.NewError(api.ErrCodeCapacityExceeded, "sequence cannot grow past its maximum size").
			WithContext("need", need).
			WithContext("maxSize", s.store.MaxSize())
	}
	newCap := s.traits.Grow(s.store.Capacity())
	for newCap < need {
		newCap = s.traits.Grow(newCap)
	}
	return s.store.Reallocate(newCap)
}

// Reserve grows the capacity to at least n slots. Requests within the
// current capacity are no-ops.
func (s *Sequence[T]) Reserve(n int) error {
	if n <= s.store.Capacity() {
		return nil
	}
	if n > s.store.MaxSize() {
		return api.NewError(api.ErrCodeCapacityExceeded, "reserve past maximum size").
			WithContext("n", n).
			WithContext("maxSize", s.store.MaxSize())
	}
	return s.store.Reallocate(n)
}

// ShrinkToFit asks the storage to drop spare capacity. The request is
// non-binding: storage whose capacity cannot change ignores it, except
// that an empty fixed-mode sequence releases its heap block.
func (s *Sequence[T]) ShrinkToFit() {
	if s.store.Size() >= s.store.Capacity() {
		return
	}
	// A refusal from a non-resizable storage is fine here.
	_ = s.store.Reallocate(s.store.Size())
}

// PushBack appends v.
func (s *Sequence[T]) PushBack(v T) error {
	if err := s.ensureRoom(1); err != nil {
		return err
	}
	return s.store.AddBack(v)
}

// PushFront prepends v.
func (s *Sequence[T]) PushFront(v T) error {
	if err := s.ensureRoom(1); err != nil {
		return err
	}
	return s.store.AddFront(v)
}

// Insert places v before position i, 0 <= i <= Len. Positions survive
// the reallocation a full sequence triggers because they are indexes,
// not pointers.
func (s *Sequence[T]) Insert(i int, v T) error {
	if i < 0 || i > s.store.Size() {
		panic(fmt.Sprintf("hioload-seq: Insert position %d out of range [0, %d]", i, s.store.Size()))
	}
	if err := s.ensureRoom(1); err != nil {
		return err
	}
	return s.store.AddAt(i, v)
}

// PopFront removes the first element. Popping an empty sequence is a
// programmer error.
func (s *Sequence[T]) PopFront() {
	if s.Empty() {
		panic("hioload-seq: PopFront of empty sequence")
	}
	s.store.PopFront()
}

// PopBack removes the last element. Popping an empty sequence is a
// programmer error.
func (s *Sequence[T]) PopBack() {
	if s.Empty() {
		panic("hioload-seq: PopBack of empty sequence")
	}
	s.store.PopBack()
}

// Erase removes the element at position i.
func (s *Sequence[T]) Erase(i int) {
	s.EraseRange(i, i+1)
}

// EraseRange removes positions [i, j).
func (s *Sequence[T]) EraseRange(i, j int) {
	size := s.store.Size()
	if i < 0 || j < i || j > size {
		panic(fmt.Sprintf("hioload-seq: EraseRange [%d, %d) out of range [0, %d)", i, j, size))
	}
	if i == j {
		return
	}
	s.store.Erase(i, j)
}

// Resize sets the length to n, erasing the tail when shrinking and
// appending copies of fill when growing.
func (s *Sequence[T]) Resize(n int, fill T) error {
	size := s.store.Size()
	switch {
	case n < 0:
		panic(fmt.Sprintf("hioload-seq: Resize to negative length %d", n))
	case n < size:
		s.store.Erase(n, size)
	case n > size:
		if err := s.ensureRoom(n - size); err != nil {
			return err
		}
		return s.store.AddN(n-size, fill)
	}
	return nil
}

// Clear removes every element. Fixed-mode storage also releases its
// heap block; capacity is otherwise retained.
func (s *Sequence[T]) Clear() { s.store.Clear() }

// Free removes every element and releases any heap capacity, returning
// a buffered sequence to its inline state.
func (s *Sequence[T]) Free() {
	s.store.Clear()
	if s.store.IsDynamic() {
		_ = s.store.Reallocate(0)
	}
}

// Clone returns an independent copy. Dynamic capacity is allocated at
// exactly Len slots; fixed capacity mirrors the source's layout
// metadata.
func (s *Sequence[T]) Clone() (*Sequence[T], error) {
	out := newSequence[T](s.traits)
	if err := out.store.CloneFrom(s.store); err != nil {
		return nil, err
	}
	return out, nil
}

// Move returns a sequence that has taken over this one's contents.
// The source is left empty; dynamic storage also gives up its
// capacity, while inline storage merely retains its buffer.
func (s *Sequence[T]) Move() *Sequence[T] {
	out := newSequence[T](s.traits)
	out.store.MoveFrom(s.store)
	return out
}

// Assign replaces the contents with an independent copy of other. The
// two sequences must share a trait record.
func (s *Sequence[T]) Assign(other *Sequence[T]) error {
	if s.traits != other.traits {
		return api.NewError(api.ErrCodeInvalidTraits, "assign between differently configured sequences")
	}
	if s == other {
		return nil
	}
	return s.store.CloneFrom(other.store)
}

// TakeFrom moves other's contents into this sequence, leaving other
// empty. The two sequences must share a trait record.
func (s *Sequence[T]) TakeFrom(other *Sequence[T]) error {
	if s.traits != other.traits {
		return api.NewError(api.ErrCodeInvalidTraits, "move between differently configured sequences")
	}
	if s == other {
		return nil
	}
	s.store.MoveFrom(other.store)
	return nil
}

// Swap exchanges contents with other. The two sequences must share a
// trait record.
func (s *Sequence[T]) Swap(other *Sequence[T]) error {
	if s.traits != other.traits {
		return api.NewError(api.ErrCodeInvalidTraits, "swap between differently configured sequences").
			WithContext("mine", s.traits.Storage.String()).
			WithContext("theirs", other.traits.Storage.String())
	}
	if s == other {
		return nil
	}
	s.store.Swap(other.store)
	return nil
}
