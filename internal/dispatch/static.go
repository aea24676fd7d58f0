// File: internal/dispatch/static.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Static dispatcher: the capacity block is embedded in the sequence
// object for its whole life. Reallocation always fails.

package dispatch

import (
	"github.com/momentics/hioload-seq/api"
	"github.com/momentics/hioload-seq/core/capacity"
	"github.com/momentics/hioload-seq/core/storage"
	"github.com/momentics/hioload-seq/pool"
)

type static[T any] struct {
	traits  api.Traits
	eng     storage.Engine[T]
	scratch *pool.Scratch[T]
}

func newStatic[T any](traits api.Traits, scratch *pool.Scratch[T]) *static[T] {
	blk := capacity.NewFixed[T](traits.Capacity)
	return &static[T]{
		traits:  traits,
		eng:     storage.NewEngine[T](traits.Location, blk.Slots()),
		scratch: scratch,
	}
}

var _ api.Store[int] = (*static[int])(nil)

func (s *static[T]) Size() int       { return s.eng.Size() }
func (s *static[T]) Capacity() int   { return s.eng.Cap() }
func (s *static[T]) MaxSize() int    { return s.traits.MaxSize() }
func (s *static[T]) IsDynamic() bool { return false }
func (s *static[T]) Data() []T       { return s.eng.Data() }
func (s *static[T]) FrontGap() int   { return s.eng.FrontGap() }
func (s *static[T]) BackGap() int    { return s.eng.BackGap() }

func (s *static[T]) AddAt(i int, v T) error { return s.eng.AddAt(i, v) }
func (s *static[T]) AddFront(v T) error     { return s.eng.AddFront(v) }
func (s *static[T]) AddBack(v T) error      { return s.eng.AddBack(v) }
func (s *static[T]) AddN(n int, v T) error  { return s.eng.AddN(n, v) }
func (s *static[T]) Fill(vs []T) error      { return s.eng.Fill(vs) }
func (s *static[T]) Erase(i, j int)         { s.eng.Erase(i, j) }
func (s *static[T]) PopFront()              { s.eng.PopFront() }
func (s *static[T]) PopBack()               { s.eng.PopBack() }
func (s *static[T]) Clear()                 { s.eng.Clear() }

func (s *static[T]) Reallocate(int) error {
	return errNotResizable(api.Static)
}

func (s *static[T]) MoveFrom(src api.Store[T]) {
	o := src.(*static[T])
	s.eng.Clear()
	s.eng.CloneFrom(o.eng.Data(), o.eng.FrontGap())
	o.eng.Clear()
}

func (s *static[T]) CloneFrom(src api.Store[T]) error {
	o := src.(*static[T])
	s.eng.Clear()
	s.eng.CloneFrom(o.eng.Data(), o.eng.FrontGap())
	return nil
}

func (s *static[T]) Swap(other api.Store[T]) {
	o := other.(*static[T])
	mine, myGap := parkExtent(s.scratch, s.eng)
	theirs, theirGap := parkExtent(s.scratch, o.eng)
	restoreExtent(s.scratch, s.eng, theirs, theirGap)
	restoreExtent(s.scratch, o.eng, mine, myGap)
}
