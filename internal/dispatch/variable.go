// File: internal/dispatch/variable.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Variable dispatcher: a growable heap capacity. The thinnest of the
// four; everything delegates to the dynamic sequence storage.

package dispatch

import (
	"github.com/momentics/hioload-seq/api"
	"github.com/momentics/hioload-seq/core/storage"
	"github.com/momentics/hioload-seq/pool"
)

type variable[T any] struct {
	traits api.Traits
	dyn    *storage.Dynamic[T]
}

func newVariable[T any](traits api.Traits, cache *pool.SlabCache[T]) *variable[T] {
	return &variable[T]{
		traits: traits,
		dyn:    storage.NewDynamicStorage[T](traits.Location, cache),
	}
}

var _ api.Store[int] = (*variable[int])(nil)

func (v *variable[T]) Size() int       { return v.dyn.Eng.Size() }
func (v *variable[T]) Capacity() int   { return v.dyn.Eng.Cap() }
func (v *variable[T]) MaxSize() int    { return v.traits.MaxSize() }
func (v *variable[T]) IsDynamic() bool { return true }
func (v *variable[T]) Data() []T       { return v.dyn.Eng.Data() }
func (v *variable[T]) FrontGap() int   { return v.dyn.Eng.FrontGap() }
func (v *variable[T]) BackGap() int    { return v.dyn.Eng.BackGap() }

func (v *variable[T]) AddAt(i int, x T) error { return v.dyn.Eng.AddAt(i, x) }
func (v *variable[T]) AddFront(x T) error     { return v.dyn.Eng.AddFront(x) }
func (v *variable[T]) AddBack(x T) error      { return v.dyn.Eng.AddBack(x) }
func (v *variable[T]) AddN(n int, x T) error  { return v.dyn.Eng.AddN(n, x) }
func (v *variable[T]) Fill(vs []T) error      { return v.dyn.Eng.Fill(vs) }
func (v *variable[T]) Erase(i, j int)         { v.dyn.Eng.Erase(i, j) }
func (v *variable[T]) PopFront()              { v.dyn.Eng.PopFront() }
func (v *variable[T]) PopBack()               { v.dyn.Eng.PopBack() }
func (v *variable[T]) Clear()                 { v.dyn.Eng.Clear() }

func (v *variable[T]) Reallocate(newCap int) error {
	if newCap == 0 {
		v.dyn.Free()
		return nil
	}
	return v.dyn.Reallocate(newCap)
}

func (v *variable[T]) MoveFrom(src api.Store[T]) {
	o := src.(*variable[T])
	v.dyn.Eng.Clear()
	v.dyn.MoveFrom(o.dyn)
}

func (v *variable[T]) CloneFrom(src api.Store[T]) error {
	o := src.(*variable[T])
	return v.dyn.CloneFrom(o.Data())
}

func (v *variable[T]) Swap(other api.Store[T]) {
	o := other.(*variable[T])
	v.dyn.Swap(o.dyn)
}
