// File: internal/dispatch/dispatch.go
// Package dispatch selects and owns the storage for a sequence.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// One dispatcher exists per storage mode. All four present the
// api.Store contract; they differ in where the capacity block lives
// (inline, lazy heap, growable heap, or an inline/heap alternation)
// and whether Reallocate can succeed.

package dispatch

import (
	"github.com/momentics/hioload-seq/api"
	"github.com/momentics/hioload-seq/core/storage"
	"github.com/momentics/hioload-seq/pool"
)

// New constructs the dispatcher for the trait record. The record must
// already be validated.
func New[T any](traits api.Traits, cache *pool.SlabCache[T], scratch *pool.Scratch[T]) api.Store[T] {
	switch traits.Storage {
	case api.Static:
		return newStatic[T](traits, scratch)
	case api.Fixed:
		return newFixed[T](traits, cache)
	case api.Buffered:
		return newBuffered[T](traits, cache, scratch)
	default:
		return newVariable[T](traits, cache)
	}
}

// errNotResizable is returned when a fixed-capacity storage is asked to
// reallocate.
func errNotResizable(mode api.StorageMode) error {
	return api.NewError(api.ErrCodeCapacityExceeded, "storage capacity cannot change").
		WithContext("storage", mode.String())
}

// parkExtent copies an engine's extent and layout metadata into a
// scratch slice and clears the engine. Used by swaps that cannot
// exchange blocks by pointer.
func parkExtent[T any](sc *pool.Scratch[T], e storage.Engine[T]) (buf []T, frontGap int) {
	buf = sc.Get(e.Size())
	copy(buf, e.Data())
	frontGap = e.FrontGap()
	e.Clear()
	return buf, frontGap
}

// restoreExtent mirrors a parked extent back into an empty engine and
// returns the scratch slice to the pool.
func restoreExtent[T any](sc *pool.Scratch[T], e storage.Engine[T], buf []T, frontGap int) {
	e.CloneFrom(buf, frontGap)
	sc.Put(buf)
}
