// Package pool
// Author: momentics <momentics@gmail.com>
//
// Memory reuse layer for hioload-seq.
// Implements exact-capacity slab recycling for dynamic capacity blocks
// and scratch slices for operations that park elements outside their
// capacity block. See slabcache.go and scratch.go for details.
package pool
