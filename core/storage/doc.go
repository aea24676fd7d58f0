// Package storage
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Location engines for hioload-seq. An engine lays a live extent over a
// slot array and maintains the invariant that every slot inside the
// extent holds a live element and every slot outside it holds the zero
// value. Three strategies exist: Front (data packed low, append is
// cheap), Back (data packed high, prepend is cheap), and Middle (data
// floats between two gaps, both ends cheap, occasional recentering).
//
// All relocation inside an engine is destructive: a shift writes each
// destination slot before scrubbing its source, iterating in the
// direction that never overwrites an unmoved element.
package storage
