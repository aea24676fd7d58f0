// Package capacity
// Author: momentics <momentics@gmail.com>
//
// Capacity blocks for hioload-seq: raw slot arrays independent of the
// live elements stored in them. A block never touches element values on
// its own; scrubbing and placement are the storage layer's job. Slots
// outside the live extent always hold the zero value of the element
// type, which is the Go rendition of uninitialized storage: dropping a
// slot back to zero releases whatever the element referenced.
package capacity
