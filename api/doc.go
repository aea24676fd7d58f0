// Package api
// Author: momentics <momentics@gmail.com>
//
// Public contract layer for hioload-seq.
// Declares the trait record that configures a sequence (storage mode,
// element location, growth policy, size-field width), the storage
// contract implemented by the dispatcher layer, and the error kinds
// surfaced by container operations.
package api
