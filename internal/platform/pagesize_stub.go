//go:build !linux
// +build !linux

// File: internal/platform/pagesize_stub.go
// Author: momentics <momentics@gmail.com>
//
// Portable page size fallback for non-Linux platforms.

package platform

import "os"

// PageSize reports the system page size.
func PageSize() int {
	return os.Getpagesize()
}
