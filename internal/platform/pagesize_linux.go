//go:build linux
// +build linux

// File: internal/platform/pagesize_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux page size via the raw syscall surface.

package platform

import "golang.org/x/sys/unix"

// PageSize reports the system page size.
func PageSize() int {
	return unix.Getpagesize()
}
