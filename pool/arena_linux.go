//go:build linux

// File: pool/arena_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux chunk storage: anonymous private mappings keep arena chunks off
// the Go heap, so large buffer blocks add no GC scan pressure.

package pool

import (
	"golang.org/x/sys/unix"
)

func mapChunk(size int) ([]byte, error) {
	b, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func unmapChunk(b []byte) {
	if len(b) == 0 {
		return
	}
	// Unmap failure leaves the mapping to process teardown.
	_ = unix.Munmap(b)
}
