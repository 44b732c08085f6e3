//go:build !linux

// File: pool/arena_stub.go
// Author: momentics <momentics@gmail.com>
//
// Fallback chunk storage for platforms without the mmap path.

package pool

func mapChunk(size int) ([]byte, error) {
	return make([]byte, size), nil
}

func unmapChunk(_ []byte) {}
