// File: pool/arena.go
// Package pool implements the bounded bump arena backing buffer-chain
// allocation.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"github.com/momentics/hioload-chain/api"
)

// Arena is a chunked bump allocator. Allocations are carved forward out
// of fixed-size chunks; there is no per-allocation free. Reset reclaims
// every allocation at once while retaining chunk storage for reuse.
//
// An Arena is single-owner: it belongs to one request/connection scope
// and is not safe for concurrent use.
type Arena struct {
	chunkSize int
	maxBytes  int64 // 0 means unbounded

	chunks [][]byte
	active int    // index of the chunk being carved
	cur    []byte // unused tail of the active chunk

	reserved  int64
	allocated int64
	resets    int64
}

// NewArena creates an arena carving from chunks of chunkSize bytes,
// holding at most maxBytes of chunk storage (0 for no bound).
func NewArena(chunkSize int, maxBytes int64) *Arena {
	if chunkSize <= 0 {
		panic("pool: arena chunk size must be positive")
	}
	return &Arena{chunkSize: chunkSize, maxBytes: maxBytes, active: -1}
}

// Alloc returns a zeroed slice of exactly n bytes, capacity-clamped so
// the caller cannot grow into a neighbouring allocation.
func (a *Arena) Alloc(n int) ([]byte, error) {
	if n > len(a.cur) {
		if err := a.grow(n); err != nil {
			return nil, err
		}
	}
	b := a.cur[:n:n]
	a.cur = a.cur[n:]
	a.allocated += int64(n)
	return b, nil
}

// grow makes the active chunk one able to hold n bytes, reusing retained
// chunks before mapping new storage.
func (a *Arena) grow(n int) error {
	for i := a.active + 1; i < len(a.chunks); i++ {
		if cap(a.chunks[i]) >= n {
			a.chunks[i], a.chunks[a.active+1] = a.chunks[a.active+1], a.chunks[i]
			a.active++
			c := a.chunks[a.active]
			a.cur = c[:cap(c)]
			clear(a.cur)
			return nil
		}
	}

	size := a.chunkSize
	if n > size {
		size = n
	}
	if a.maxBytes > 0 && a.reserved+int64(size) > a.maxBytes {
		// An oversized chunk may not fit where an exact one still does.
		if size == n || a.reserved+int64(n) > a.maxBytes {
			return &api.ArenaError{Op: "alloc", Bytes: int64(n), Err: api.ErrArenaExhausted}
		}
		size = n
	}

	c, err := mapChunk(size)
	if err != nil {
		return &api.ArenaError{Op: "map chunk", Bytes: int64(size), Err: err}
	}
	// Slot the new chunk right after the active one, like the reuse
	// path: retained chunks that were too small for this request move
	// behind it and stay reachable for later requests.
	a.chunks = append(a.chunks, c)
	a.active++
	last := len(a.chunks) - 1
	a.chunks[a.active], a.chunks[last] = a.chunks[last], a.chunks[a.active]
	a.cur = c
	a.reserved += int64(size)
	return nil
}

// Reset reclaims all allocations while retaining chunk storage. Every
// slice previously returned by Alloc becomes invalid.
func (a *Arena) Reset() {
	a.active = -1
	a.cur = nil
	a.allocated = 0
	a.resets++
}

// Release returns all chunk storage to the operating system. The arena
// may be used again afterwards; it simply starts empty.
func (a *Arena) Release() {
	for _, c := range a.chunks {
		unmapChunk(c[:cap(c)])
	}
	a.chunks = nil
	a.active = -1
	a.cur = nil
	a.reserved = 0
	a.allocated = 0
}

// Stats exposes arena accounting for observability.
func (a *Arena) Stats() api.ArenaStats {
	return api.ArenaStats{
		Reserved:  a.reserved,
		Allocated: a.allocated,
		Chunks:    len(a.chunks),
		Resets:    a.resets,
	}
}

var _ api.Arena = (*Arena)(nil)
