// File: api/arena.go
// Author: momentics <momentics@gmail.com>
//
// Arena abstraction consumed by the chain layer. The arena is a bump
// allocator owned by an outer scope (request or connection lifetime):
// it hands out byte ranges and never frees them individually.

package api

// Arena supplies raw memory for buffers and chain storage.
//
// Implementations carve allocations forward out of larger chunks.
// There is no per-allocation free; reclamation happens wholesale when
// the owning scope resets or releases the arena.
type Arena interface {
	// Alloc returns a zeroed slice of exactly n bytes with capacity n.
	// The slice stays valid until the arena is reset or released.
	Alloc(n int) ([]byte, error)
}

// ArenaStats aggregates arena accounting for observability.
type ArenaStats struct {
	Reserved  int64 // bytes of chunk storage held
	Allocated int64 // bytes handed out since the last reset
	Chunks    int   // chunks currently held
	Resets    int64 // lifetime reset count
}
