// Package pool
// Author: momentics <momentics@gmail.com>
//
// Memory layer for hioload-chain.
// Implements the chunked bump arena that supplies buffer storage to the
// chain layer: forward carving, no per-allocation free, wholesale reset.
// See arena.go for the allocator, arena_linux.go for mmap-backed chunks.
package pool
