// File: core/chain/pool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Pool binds an arena to a chain-link free list. Links recycled here
// are reused in O(1) before new ones are allocated; buffer storage
// itself always comes from the arena and is never individually freed.

package chain

import (
	"github.com/eapache/queue"

	"github.com/momentics/hioload-chain/api"
)

// Link is one node of a buffer chain: a reference to exactly one Buf
// plus the successor link. The same Buf may be referenced by several
// links only by explicit caller intent (see Pool.AddCopy).
type Link struct {
	Buf  *Buf
	Next *Link
}

// Pool is the single-owner allocation context for one consumer scope:
// an arena for buffer bytes plus the pool-scoped free list of recycled
// Link structs. Its lifetime is the scope's lifetime, typically one
// connection or request.
type Pool struct {
	arena api.Arena
	free  *queue.Queue // recycled *Link

	stats PoolStats
}

// PoolStats aggregates link and buffer allocation counters.
type PoolStats struct {
	LinkAllocs int64 // links newly allocated
	LinkReuses int64 // links served from the free list
	BufAllocs  int64 // buffers created
}

// NewPool creates a pool carving buffer storage from arena.
func NewPool(arena api.Arena) *Pool {
	return &Pool{arena: arena, free: queue.New()}
}

// AllocLink returns an empty link: no buffer, no successor. Recycled
// links are reused before new ones are allocated.
func (p *Pool) AllocLink() *Link {
	if p.free.Length() > 0 {
		cl := p.free.Remove().(*Link)
		cl.Buf = nil
		cl.Next = nil
		p.stats.LinkReuses++
		return cl
	}
	p.stats.LinkAllocs++
	return &Link{}
}

// FreeLink returns a single link to the free list. Only the link
// structure is recycled; the buffer it referenced is untouched.
func (p *Pool) FreeLink(cl *Link) {
	cl.Buf = nil
	cl.Next = nil
	p.free.Add(cl)
}

// FreeChain returns every link of a chain to the free list.
func (p *Pool) FreeChain(cl *Link) {
	for cl != nil {
		next := cl.Next
		p.FreeLink(cl)
		cl = next
	}
}

// NewTempBuf creates a writable buffer of the given capacity backed by
// arena memory, with empty cursors and the Temporary flag set.
func (p *Pool) NewTempBuf(size int) (*Buf, error) {
	mem, err := p.arena.Alloc(size)
	if err != nil {
		return nil, err
	}
	p.stats.BufAllocs++
	return &Buf{mem: mem, Temporary: true}, nil
}

// Stats exposes pool accounting.
func (p *Pool) Stats() PoolStats { return p.stats }
