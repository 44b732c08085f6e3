// File: core/chain/chain.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package chain

// NewChainOfBufs batch-creates n uniform writable buffers of the given
// size as one chain. Storage is a single contiguous arena block sliced
// in address order, so consecutive buffers are byte-adjacent and
// non-overlapping. On failure the partial chain built so far is
// well-formed (nil-terminated) and returned alongside the error.
func (p *Pool) NewChainOfBufs(n, size int) (*Link, error) {
	block, err := p.arena.Alloc(n * size)
	if err != nil {
		return nil, err
	}

	var head *Link
	ll := &head

	for i := 0; i < n; i++ {
		b := &Buf{
			mem:       block[i*size : (i+1)*size : (i+1)*size],
			Temporary: true,
		}
		p.stats.BufAllocs++

		cl := p.AllocLink()
		cl.Buf = b
		*ll = cl
		ll = &cl.Next
	}

	*ll = nil
	return head, nil
}

// AddCopy appends a copy of src's link structure onto dst's tail and
// returns the resulting head (dst may be nil). Each appended link
// references the same Buf as the corresponding source link: two links,
// one buffer. Buffer ownership is neither duplicated nor transferred.
func (p *Pool) AddCopy(dst, src *Link) *Link {
	ll := &dst
	for cl := dst; cl != nil; cl = cl.Next {
		ll = &cl.Next
	}

	for ; src != nil; src = src.Next {
		cl := p.AllocLink()
		cl.Buf = src.Buf
		*ll = cl
		ll = &cl.Next
	}

	*ll = nil
	return dst
}

// Len returns the number of links in the chain.
func Len(cl *Link) int {
	n := 0
	for ; cl != nil; cl = cl.Next {
		n++
	}
	return n
}

// Last returns the final link of the chain, or nil for an empty chain.
func Last(cl *Link) *Link {
	if cl == nil {
		return nil
	}
	for cl.Next != nil {
		cl = cl.Next
	}
	return cl
}
