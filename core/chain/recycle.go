// File: core/chain/recycle.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package chain

// Chains holds the three chain roles of one producer/writer pair:
// Out collects freshly produced buffers not yet handed to the writer,
// Busy holds buffers awaiting full transmission, Free holds drained
// links available for reuse.
type Chains struct {
	Out  *Link
	Busy *Link
	Free *Link
}

// Update folds Out onto Busy's tail, then walks Busy from the head
// reclaiming fully drained buffers:
//
//   - a non-drained head stops the walk; Busy drains in strict
//     submission order, so nothing behind it can be drained either;
//   - a drained head with a foreign tag is unlinked and only its link
//     returns to the pool free list — the buffer belongs to another
//     owner and is not reset or reused here;
//   - a drained head with a matching tag has its memory cursors rewound
//     and its link pushed onto the head of Free.
//
// Reclaimed links therefore appear in Free in reverse drain order.
// That is contractual: callers must not assume Free preserves the
// original chain order.
func (c *Chains) Update(p *Pool, tag Tag) {
	if c.Out != nil {
		if c.Busy == nil {
			c.Busy = c.Out
		} else {
			Last(c.Busy).Next = c.Out
		}
		c.Out = nil
	}

	for c.Busy != nil {
		cl := c.Busy

		if cl.Buf.Size() != 0 {
			break
		}

		if cl.Buf.Tag != tag {
			c.Busy = cl.Next
			p.FreeLink(cl)
			continue
		}

		cl.Buf.Reset()

		c.Busy = cl.Next
		cl.Next = c.Free
		c.Free = cl
	}
}

// GetFreeBuf returns a link ready for filling, popping the head of Free
// when available and otherwise allocating a fresh link with an empty
// buffer. The returned link is detached (nil successor).
func (c *Chains) GetFreeBuf(p *Pool) *Link {
	if c.Free != nil {
		cl := c.Free
		c.Free = cl.Next
		cl.Next = nil
		return cl
	}

	cl := p.AllocLink()
	cl.Buf = &Buf{}
	p.stats.BufAllocs++
	return cl
}
