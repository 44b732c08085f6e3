// File: core/chain/coalesce.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package chain

// CoalesceFile merges consecutive file-backed buffers into one transfer
// span for a single batched call, bounded by limit bytes. Buffers merge
// only while they share the head's descriptor and each range starts
// exactly where the previous one ended.
//
// When the limit truncates a segment, the absolute end offset is
// rounded down to a pageSize boundary if the rounded point still lies
// inside the segment and shrinks it; if rounding would collapse the
// span to zero bytes, the un-rounded truncated size is used instead so
// a non-empty candidate never yields an empty span. pageSize must be a
// power of two.
//
// The head link must be file-backed. Returns the coalesced byte total
// and the first link not included in the span.
func CoalesceFile(in *Link, limit, pageSize int64) (int64, *Link) {
	var total int64

	cl := in
	fd := cl.Buf.File.FD

	for {
		size := cl.Buf.FileLast - cl.Buf.FilePos

		if size > limit-total {
			size = limit - total

			aligned := (cl.Buf.FilePos + size) &^ (pageSize - 1)
			if n := aligned - cl.Buf.FilePos; n > 0 && n < size {
				size = n
			}

			total += size
			break
		}

		total += size
		fprev := cl.Buf.FilePos + size
		cl = cl.Next

		if cl == nil || !cl.Buf.InFile || total >= limit ||
			cl.Buf.File.FD != fd || cl.Buf.FilePos != fprev {
			break
		}
	}

	return total, cl
}
