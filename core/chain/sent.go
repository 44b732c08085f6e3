// File: core/chain/sent.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package chain

// UpdateSent advances buffer cursors for sent bytes transmitted since
// the chain was last examined, starting at its head. Special markers
// are skipped without consuming any count. A buffer backed by both
// memory and file advances both cursor pairs by the same amount, since
// they describe the same logical bytes.
//
// Returns the first link not fully consumed, or nil when the whole
// chain is drained.
func UpdateSent(in *Link, sent int64) *Link {
	for ; in != nil; in = in.Next {
		b := in.Buf

		if b.Special() {
			continue
		}

		if sent == 0 {
			break
		}

		size := b.Size()

		if sent >= size {
			sent -= size

			if b.InMemory() {
				b.pos = b.last
			}
			if b.InFile {
				b.FilePos = b.FileLast
			}
			continue
		}

		if b.InMemory() {
			b.pos += int(sent)
		}
		if b.InFile {
			b.FilePos += sent
		}
		break
	}

	return in
}
