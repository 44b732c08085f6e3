// File: core/chain/buf.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package chain

// FileRef identifies an open file owned by the I/O layer. The chain
// layer carries descriptor identity and offsets only; it never touches
// the file itself.
type FileRef struct {
	FD   uintptr
	Name string
}

// Buf is one contiguous region of data to transmit. It views in-memory
// bytes, an on-disk byte range, or both (the same logical bytes in two
// forms); with neither backing it is a special marker carrying flags
// only (flush, sync, end of stream).
//
// The memory view is a subrange of one arena allocation. Cursors index
// into it: bytes [pos, last) are written but unsent, [last, len(mem))
// is writable headroom. Invariant: 0 <= pos <= last <= len(mem).
type Buf struct {
	mem  []byte
	pos  int
	last int

	File     *FileRef
	FilePos  int64
	FileLast int64

	Tag Tag

	// Shadow aliases another Buf exposing the same underlying bytes.
	// The reference is carried, never enforced: writes through either
	// view are visible through both.
	Shadow *Buf

	Temporary   bool // transient caller-owned memory, writable
	ReadOnly    bool // memory must not be modified
	Mmap        bool // memory-mapped backing
	InFile      bool // on-disk range is valid
	Flush       bool
	Sync        bool
	LastBuf     bool // last buffer of the response
	LastInChain bool
	Recycled    bool
}

// SetMem points the buffer at caller-owned bytes, marking the whole
// region as written and unsent. Used for static or read-only payloads.
func (b *Buf) SetMem(p []byte) {
	b.mem = p
	b.pos = 0
	b.last = len(p)
}

// InMemory reports whether the buffer carries an in-memory view.
func (b *Buf) InMemory() bool { return b.mem != nil }

// Special reports whether the buffer is a zero-size marker: flags only,
// no memory and no file range. Special buffers count as fully drained.
func (b *Buf) Special() bool {
	return (b.Flush || b.LastBuf || b.Sync) && !b.InMemory() && !b.InFile
}

// Size returns the bytes remaining to transmit. A buffer backed by both
// memory and file represents the same logical bytes twice, so the
// memory view alone is authoritative when present.
func (b *Buf) Size() int64 {
	if b.InMemory() {
		return int64(b.last - b.pos)
	}
	return b.FileLast - b.FilePos
}

// Bytes returns the written, unsent part of the memory view.
func (b *Buf) Bytes() []byte { return b.mem[b.pos:b.last] }

// Writable returns the unwritten headroom of the memory view.
func (b *Buf) Writable() []byte { return b.mem[b.last:] }

// Commit marks n more bytes of headroom as written.
func (b *Buf) Commit(n int) {
	if n < 0 || b.last+n > len(b.mem) {
		panic("chain: commit out of range")
	}
	b.last += n
}

// Cap returns the capacity of the memory view.
func (b *Buf) Cap() int { return len(b.mem) }

// Reset rewinds the memory cursors so the buffer can be refilled. File
// cursors are left untouched: file ranges are owned and rewound by the
// subsystem that opened the file.
func (b *Buf) Reset() {
	b.pos = 0
	b.last = 0
}
