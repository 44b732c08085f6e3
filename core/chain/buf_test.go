package chain

import "testing"

func TestBufSpecial(t *testing.T) {
	flush := &Buf{Flush: true}
	if !flush.Special() {
		t.Error("flags-only buffer should be special")
	}
	if flush.Size() != 0 {
		t.Error("special buffer must be fully drained")
	}

	var mem Buf
	mem.SetMem([]byte("payload"))
	mem.Flush = true
	if mem.Special() {
		t.Error("memory-backed buffer is never special")
	}

	file := &Buf{LastBuf: true, InFile: true, File: &FileRef{FD: 3}, FilePos: 0, FileLast: 10}
	if file.Special() {
		t.Error("file-backed buffer is never special")
	}

	if (&Buf{}).Special() {
		t.Error("zero buffer without flags is not special")
	}
}

func TestBufResetLeavesFileCursors(t *testing.T) {
	var b Buf
	b.SetMem(make([]byte, 8))
	b.InFile = true
	b.File = &FileRef{FD: 3}
	b.FilePos = 500
	b.FileLast = 900

	b.Reset()

	if b.pos != 0 || b.last != 0 {
		t.Error("memory cursors not rewound")
	}
	if b.FilePos != 500 || b.FileLast != 900 {
		t.Error("file cursors must be left untouched by Reset")
	}
}

func TestBufShadowCarriesSharedBytes(t *testing.T) {
	backing := []byte("shared")

	var orig, view Buf
	orig.SetMem(backing)
	view.SetMem(backing[:4])
	view.Shadow = &orig

	backing[0] = 'S'
	if view.Bytes()[0] != 'S' {
		t.Error("mutation not visible through the shadow view")
	}
	if view.Shadow != &orig {
		t.Error("shadow reference lost")
	}
}

func TestTagFor(t *testing.T) {
	a := TagFor("http/chunked")
	b := TagFor("http/chunked")
	c := TagFor("proxy/upstream")

	if a != b {
		t.Error("tags for the same name must be equal")
	}
	if a == c {
		t.Error("tags for distinct names should differ")
	}
	if a == NoTag {
		t.Error("derived tag collides with NoTag")
	}
}
