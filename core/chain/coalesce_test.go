package chain

import "testing"

const testPageSize = 4096

func fileLink(p *Pool, fd uintptr, from, to int64) *Link {
	cl := p.AllocLink()
	cl.Buf = &Buf{
		InFile:   true,
		File:     &FileRef{FD: fd},
		FilePos:  from,
		FileLast: to,
	}
	return cl
}

func join(links ...*Link) *Link {
	for i := 0; i < len(links)-1; i++ {
		links[i].Next = links[i+1]
	}
	return links[0]
}

func TestCoalesceAdjacentRanges(t *testing.T) {
	p := newTestPool(t)
	in := join(fileLink(p, 5, 0, 100), fileLink(p, 5, 100, 250))

	total, rest := CoalesceFile(in, 1000, testPageSize)
	if total != 250 {
		t.Errorf("total = %d, want 250", total)
	}
	if rest != nil {
		t.Errorf("rest should be nil after consuming the whole chain")
	}
}

func TestCoalesceTruncatesAtLimit(t *testing.T) {
	p := newTestPool(t)
	second := fileLink(p, 5, 100, 250)
	in := join(fileLink(p, 5, 0, 100), second)

	total, rest := CoalesceFile(in, 150, testPageSize)
	if total > 150 {
		t.Errorf("total = %d, exceeds limit 150", total)
	}
	if total != 150 {
		t.Errorf("total = %d, want 150 (rounding cannot shrink below the page start)", total)
	}
	if rest != second {
		t.Error("rest should be the truncated second link")
	}
}

func TestCoalesceStopsOnDescriptorChange(t *testing.T) {
	p := newTestPool(t)
	other := fileLink(p, 9, 100, 200)
	in := join(fileLink(p, 5, 0, 100), other)

	total, rest := CoalesceFile(in, 1000, testPageSize)
	if total != 100 {
		t.Errorf("total = %d, want 100", total)
	}
	if rest != other {
		t.Error("rest should be the foreign-descriptor link")
	}
}

func TestCoalesceStopsOnGap(t *testing.T) {
	p := newTestPool(t)
	gapped := fileLink(p, 5, 150, 300)
	in := join(fileLink(p, 5, 0, 100), gapped)

	total, rest := CoalesceFile(in, 1000, testPageSize)
	if total != 100 {
		t.Errorf("total = %d, want 100", total)
	}
	if rest != gapped {
		t.Error("rest should be the non-adjacent link")
	}
}

func TestCoalesceStopsOnNonFileLink(t *testing.T) {
	p := newTestPool(t)
	mem := p.AllocLink()
	b, _ := p.NewTempBuf(64)
	b.Commit(64)
	mem.Buf = b
	in := join(fileLink(p, 5, 0, 100), mem)

	total, rest := CoalesceFile(in, 1000, testPageSize)
	if total != 100 {
		t.Errorf("total = %d, want 100", total)
	}
	if rest != mem {
		t.Error("rest should be the memory-backed link")
	}
}

func TestCoalesceRoundsTruncationDownToPage(t *testing.T) {
	p := newTestPool(t)
	// One large page-aligned segment truncated mid-page: the end offset
	// rounds down to the page boundary below the limit.
	in := fileLink(p, 5, 0, 64*1024)

	total, rest := CoalesceFile(in, 5000, testPageSize)
	if total != testPageSize {
		t.Errorf("total = %d, want %d", total, testPageSize)
	}
	if rest != in {
		t.Error("rest should be the partially consumed link")
	}
}

func TestCoalesceZeroRoundFallback(t *testing.T) {
	p := newTestPool(t)
	// Segment starts mid-page and the truncated end stays inside the
	// same page: rounding down would collapse the span to nothing, so
	// the un-rounded truncated size must be used.
	in := fileLink(p, 5, 100, 8192)

	total, rest := CoalesceFile(in, 50, testPageSize)
	if total != 50 {
		t.Errorf("total = %d, want un-rounded 50", total)
	}
	if rest != in {
		t.Error("rest should be the partially consumed link")
	}
}

func TestCoalesceLimitReachedExactly(t *testing.T) {
	p := newTestPool(t)
	second := fileLink(p, 5, 100, 200)
	in := join(fileLink(p, 5, 0, 100), second)

	total, rest := CoalesceFile(in, 100, testPageSize)
	if total != 100 {
		t.Errorf("total = %d, want 100", total)
	}
	if rest != second {
		t.Error("an exactly met limit must not consume the next link")
	}
}
