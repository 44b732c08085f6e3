// File: core/list/list.go
// Package list implements a segmented append-only container: elements
// accumulate in fixed-capacity parts linked in allocation order, so a
// growing list never moves or copies existing elements.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package list

import "iter"

// Part is one segment of a list: up to nalloc elements plus the link to
// the next segment.
type Part[T any] struct {
	elts []T
	next *Part[T]
}

// List is an append-only sequence of parts. Elements are never removed
// or reordered; iteration order equals insertion order across parts.
// Pointers returned by Push stay valid for the life of the list.
//
// Like the rest of the core, a List is single-owner and unsynchronized.
type List[T any] struct {
	head   *Part[T]
	tail   *Part[T]
	nalloc int
	n      int
}

// New creates a list whose parts hold nalloc elements each.
func New[T any](nalloc int) *List[T] {
	if nalloc <= 0 {
		panic("list: part capacity must be positive")
	}
	p := &Part[T]{elts: make([]T, 0, nalloc)}
	return &List[T]{head: p, tail: p, nalloc: nalloc}
}

// Push appends a zero-valued slot and returns a pointer to it; the
// caller writes the element through the pointer. A full tail part is
// extended with a freshly allocated one.
func (l *List[T]) Push() *T {
	tail := l.tail

	if len(tail.elts) == cap(tail.elts) {
		tail = &Part[T]{elts: make([]T, 0, l.nalloc)}
		l.tail.next = tail
		l.tail = tail
	}

	var zero T
	tail.elts = append(tail.elts, zero)
	l.n++
	return &tail.elts[len(tail.elts)-1]
}

// Len returns the number of elements pushed.
func (l *List[T]) Len() int { return l.n }

// All iterates elements in insertion order: parts in link order, then
// elements within a part in index order.
func (l *List[T]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for p := l.head; p != nil; p = p.next {
			for i := range p.elts {
				if !yield(&p.elts[i]) {
					return
				}
			}
		}
	}
}
