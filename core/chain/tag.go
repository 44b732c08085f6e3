// File: core/chain/tag.go
// Author: momentics <momentics@gmail.com>

package chain

import "github.com/cespare/xxhash/v2"

// Tag names the subsystem that owns a buffer. Recycling compares tags
// for equality only; a tag carries no other semantics.
type Tag uint64

// NoTag marks a buffer with no recorded owner.
const NoTag Tag = 0

// TagFor derives a stable tag from a subsystem name, e.g. "http/chunked".
func TagFor(name string) Tag {
	return Tag(xxhash.Sum64String(name))
}
