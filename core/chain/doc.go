// Package chain
// Author: momentics <momentics@gmail.com>
//
// Zero-copy buffer chains for a server output pipeline.
// Producers hand buffers to the writer as singly linked chains without
// copying payload bytes; the writer reports transmitted byte counts and
// the chain layer advances cursors, recycles drained links, and
// coalesces adjacent on-disk ranges for batched transfer.
//
// All types are single-owner and perform no I/O: the package manipulates
// buffer metadata only. Actual reads, writes, and sendfile-style calls
// belong to the transport that consumes these chains.
package chain
