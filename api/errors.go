// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types shared across the hioload-chain library.

package api

import "fmt"

// Common errors used across the library.
var (
	// ErrArenaExhausted is the single operational error of the core:
	// the arena cannot supply the requested bytes. Callers decide how
	// to degrade; the core performs no retry.
	ErrArenaExhausted = fmt.Errorf("arena exhausted")

	ErrInvalidArgument = fmt.Errorf("invalid argument")
)

// ArenaError carries the context of a failed arena allocation.
type ArenaError struct {
	Op    string // operation that needed memory, e.g. "alloc chunk"
	Bytes int64  // bytes requested
	Err   error  // underlying cause, usually ErrArenaExhausted
}

// Error implements the error interface.
func (e *ArenaError) Error() string {
	return fmt.Sprintf("arena: %s (%d bytes): %v", e.Op, e.Bytes, e.Err)
}

// Unwrap exposes the underlying cause for errors.Is checks.
func (e *ArenaError) Unwrap() error { return e.Err }
