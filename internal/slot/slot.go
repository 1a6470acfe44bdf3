// Package slot provides a durable single-key byte slot: the whole value is
// read or replaced in one operation, never partially updated.
package slot

import "context"

// Slot stores one opaque byte payload under a fixed key.
type Slot interface {
	// Load returns the stored payload. ok is false when the slot has never
	// been written.
	Load(ctx context.Context) (data []byte, ok bool, err error)
	// Store atomically replaces the payload.
	Store(ctx context.Context, data []byte) error
}
