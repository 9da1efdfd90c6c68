// Package snapshot persists the state document as one opaque unit. A backend
// offers exactly two operations: read the whole document, replace the whole
// document. There is no partial update, no version check and no conflict
// resolution; the last writer wins.
package snapshot

import (
	"context"
	"errors"
)

// ErrNoSnapshot is returned by Load when the backend holds no document yet.
var ErrNoSnapshot = errors.New("no snapshot stored")

type Backend interface {
	// Load returns the stored document bytes, or ErrNoSnapshot.
	Load(ctx context.Context) ([]byte, error)
	// Save replaces the stored document.
	Save(ctx context.Context, data []byte) error
	// Mode names the backend for status reporting ("local" or "postgres").
	Mode() string
}
