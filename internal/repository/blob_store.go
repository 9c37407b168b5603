package repository

import (
	"context"
	"errors"
)

// ErrBlobTimeout marks an operation that exceeded the client-side deadline.
// The underlying store call is cancelled, but a write that was already in
// flight may still land; callers must treat blob writes as advisory.
var ErrBlobTimeout = errors.New("blob operation timed out")

var ErrBlobNotFound = errors.New("blob not found")

// BlobStore is a key-value store for bulk JSON snapshots that live
// outside the relational schema.
type BlobStore interface {
	Save(ctx context.Context, key string, data []byte) error
	Load(ctx context.Context, key string) ([]byte, error)
}
