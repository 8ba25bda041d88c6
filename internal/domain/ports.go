package domain

import (
	"context"
	"errors"
)

// ErrBlobNotFound is returned by a BlobStore when the key has never been written.
var ErrBlobNotFound = errors.New("blob not found")

// BlobStore is a key/value store for opaque payloads. It mirrors the
// browser's local storage: one well-known key holds the whole journal.
type BlobStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	HealthCheck(ctx context.Context) error
}
