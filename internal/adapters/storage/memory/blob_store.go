package memory

import (
	"context"
	"sync"

	"github.com/PabloGalante/mawazo/internal/domain"
)

// BlobStore is a simple in-memory implementation of domain.BlobStore.
// It is NOT persistent and is only suitable for development / local mode.
type BlobStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewBlobStore creates a new in-memory BlobStore.
func NewBlobStore() *BlobStore {
	return &BlobStore{
		blobs: make(map[string][]byte),
	}
}

// Get returns a copy of the value stored under key.
func (s *BlobStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.blobs[key]
	if !ok {
		return nil, domain.ErrBlobNotFound
	}
	return append([]byte(nil), v...), nil
}

// Put stores a copy of value under key.
func (s *BlobStore) Put(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.blobs[key] = append([]byte(nil), value...)
	return nil
}

func (s *BlobStore) HealthCheck(context.Context) error {
	return nil
}
