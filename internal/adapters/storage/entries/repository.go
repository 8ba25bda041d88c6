// Package entries keeps the journal as one JSON array in a blob store,
// the way the browser client keeps it in local storage.
package entries

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/PabloGalante/mawazo/internal/domain"
)

// StorageKey is the well-known key that holds the journal.
const StorageKey = "mawazo-entries"

// Repository implements domain.EntryRepository on top of a domain.BlobStore.
type Repository struct {
	store domain.BlobStore
	key   string
}

func NewRepository(store domain.BlobStore) *Repository {
	return &Repository{store: store, key: StorageKey}
}

// LoadEntries returns the stored entries, most recent first.
// A key that was never written is an empty journal.
func (r *Repository) LoadEntries(ctx context.Context) ([]*domain.JournalEntry, error) {
	raw, err := r.store.Get(ctx, r.key)
	if errors.Is(err, domain.ErrBlobNotFound) {
		return []*domain.JournalEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load entries: %w", err)
	}
	if len(raw) == 0 {
		return []*domain.JournalEntry{}, nil
	}

	var out []*domain.JournalEntry
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode entries: %w", err)
	}
	if out == nil {
		out = []*domain.JournalEntry{}
	}
	return out, nil
}

// SaveEntries replaces the stored journal.
func (r *Repository) SaveEntries(ctx context.Context, entries []*domain.JournalEntry) error {
	if entries == nil {
		entries = []*domain.JournalEntry{}
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode entries: %w", err)
	}
	if err := r.store.Put(ctx, r.key, raw); err != nil {
		return fmt.Errorf("save entries: %w", err)
	}
	return nil
}

// HealthCheck reports whether the underlying store is reachable.
func (r *Repository) HealthCheck(ctx context.Context) error {
	return r.store.HealthCheck(ctx)
}
