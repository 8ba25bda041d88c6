package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/PabloGalante/mawazo/internal/domain"
)

const blobsCollection = "blobs"

type Store struct {
	client *firestore.Client
}

// NewStore creates a Firestore store.
// Uses the project passed (MAWAZO_GCP_PROJECT).
func NewStore(ctx context.Context, projectID string) (*Store, error) {
	if projectID == "" {
		return nil, fmt.Errorf("projectID is required for Firestore store")
	}

	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("creating firestore client: %w", err)
	}

	return &Store{client: client}, nil
}

// ─────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────

func (s *Store) blobsCol() *firestore.CollectionRef {
	return s.client.Collection(blobsCollection)
}

func (s *Store) blobDoc(key string) *firestore.DocumentRef {
	return s.blobsCol().Doc(key)
}

// ─────────────────────────────────────────
// Firestore Types
// ─────────────────────────────────────────

type blobDoc struct {
	Value     []byte    `firestore:"value"`
	UpdatedAt time.Time `firestore:"updated_at"`
}

// ─────────────────────────────────────────
// BlobStore implementation
// ─────────────────────────────────────────

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	snap, err := s.blobDoc(key).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.ErrBlobNotFound
		}
		return nil, fmt.Errorf("firestore Get: %w", err)
	}

	var doc blobDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("firestore Get decode: %w", err)
	}
	return doc.Value, nil
}

func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	doc := blobDoc{
		Value:     value,
		UpdatedAt: time.Now().UTC(),
	}

	if _, err := s.blobDoc(key).Set(ctx, doc); err != nil {
		return fmt.Errorf("firestore Put: %w", err)
	}
	return nil
}

// HealthCheck lists at most one top-level collection to prove the client can
// reach the database.
func (s *Store) HealthCheck(ctx context.Context) error {
	iter := s.client.Collections(ctx)
	if _, err := iter.Next(); err != nil && err != iterator.Done {
		return fmt.Errorf("firestore HealthCheck: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.client.Close()
}
