package redis

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PabloGalante/mawazo/internal/domain"
)

// These tests need a live server: MAWAZO_TEST_REDIS_ADDR=localhost:6379.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	addr := os.Getenv("MAWAZO_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("MAWAZO_TEST_REDIS_ADDR not set")
	}
	s, err := NewStore(context.Background(), Options{Addr: addr})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	key := "mawazo-test-" + uuid.NewString()
	t.Cleanup(func() { s.client.Del(context.Background(), key) })

	_, err := s.Get(ctx, key)
	assert.ErrorIs(t, err, domain.ErrBlobNotFound)

	require.NoError(t, s.Put(ctx, key, []byte(`[]`)))
	got, err := s.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))
	assert.NoError(t, s.HealthCheck(ctx))
}
