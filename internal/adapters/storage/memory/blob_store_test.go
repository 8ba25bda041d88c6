package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PabloGalante/mawazo/internal/domain"
)

func TestBlobStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewBlobStore()

	_, err := s.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrBlobNotFound)

	value := []byte(`[1,2]`)
	require.NoError(t, s.Put(ctx, "k", value))
	value[0] = 'x'

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[1,2]`), got, "stored value must not alias the caller's slice")

	got[1] = 'y'
	again, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[1,2]`), again)

	assert.NoError(t, s.HealthCheck(ctx))
}
