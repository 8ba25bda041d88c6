package entries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PabloGalante/mawazo/internal/adapters/storage/entries"
	"github.com/PabloGalante/mawazo/internal/adapters/storage/memory"
	"github.com/PabloGalante/mawazo/internal/domain"
)

func TestLoadEntriesEmptyJournal(t *testing.T) {
	repo := entries.NewRepository(memory.NewBlobStore())

	got, err := repo.LoadEntries(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSaveEntriesUsesWellKnownKey(t *testing.T) {
	ctx := context.Background()
	store := memory.NewBlobStore()
	repo := entries.NewRepository(store)

	ts := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	in := []*domain.JournalEntry{
		{ID: "2", Content: "newer", Moods: []domain.Mood{domain.MoodHappy}, Timestamp: ts.Add(time.Hour), WordCount: 1},
		{ID: "1", Content: "older entry", Moods: []domain.Mood{}, Timestamp: ts, WordCount: 2,
			AudioFiles: [][]byte{{0x01, 0x02}}, HasAudio: true},
	}
	require.NoError(t, repo.SaveEntries(ctx, in))

	raw, err := store.Get(ctx, entries.StorageKey)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"wordCount":2`)
	assert.Contains(t, string(raw), `"audioFiles":["AQI="]`)

	got, err := repo.LoadEntries(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, domain.JournalEntryID("2"), got[0].ID)
	assert.Equal(t, in[1].AudioFiles, got[1].AudioFiles)
	assert.True(t, got[1].Timestamp.Equal(ts))
}

func TestLoadEntriesRejectsCorruptPayload(t *testing.T) {
	ctx := context.Background()
	store := memory.NewBlobStore()
	require.NoError(t, store.Put(ctx, entries.StorageKey, []byte("{not json")))

	_, err := entries.NewRepository(store).LoadEntries(ctx)
	assert.Error(t, err)
}

type failingStore struct{ err error }

func (f failingStore) Get(context.Context, string) ([]byte, error) { return nil, f.err }
func (f failingStore) Put(context.Context, string, []byte) error { return f.err }
func (f failingStore) HealthCheck(context.Context) error { return f.err }

func TestStoreErrorsAreWrapped(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("disk on fire")
	repo := entries.NewRepository(failingStore{err: boom})

	_, err := repo.LoadEntries(ctx)
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, repo.SaveEntries(ctx, nil), boom)
	assert.ErrorIs(t, repo.HealthCheck(ctx), boom)
}
