package domain

import (
	"context"
	"time"
)

// JournalEntryID identifies a journal entry
type JournalEntryID string

// JournalEntry is a single saved journal page.
// WordCount and the Has* flags are derived when the entry is saved.
type JournalEntry struct {
	ID        JournalEntryID `json:"id"`
	Content   string         `json:"content"`
	Moods     []Mood         `json:"moods"`
	Timestamp time.Time      `json:"timestamp"`
	WordCount int            `json:"wordCount"`

	// Attachments are stored as raw bytes (base64 on the wire).
	AudioFiles [][]byte `json:"audioFiles,omitempty"`
	ImageFiles [][]byte `json:"imageFiles,omitempty"`
	HasAudio   bool     `json:"hasAudio"`
	HasImage   bool     `json:"hasImage"`
}

// NewEntry is what a caller supplies when saving; the rest is assigned by the service.
type NewEntry struct {
	Content    string
	Moods      []Mood
	AudioFiles [][]byte
	ImageFiles [][]byte
}

// EntryRepository persists the whole journal as one ordered list, most recent first.
type EntryRepository interface {
	LoadEntries(ctx context.Context) ([]*JournalEntry, error)
	SaveEntries(ctx context.Context, entries []*JournalEntry) error
}
