package journal

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/PabloGalante/mawazo/internal/domain"
	"github.com/PabloGalante/mawazo/internal/observability"
)

var (
	ErrEmptyContent  = errors.New("entry content is empty")
	ErrEntryNotFound = errors.New("entry not found")
	ErrUnknownMood   = errors.New("unknown mood")
)

// streakWindow bounds how far back CalculateStreak looks.
const streakWindow = 365

// Service holds the logic of saving and reading journal entries.
// The repository keeps the whole journal under one key, so every write is a
// read-modify-write cycle guarded by mu.
type Service struct {
	repo  domain.EntryRepository
	now   func() time.Time
	newID func() (domain.JournalEntryID, error)

	mu sync.Mutex
}

// NewService creates a journal service from an EntryRepository
func NewService(repo domain.EntryRepository) *Service {
	return &Service{
		repo:  repo,
		now:   time.Now,
		newID: newEntryID,
	}
}

// newEntryID returns a UUIDv7, which sorts by creation time.
func newEntryID() (domain.JournalEntryID, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return domain.JournalEntryID(id.String()), nil
}

// SaveEntry stores a new entry at the front of the journal.
func (s *Service) SaveEntry(ctx context.Context, in domain.NewEntry) (*domain.JournalEntry, error) {
	if strings.TrimSpace(in.Content) == "" {
		return nil, ErrEmptyContent
	}

	moods := make([]domain.Mood, 0, len(in.Moods))
	for _, m := range in.Moods {
		if isNeutral(m) {
			continue
		}
		parsed, ok := domain.ParseMood(string(m))
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownMood, m)
		}
		moods = append(moods, parsed)
	}

	id, err := s.newID()
	if err != nil {
		return nil, fmt.Errorf("generating entry id: %w", err)
	}

	entry := &domain.JournalEntry{
		ID:         id,
		Content:    in.Content,
		Moods:      moods,
		Timestamp:  s.now().UTC(),
		WordCount:  CountWords(in.Content),
		AudioFiles: in.AudioFiles,
		ImageFiles: in.ImageFiles,
		HasAudio:   len(in.AudioFiles) > 0,
		HasImage:   len(in.ImageFiles) > 0,
	}

	log := observability.LoggerFromContext(ctx).With(zap.String("entry_id", string(entry.ID)))

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.repo.LoadEntries(ctx)
	if err != nil {
		log.Error("failed to load entries", zap.Error(err))
		return nil, err
	}

	updated := make([]*domain.JournalEntry, 0, len(entries)+1)
	updated = append(updated, entry)
	updated = append(updated, entries...)

	if err := s.repo.SaveEntries(ctx, updated); err != nil {
		log.Error("failed to save entries", zap.Error(err))
		return nil, err
	}

	log.Info("entry saved",
		zap.Int("word_count", entry.WordCount),
		zap.Int("moods", len(entry.Moods)),
		zap.Bool("has_audio", entry.HasAudio),
		zap.Bool("has_image", entry.HasImage))
	return entry, nil
}

// isNeutral reports whether m is the "no clear mood" tag, which is stored as no mood.
func isNeutral(m domain.Mood) bool {
	return strings.EqualFold(strings.TrimSpace(string(m)), string(domain.MoodNeutral))
}

// CountWords counts whitespace-separated words.
func CountWords(content string) int {
	return len(strings.Fields(content))
}

// SortBy orders a listing.
type SortBy string

const (
	SortByDate  SortBy = "date"  // newest first
	SortByWords SortBy = "words" // longest first
	SortByMood  SortBy = "mood"  // joined mood tags, alphabetical
)

// ParseSortBy maps user input to a SortBy, defaulting to date.
func ParseSortBy(s string) SortBy {
	switch SortBy(strings.ToLower(strings.TrimSpace(s))) {
	case SortByWords:
		return SortByWords
	case SortByMood:
		return SortByMood
	default:
		return SortByDate
	}
}

// Query filters and orders ListEntries. The zero value lists everything, newest first.
type Query struct {
	Search string      // case-insensitive substring of the content
	Mood   domain.Mood // entries tagged with this mood
	Sort   SortBy
	Limit  int // <= 0 means no limit
}

// ListEntries returns the entries matching q.
func (s *Service) ListEntries(ctx context.Context, q Query) ([]*domain.JournalEntry, error) {
	entries, err := s.repo.LoadEntries(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(q.Search)
	out := make([]*domain.JournalEntry, 0, len(entries))
	for _, e := range entries {
		if needle != "" && !strings.Contains(strings.ToLower(e.Content), needle) {
			continue
		}
		if q.Mood != "" && !hasMood(e, q.Mood) {
			continue
		}
		out = append(out, e)
	}

	switch q.Sort {
	case SortByWords:
		sort.SliceStable(out, func(i, j int) bool { return out[i].WordCount > out[j].WordCount })
	case SortByMood:
		sort.SliceStable(out, func(i, j int) bool { return joinMoods(out[i]) < joinMoods(out[j]) })
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	}

	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func hasMood(e *domain.JournalEntry, m domain.Mood) bool {
	for _, have := range e.Moods {
		if have == m {
			return true
		}
	}
	return false
}

func joinMoods(e *domain.JournalEntry) string {
	parts := make([]string, len(e.Moods))
	for i, m := range e.Moods {
		parts[i] = string(m)
	}
	return strings.Join(parts, ",")
}

// GetEntry returns one entry by id.
func (s *Service) GetEntry(ctx context.Context, id domain.JournalEntryID) (*domain.JournalEntry, error) {
	entries, err := s.repo.LoadEntries(ctx)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, ErrEntryNotFound
}

// DeleteEntry removes one entry, keeping the order of the rest.
func (s *Service) DeleteEntry(ctx context.Context, id domain.JournalEntryID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.repo.LoadEntries(ctx)
	if err != nil {
		return err
	}

	kept := make([]*domain.JournalEntry, 0, len(entries))
	for _, e := range entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(entries) {
		return ErrEntryNotFound
	}

	if err := s.repo.SaveEntries(ctx, kept); err != nil {
		return err
	}
	observability.LoggerFromContext(ctx).Info("entry deleted", zap.String("entry_id", string(id)))
	return nil
}

// CalculateStreak counts consecutive UTC days with at least one entry, going
// back from today. Today without an entry does not break the streak.
func (s *Service) CalculateStreak(ctx context.Context) (int, error) {
	entries, err := s.repo.LoadEntries(ctx)
	if err != nil {
		return 0, err
	}
	if len(entries) == 0 {
		return 0, nil
	}

	days := make(map[string]bool, len(entries))
	for _, e := range entries {
		days[e.Timestamp.UTC().Format(time.DateOnly)] = true
	}

	today := s.now().UTC()
	streak := 0
	for i := 0; i < streakWindow; i++ {
		day := today.AddDate(0, 0, -i).Format(time.DateOnly)
		if days[day] {
			streak++
		} else if i > 0 {
			break
		}
	}
	return streak, nil
}

// EntryContents returns every entry's content in stored order (most recent first).
func (s *Service) EntryContents(ctx context.Context) ([]string, error) {
	entries, err := s.repo.LoadEntries(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Content
	}
	return out, nil
}
